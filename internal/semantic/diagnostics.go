package semantic

import (
	"sort"

	"github.com/maruel/natural"

	"cxxc/internal/cerr"
)

// sortDiagnostics orders errs by file, then by (line, column), breaking
// remaining ties with a natural-order comparison of the message text so
// "redefinition of 'x2'" sorts before "redefinition of 'x10'" instead of
// after it — the ordering a human reviewing a diagnostic list expects.
func sortDiagnostics(errs []*cerr.Error) {
	sort.SliceStable(errs, func(i, j int) bool {
		a, b := errs[i], errs[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		if a.Pos.Column != b.Pos.Column {
			return a.Pos.Column < b.Pos.Column
		}
		return natural.Less(a.Message, b.Message)
	})
}
