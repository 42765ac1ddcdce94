package semantic

import "golang.org/x/text/unicode/norm"

// normalizeIdent NFC-normalizes an identifier lexeme before it is used
// as a symbol-table key, so two differently-normalized-but-visually-
// identical Unicode spellings of the same name collide the way a
// reader would expect. ASCII identifiers, the overwhelming common
// case, pass through unchanged: NFC is a no-op on ASCII text.
func normalizeIdent(name string) string {
	return norm.NFC.String(name)
}
