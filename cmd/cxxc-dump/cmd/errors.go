package cmd

import "cxxc/internal/cerr"

// formatErr normalizes any subsystem error into a CompilerError and
// renders it with a caret pointing at the offending column, colored
// only when stdout is an actual terminal.
func formatErr(err error, source, filename string) string {
	ce := cerr.FromError(err, source)
	ce.File = filename
	return ce.Format(colorEnabled())
}

func formatErrs(errs []*cerr.Error, source, filename string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "\n"
		}
		ce := &cerr.CompilerError{Kind: e.Kind, Pos: e.Pos, File: filename, Message: e.Message, Source: source}
		out += ce.Format(colorEnabled())
	}
	return out
}
