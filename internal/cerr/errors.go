// Package cerr implements the compiler's error taxonomy (lexer, parser,
// semantic, type-check, and IR-generation errors) and the driver-facing
// normalization of all five into one CompilerError, formatted with
// source-line context the way the teacher's error package renders
// diagnostics.
package cerr

import (
	"fmt"
	"strings"

	"cxxc/internal/token"
)

// Kind identifies which subsystem raised an error.
type Kind int

const (
	Lexer Kind = iota
	Parser
	Semantic
	TypeCheck
	IRGen
)

func (k Kind) String() string {
	switch k {
	case Lexer:
		return "LexerError"
	case Parser:
		return "ParserError"
	case Semantic:
		return "SemanticError"
	case TypeCheck:
		return "TypeCheckError"
	case IRGen:
		return "IRGenError"
	default:
		return "Error"
	}
}

// Error is a single diagnostic raised by one of the five subsystems.
// Lexer and Parser errors are raised fail-fast, wrapped in a Go error
// return; semantic errors accumulate in a list instead (see
// internal/semantic.Analyzer).
type Error struct {
	Kind     Kind
	Pos      token.Position
	File     string
	Message  string
	NodeDesc string // optional: a short description of the offending AST node
}

// New constructs an Error of the given kind.
func New(kind Kind, pos token.Position, file, message string) *Error {
	return &Error{Kind: kind, Pos: pos, File: file, Message: message}
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s:%d:%d: %s", e.Kind, e.File, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s: %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}

// CompilerError is the single user-visible error shape the driver
// normalizes every subsystem's diagnostics into (§6/§7 of the spec).
type CompilerError struct {
	Kind    Kind
	Pos     token.Position
	File    string
	Message string
	Source  string // full source text, used only to render a context line
}

// FromError normalizes any *Error into a CompilerError. Non-*Error values
// are wrapped as a generic error at an unknown position.
func FromError(err error, source string) *CompilerError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return &CompilerError{Kind: e.Kind, Pos: e.Pos, File: e.File, Message: e.Message, Source: source}
	}
	return &CompilerError{Message: err.Error(), Source: source}
}

func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a source-line excerpt and a caret pointing
// at the offending column, optionally with ANSI color (used only by the
// developer CLI — the core itself never emits terminal escapes).
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max0(e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func sourceLine(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
