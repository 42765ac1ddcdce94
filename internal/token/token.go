// Package token defines the lexical token vocabulary of the source
// language: token kinds, source positions, and the Token value itself.
package token

import "fmt"

// Position identifies a single point in source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in runes
	Offset int // 0-based byte offset from the start of the file
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kind is the type tag of a Token.
type Kind int

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}

const (
	ILLEGAL Kind = iota
	EOF
	PREPROCESSOR

	literalBeg
	IDENTIFIER
	INTEGER
	FLOAT
	CHAR
	STRING
	TRUE
	FALSE
	NULLPTR
	literalEnd

	keywordBeg
	// Control flow
	IF
	ELSE
	SWITCH
	CASE
	DEFAULT
	WHILE
	DO
	FOR
	BREAK
	CONTINUE
	RETURN
	GOTO

	// Primitive types
	VOID
	BOOL
	CHAR_KW
	INT
	SHORT
	LONG
	SIGNED
	UNSIGNED
	FLOAT_KW
	DOUBLE
	WCHAR_T
	CHAR8_T
	CHAR16_T
	CHAR32_T

	// Qualifiers
	CONST
	VOLATILE
	MUTABLE
	CONSTEXPR
	CONSTEVAL
	CONSTINIT

	// Storage classes
	AUTO
	REGISTER
	STATIC
	EXTERN
	THREAD_LOCAL

	// OOP
	CLASS
	STRUCT
	UNION
	ENUM
	PUBLIC
	PRIVATE
	PROTECTED
	FRIEND
	VIRTUAL
	OVERRIDE
	FINAL

	// Misc
	THIS
	OPERATOR
	SIZEOF
	TYPEID
	TYPENAME
	NEW
	DELETE
	TRY
	CATCH
	THROW
	NOEXCEPT
	TEMPLATE
	EXPORT
	NAMESPACE
	USING
	TYPEDEF
	EXPLICIT
	INLINE
	STATIC_ASSERT
	DECLTYPE
	ALIGNAS
	ALIGNOF

	// Casts
	STATIC_CAST
	DYNAMIC_CAST
	CONST_CAST
	REINTERPRET_CAST

	// Concepts/coroutines
	CONCEPT
	REQUIRES
	CO_AWAIT
	CO_RETURN
	CO_YIELD
	keywordEnd

	// Punctuators / operators
	punctBeg
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	SCOPE     // ::
	DOT       // .
	DOT_STAR  // .*
	ARROW     // ->
	ARROW_STAR
	ELLIPSIS // ...

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	PLUS_PLUS
	MINUS_MINUS

	AMP
	PIPE
	CARET
	TILDE
	SHL // <<
	SHR // >>

	ASSIGN // =
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	AMP_ASSIGN
	PIPE_ASSIGN
	CARET_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN

	EQ // ==
	NE // !=
	LT
	GT
	LE
	GE
	SPACESHIP // <=>

	LOGICAL_AND
	LOGICAL_OR
	LOGICAL_NOT

	QUESTION
	punctEnd
)

var names = map[Kind]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "EOF",
	PREPROCESSOR: "PREPROCESSOR",

	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	CHAR:       "CHAR",
	STRING:     "STRING",
	TRUE:       "true",
	FALSE:      "false",
	NULLPTR:    "nullptr",

	IF: "if", ELSE: "else", SWITCH: "switch", CASE: "case", DEFAULT: "default",
	WHILE: "while", DO: "do", FOR: "for", BREAK: "break", CONTINUE: "continue",
	RETURN: "return", GOTO: "goto",

	VOID: "void", BOOL: "bool", CHAR_KW: "char", INT: "int", SHORT: "short",
	LONG: "long", SIGNED: "signed", UNSIGNED: "unsigned", FLOAT_KW: "float",
	DOUBLE: "double", WCHAR_T: "wchar_t", CHAR8_T: "char8_t", CHAR16_T: "char16_t",
	CHAR32_T: "char32_t",

	CONST: "const", VOLATILE: "volatile", MUTABLE: "mutable",
	CONSTEXPR: "constexpr", CONSTEVAL: "consteval", CONSTINIT: "constinit",

	AUTO: "auto", REGISTER: "register", STATIC: "static", EXTERN: "extern",
	THREAD_LOCAL: "thread_local",

	CLASS: "class", STRUCT: "struct", UNION: "union", ENUM: "enum",
	PUBLIC: "public", PRIVATE: "private", PROTECTED: "protected",
	FRIEND: "friend", VIRTUAL: "virtual", OVERRIDE: "override", FINAL: "final",

	THIS: "this", OPERATOR: "operator", SIZEOF: "sizeof", TYPEID: "typeid",
	TYPENAME: "typename", NEW: "new", DELETE: "delete", TRY: "try",
	CATCH: "catch", THROW: "throw", NOEXCEPT: "noexcept", TEMPLATE: "template",
	EXPORT: "export", NAMESPACE: "namespace", USING: "using", TYPEDEF: "typedef",
	EXPLICIT: "explicit", INLINE: "inline", STATIC_ASSERT: "static_assert",
	DECLTYPE: "decltype", ALIGNAS: "alignas", ALIGNOF: "alignof",

	STATIC_CAST: "static_cast", DYNAMIC_CAST: "dynamic_cast",
	CONST_CAST: "const_cast", REINTERPRET_CAST: "reinterpret_cast",

	CONCEPT: "concept", REQUIRES: "requires", CO_AWAIT: "co_await",
	CO_RETURN: "co_return", CO_YIELD: "co_yield",

	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", SEMICOLON: ";", COMMA: ",", COLON: ":",
	SCOPE: "::", DOT: ".", DOT_STAR: ".*", ARROW: "->", ARROW_STAR: "->*", ELLIPSIS: "...",

	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	PLUS_PLUS: "++", MINUS_MINUS: "--",

	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", SHL: "<<", SHR: ">>",

	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=",
	SLASH_ASSIGN: "/=", PERCENT_ASSIGN: "%=", AMP_ASSIGN: "&=",
	PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=", SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=",

	EQ: "==", NE: "!=", LT: "<", GT: ">", LE: "<=", GE: ">=", SPACESHIP: "<=>",

	LOGICAL_AND: "&&", LOGICAL_OR: "||", LOGICAL_NOT: "!",

	QUESTION: "?",
}

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLiteral reports whether k is one of the literal token kinds.
func (k Kind) IsLiteral() bool { return k > literalBeg && k < literalEnd }

// IsKeyword reports whether k is a reserved keyword.
func (k Kind) IsKeyword() bool { return k > keywordBeg && k < keywordEnd }

// keywords maps the lexeme spelling of every keyword to its Kind. Built
// once from names so the two tables can never drift apart.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind, int(keywordEnd-keywordBeg))
	for k := keywordBeg + 1; k < keywordEnd; k++ {
		if s, ok := names[k]; ok {
			m[s] = k
		}
	}
	// Literal keywords (true/false/nullptr) are classified alongside the
	// rest of the keyword set even though their Kind lives in the literal
	// range, since the lexer looks identifiers up in one shared table.
	m["true"] = TRUE
	m["false"] = FALSE
	m["nullptr"] = NULLPTR
	return m
}()

// LookupIdent classifies ident as a keyword Kind, or IDENTIFIER if it is
// not a reserved word.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENTIFIER
}
