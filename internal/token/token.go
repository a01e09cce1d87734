// Package token defines the tokens of the call-expression language.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes on the same line.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	COMMA     Type = ","
	EOF       Type = "EOF"
	FLOAT     Type = "FLOAT"
	IDENT     Type = "IDENT"
	ILLEGAL   Type = "ILLEGAL"
	INT       Type = "INT"
	LBRACKET  Type = "["
	LPAREN    Type = "("
	MINUS     Type = "-"
	NEWLINE   Type = "EOL"
	NONE      Type = "NONE"
	PERIOD    Type = "."
	PLUS      Type = "+"
	RBRACKET  Type = "]"
	RPAREN    Type = ")"
	SEMICOLON Type = ";"
)

// Reserved keywords
var keywords = map[string]Type{
	"None": NONE,
}

// LookupIdentifier returns the keyword type for identifier, or IDENT.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
