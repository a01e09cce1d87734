// Package lexer splits call-expression source into tokens.
package lexer

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/twister/internal/token"
)

// Lexer holds our object-state.
type Lexer struct {
	// The input being lexed
	input string

	// Byte offset of the current character
	position int

	// Byte offset of the next character
	readPosition int

	// The current character
	ch byte

	// Current line number (0-indexed)
	line int

	// Byte offset where the current line starts
	lineStart int

	// Name of the file being lexed, if any
	file string
}

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFile sets the file name for the Lexer.
func WithFile(file string) Option {
	return func(l *Lexer) {
		l.file = file
	}
}

// New returns a Lexer for the given input.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range options {
		opt(l)
	}
	l.readChar()
	return l
}

// Filename returns the name of the file being lexed.
func (l *Lexer) Filename() string {
	return l.file
}

// SetFilename sets the name of the file being lexed.
func (l *Lexer) SetFilename(file string) {
	l.file = file
}

// Position returns the position of the current character.
func (l *Lexer) Position() token.Position {
	return token.Position{
		Char:      l.position,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.position - l.lineStart,
		File:      l.file,
	}
}

// Next returns the next token. Lexing errors are returned together with an
// ILLEGAL token positioned at the offending text.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespaceAndComments()

	start := l.Position()
	switch l.ch {
	case 0:
		return l.tok(token.EOF, "", start, start), nil
	case '\n':
		tok := l.tok(token.NEWLINE, "\n", start, start)
		l.readChar()
		return tok, nil
	case '(', ')', '[', ']', ',', ';', '-', '+':
		ch := string(l.ch)
		l.readChar()
		return l.tok(token.Type(ch), ch, start, start), nil
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber(start)
		}
		l.readChar()
		return l.tok(token.PERIOD, ".", start, start), nil
	}
	if isIdentStart(l.ch) {
		ident := l.readIdentifier()
		return l.tok(token.LookupIdentifier(ident), ident, start, start.Advance(len(ident)-1)), nil
	}
	if isDigit(l.ch) {
		return l.readNumber(start)
	}
	ch := l.ch
	l.readChar()
	tok := l.tok(token.ILLEGAL, string(ch), start, start)
	return tok, fmt.Errorf("unexpected character: %q", ch)
}

// GetLineText returns the full line of input containing the token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start > len(l.input) {
		return ""
	}
	end := strings.IndexByte(l.input[start:], '\n')
	if end < 0 {
		return strings.TrimSuffix(l.input[start:], "\r")
	}
	return strings.TrimSuffix(l.input[start:start+end], "\r")
}

func (l *Lexer) tok(typ token.Type, literal string, start, end token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   end,
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPosition
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespaceAndComments skips spaces, tabs, carriage returns and
// comments. Newlines are significant and are left in place.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '#' || (l.ch == '/' && l.peekChar() == '/'):
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer or float literal: decimal digits with
// optional underscores, hex integers, a fraction and an exponent. The
// literal must not run into an identifier character.
func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	begin := l.position
	typ := token.INT
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	} else {
		l.readDigits()
		if l.ch == '.' {
			typ = token.FLOAT
			l.readChar()
			l.readDigits()
		}
		if l.ch == 'e' || l.ch == 'E' {
			typ = token.FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) {
				return l.badNumber(begin, start)
			}
			l.readDigits()
		}
	}
	if isIdentStart(l.ch) || l.ch == '.' {
		return l.badNumber(begin, start)
	}
	literal := l.input[begin:l.position]
	return l.tok(typ, literal, start, start.Advance(len(literal)-1)), nil
}

func (l *Lexer) badNumber(begin int, start token.Position) (token.Token, error) {
	if l.ch != 0 {
		l.readChar()
	}
	literal := l.input[begin:l.position]
	tok := l.tok(token.ILLEGAL, literal, start, start.Advance(len(literal)-1))
	return tok, fmt.Errorf("invalid numeric literal: %s", literal)
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}
