// Package parser builds the syntax tree of a call-expression program.
//
// A program is a sequence of calls separated by semicolons or newlines:
//
//	random.seed(42)
//	np.random.normal(0, 2.5); np.random.poisson(12)
//	random.shuffle([1, 2, 3])
//
// Arguments are numeric literals with an optional sign, None, or lists of
// arguments. A parser is created by calling New() with a lexer as input and
// should be used only once, by calling Parse() to produce the AST.
package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/twister/internal/lexer"
	"github.com/deepnoodle-ai/twister/internal/token"
	"github.com/deepnoodle-ai/twister/pkg/ast"
	"github.com/deepnoodle-ai/twister/pkg/errz"
	"github.com/hashicorp/go-multierror"
)

// statementTerminators defines tokens that can end a statement.
var statementTerminators = map[token.Type]bool{
	token.SEMICOLON: true,
	token.NEWLINE:   true,
	token.EOF:       true,
}

// Parse the provided input and return the AST. This is shorthand for
// creating a Lexer and Parser and then calling Parse.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	p := New(lexer.New(input), options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in error locations.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum list nesting depth. The default is 100.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum list nesting depth.
const DefaultMaxDepth = 100

// MaxErrors is the maximum number of errors to collect before stopping.
const MaxErrors = 10

// Parser object
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// parsing errors collected during parsing
	errors []error

	// The filename of the input
	filename string

	// Current list nesting depth
	depth int

	// Maximum allowed list nesting depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{l: l, maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(p)
	}
	if p.filename != "" {
		l.SetFilename(p.filename)
	}
	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]
	return p
}

// Parse the whole program. When errors occur the returned program holds the
// statements that parsed cleanly, and the error is a single *errz.Error or
// a *multierror.Error of them.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	var statements []*ast.Call
	for {
		p.skipTerminators()
		if p.curTokenIs(token.EOF) || len(p.errors) >= MaxErrors {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stmt, ok := p.parseStatement()
		if ok {
			statements = append(statements, stmt)
		} else {
			p.synchronize()
		}
	}
	program := &ast.Program{Stmts: statements}
	switch len(p.errors) {
	case 0:
		return program, nil
	case 1:
		return program, p.errors[0]
	default:
		return program, multierror.Append(nil, p.errors...)
	}
}

// nextToken moves to the next token from the lexer. Lexer errors are
// recorded as syntax errors at the offending token.
func (p *Parser) nextToken() {
	var err error
	p.curToken = p.peekToken
	p.peekToken, err = p.l.Next()
	if err != nil {
		p.addError(p.peekToken, err.Error())
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek advances if the next token has the expected type and records
// an error otherwise.
func (p *Parser) expectPeek(what string, t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(p.peekToken, fmt.Sprintf("expected %s %s", describe(t), what))
	return false
}

func (p *Parser) skipTerminators() {
	for p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipNewlines skips newlines inside parentheses and brackets.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// synchronize skips tokens until a statement boundary is reached.
func (p *Parser) synchronize() {
	for !statementTerminators[p.curToken.Type] {
		p.nextToken()
	}
}

func (p *Parser) addError(tok token.Token, msg string) {
	pos := tok.StartPosition
	err := errz.New(errz.ErrSyntax, "", msg).WithLocation(errz.SourceLocation{
		Filename: p.l.Filename(),
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   p.l.GetLineText(tok),
	})
	p.errors = append(p.errors, err)
}

// unexpected records an error for tok unless it is an ILLEGAL token, which
// the lexer already reported.
func (p *Parser) unexpected(tok token.Token, msg string) {
	if tok.Type == token.ILLEGAL {
		return
	}
	p.addError(tok, fmt.Sprintf("unexpected %s (%s)", describeToken(tok), msg))
}

// parseStatement parses one call and the terminator after it. On success
// the current token is the terminator.
func (p *Parser) parseStatement() (*ast.Call, bool) {
	call, ok := p.parseCall()
	if !ok {
		return nil, false
	}
	p.nextToken()
	if !statementTerminators[p.curToken.Type] {
		p.unexpected(p.curToken, "expected end of statement")
		return nil, false
	}
	return call, true
}

func (p *Parser) parseCall() (*ast.Call, bool) {
	if !p.curTokenIs(token.IDENT) {
		p.unexpected(p.curToken, "expected a function name")
		return nil, false
	}
	call := &ast.Call{}
	call.Path = append(call.Path, &ast.Ident{NamePos: p.curToken.StartPosition, Name: p.curToken.Literal})
	for p.peekTokenIs(token.PERIOD) {
		p.nextToken()
		if !p.expectPeek("after '.'", token.IDENT) {
			return nil, false
		}
		call.Path = append(call.Path, &ast.Ident{NamePos: p.curToken.StartPosition, Name: p.curToken.Literal})
	}
	if !p.expectPeek("to start the argument list", token.LPAREN) {
		return nil, false
	}
	call.Lparen = p.curToken.StartPosition
	args, ok := p.parseExprList(token.RPAREN)
	if !ok {
		return nil, false
	}
	call.Args = args
	call.Rparen = p.curToken.StartPosition
	return call, true
}

// parseExprList parses comma separated arguments up to the closing token.
// The current token is the opening delimiter on entry and the closing one
// on success. A trailing comma is allowed.
func (p *Parser) parseExprList(end token.Type) ([]ast.Expr, bool) {
	var items []ast.Expr
	p.nextToken()
	p.skipNewlines()
	for !p.curTokenIs(end) {
		item, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		p.nextToken()
		p.skipNewlines()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipNewlines()
			continue
		}
		if !p.curTokenIs(end) {
			p.unexpected(p.curToken, fmt.Sprintf("expected ',' or %s", describe(end)))
			return nil, false
		}
	}
	return items, true
}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	switch p.curToken.Type {
	case token.INT, token.FLOAT:
		return p.parseNumber(p.curToken, "")
	case token.MINUS, token.PLUS:
		sign := p.curToken
		p.nextToken()
		if !p.curTokenIs(token.INT) && !p.curTokenIs(token.FLOAT) {
			p.unexpected(p.curToken, fmt.Sprintf("expected a number after '%s'", sign.Literal))
			return nil, false
		}
		prefix := ""
		if sign.Type == token.MINUS {
			prefix = "-"
		}
		return p.parseNumber(sign, prefix)
	case token.NONE:
		return &ast.None{NonePos: p.curToken.StartPosition}, true
	case token.LBRACKET:
		return p.parseList()
	default:
		p.unexpected(p.curToken, "expected an argument")
		return nil, false
	}
}

// parseNumber parses the current INT or FLOAT token. start is the token the
// literal begins at, which is the sign when there is one.
func (p *Parser) parseNumber(start token.Token, sign string) (ast.Expr, bool) {
	tok := p.curToken
	literal := sign + tok.Literal
	digits := sign + strings.ReplaceAll(tok.Literal, "_", "")
	if tok.Type == token.FLOAT {
		value, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			p.addError(tok, fmt.Sprintf("invalid float literal: %s", literal))
			return nil, false
		}
		return &ast.Float{ValuePos: start.StartPosition, Literal: literal, Value: value}, true
	}
	base := 10
	if strings.HasPrefix(strings.ToLower(tok.Literal), "0x") {
		base = 0
		digits = sign + tok.Literal
	}
	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		p.addError(tok, fmt.Sprintf("integer literal out of range: %s", literal))
		return nil, false
	}
	return &ast.Int{ValuePos: start.StartPosition, Literal: literal, Value: value}, true
}

func (p *Parser) parseList() (ast.Expr, bool) {
	if p.depth >= p.maxDepth {
		p.addError(p.curToken, "maximum nesting depth exceeded")
		return nil, false
	}
	p.depth++
	defer func() { p.depth-- }()

	list := &ast.List{Lbrack: p.curToken.StartPosition}
	items, ok := p.parseExprList(token.RBRACKET)
	if !ok {
		return nil, false
	}
	list.Items = items
	list.Rbrack = p.curToken.StartPosition
	return list, true
}

func describe(t token.Type) string {
	switch t {
	case token.IDENT:
		return "a name"
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "newline"
	case token.INT, token.FLOAT:
		return "a number"
	default:
		return "'" + string(t) + "'"
	}
}

func describeToken(tok token.Token) string {
	switch tok.Type {
	case token.IDENT, token.INT, token.FLOAT:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return describe(tok.Type)
	}
}
