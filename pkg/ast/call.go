package ast

import (
	"bytes"
	"strings"

	"github.com/deepnoodle-ai/twister/internal/token"
)

// Ident is one element of a dotted call path.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// Call is a statement invoking a function by its dotted path, such as
// "np.random.poisson(4.5)".
type Call struct {
	Path   []*Ident       // dotted path; the last element is the function name
	Lparen token.Position // position of "("
	Args   []Expr         // function arguments
	Rparen token.Position // position of ")"
}

func (x *Call) Pos() token.Position { return x.Path[0].Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

// Func returns the function name, the last element of the path.
func (x *Call) Func() string {
	return x.Path[len(x.Path)-1].Name
}

// Prefix returns the path elements before the function name, joined by dots.
func (x *Call) Prefix() string {
	names := make([]string, 0, len(x.Path)-1)
	for _, id := range x.Path[:len(x.Path)-1] {
		names = append(names, id.Name)
	}
	return strings.Join(names, ".")
}

func (x *Call) String() string {
	var out bytes.Buffer
	for i, id := range x.Path {
		if i > 0 {
			out.WriteString(".")
		}
		out.WriteString(id.Name)
	}
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
