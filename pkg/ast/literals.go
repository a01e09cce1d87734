package ast

import (
	"bytes"
	"strings"

	"github.com/deepnoodle-ai/twister/internal/token"
)

// Int is an expression node that holds an integer literal. A leading sign
// is part of the literal.
type Int struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42", "0x2a")
	Value    int64          // the parsed value
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }
func (x *Int) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Int) String() string { return x.Literal }

// Float is an expression node that holds a floating point literal.
type Float struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text
	Value    float64        // the parsed value
}

func (x *Float) exprNode() {}

func (x *Float) Pos() token.Position { return x.ValuePos }
func (x *Float) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Float) String() string { return x.Literal }

// None is an expression node that holds the None literal.
type None struct {
	NonePos token.Position // position of the literal
}

func (x *None) exprNode() {}

func (x *None) Pos() token.Position { return x.NonePos }
func (x *None) End() token.Position { return x.NonePos.Advance(4) }

func (x *None) String() string { return "None" }

// List is an expression node that holds a list literal.
type List struct {
	Lbrack token.Position // position of "["
	Items  []Expr         // list elements
	Rbrack token.Position // position of "]"
}

func (x *List) exprNode() {}

func (x *List) Pos() token.Position { return x.Lbrack }
func (x *List) End() token.Position { return x.Rbrack.Advance(1) }

func (x *List) String() string {
	var out bytes.Buffer
	items := make([]string, 0, len(x.Items))
	for _, el := range x.Items {
		items = append(items, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(items, ", "))
	out.WriteString("]")
	return out.String()
}
