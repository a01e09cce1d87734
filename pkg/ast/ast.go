// Package ast defines the abstract syntax tree of the call-expression
// language.
package ast

import "github.com/deepnoodle-ai/twister/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an argument expression.
type Expr interface {
	Node
	exprNode()
}
