package token

import (
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

// Test looking up values succeeds, then fails
func TestLookup(t *testing.T) {
	for key, val := range keywords {
		if LookupIdentifier(key) != val {
			t.Errorf("Lookup of %s failed", key)
		}
		// Keywords are case sensitive.
		if LookupIdentifier(strings.ToUpper(key)) != IDENT {
			t.Errorf("Lookup of %s failed", key)
		}
	}
	assert.Equal(t, LookupIdentifier("gauss"), IDENT)
}

func TestPosition(t *testing.T) {
	tok := Token{
		Type:    IDENT,
		Literal: "foo",
		StartPosition: Position{
			Line:   2,
			Column: 0,
		},
	}
	// Switches to 1-indexed
	assert.Equal(t, tok.StartPosition.LineNumber(), 3)
	assert.Equal(t, tok.StartPosition.ColumnNumber(), 1)
}

func TestAdvance(t *testing.T) {
	p := Position{Char: 10, LineStart: 8, Line: 1, Column: 2, File: "a.tw"}
	q := p.Advance(3)
	assert.Equal(t, q, Position{Char: 13, LineStart: 8, Line: 1, Column: 5, File: "a.tw"})
	assert.True(t, q.IsValid())
	assert.False(t, NoPos.IsValid())
}
