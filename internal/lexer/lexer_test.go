package lexer

import (
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/twister/internal/token"
	"github.com/deepnoodle-ai/wonton/assert"
)

type expectedToken struct {
	expectedType    token.Type
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		assert.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken(t *testing.T) {
	checkTokens(t, "np.random.normal(0, 1.5);random.seed(None)", []expectedToken{
		{token.IDENT, "np"},
		{token.PERIOD, "."},
		{token.IDENT, "random"},
		{token.PERIOD, "."},
		{token.IDENT, "normal"},
		{token.LPAREN, "("},
		{token.INT, "0"},
		{token.COMMA, ","},
		{token.FLOAT, "1.5"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "random"},
		{token.PERIOD, "."},
		{token.IDENT, "seed"},
		{token.LPAREN, "("},
		{token.NONE, "None"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	})
}

func TestListsAndSigns(t *testing.T) {
	checkTokens(t, "shuffle([-1, +2, 3])", []expectedToken{
		{token.IDENT, "shuffle"},
		{token.LPAREN, "("},
		{token.LBRACKET, "["},
		{token.MINUS, "-"},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.COMMA, ","},
		{token.INT, "3"},
		{token.RBRACKET, "]"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	checkTokens(t, "10 0x10 0xFF 1_000 1.5 .5 2. 1e3 2.5E-4 7e+2", []expectedToken{
		{token.INT, "10"},
		{token.INT, "0x10"},
		{token.INT, "0xFF"},
		{token.INT, "1_000"},
		{token.FLOAT, "1.5"},
		{token.FLOAT, ".5"},
		{token.FLOAT, "2."},
		{token.FLOAT, "1e3"},
		{token.FLOAT, "2.5E-4"},
		{token.FLOAT, "7e+2"},
		{token.EOF, ""},
	})
}

func TestInvalidNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42.foo()", "invalid numeric literal: 42.f"},
		{"12ab", "invalid numeric literal: 12a"},
		{"1.2.3", "invalid numeric literal: 1.2."},
		{"1e", "invalid numeric literal: 1e"},
		{"3e+x", "invalid numeric literal: 3e+x"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.Next()
		assert.NotNil(t, err)
		assert.Equal(t, tok.Type, token.ILLEGAL)
		assert.Equal(t, err.Error(), tt.expected)
	}
}

func TestComments(t *testing.T) {
	input := `# leading comment
random.random() // trailing
# another`
	checkTokens(t, input, []expectedToken{
		{token.NEWLINE, "\n"},
		{token.IDENT, "random"},
		{token.PERIOD, "."},
		{token.IDENT, "random"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestCRLFNewlines(t *testing.T) {
	checkTokens(t, "a()\r\nb()", []expectedToken{
		{token.IDENT, "a"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "b"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	})
}

func TestIllegalCharacter(t *testing.T) {
	l := New("gauss(1 * 2)")
	var err error
	var tok token.Token
	for err == nil {
		tok, err = l.Next()
	}
	assert.Equal(t, tok.Type, token.ILLEGAL)
	assert.Equal(t, tok.Literal, "*")
	assert.Equal(t, tok.StartPosition.Column, 8)
	assert.Equal(t, err.Error(), `unexpected character: '*'`)
}

func TestLineNumbers(t *testing.T) {
	l := New("ab(1)\n foo(22)")
	tests := []struct {
		expectedType     token.Type
		expectedLiteral  string
		expectedLine     int
		expectedStartPos int
		expectedEndPos   int
	}{
		{token.IDENT, "ab", 0, 0, 1},
		{token.LPAREN, "(", 0, 2, 2},
		{token.INT, "1", 0, 3, 3},
		{token.RPAREN, ")", 0, 4, 4},
		{token.NEWLINE, "\n", 0, 5, 5},
		{token.IDENT, "foo", 1, 1, 3},
		{token.LPAREN, "(", 1, 4, 4},
		{token.INT, "22", 1, 5, 6},
		{token.RPAREN, ")", 1, 7, 7},
		{token.EOF, "", 1, 8, 8},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tok, err := l.Next()
			assert.Nil(t, err)
			assert.Equal(t, tok.Type, tt.expectedType)
			assert.Equal(t, tok.Literal, tt.expectedLiteral)
			assert.Equal(t, tok.StartPosition.Line, tt.expectedLine)
			assert.Equal(t, tok.StartPosition.Column, tt.expectedStartPos)
			assert.Equal(t, tok.EndPosition.Column, tt.expectedEndPos)
		})
	}
}

func TestTokenLineText(t *testing.T) {
	l := New("random.seed(1)\nnp.random.rand()\r\n")
	for {
		tok, err := l.Next()
		assert.Nil(t, err)
		if tok.Type == token.IDENT && tok.Literal == "np" {
			assert.Equal(t, l.GetLineText(tok), "np.random.rand()")
			return
		}
		if tok.Type == token.EOF {
			t.Fatal("did not find np")
		}
	}
}

func TestMultipleEOFReads(t *testing.T) {
	l := New("x")
	_, err := l.Next()
	assert.Nil(t, err)
	for range 3 {
		tok, err := l.Next()
		assert.Nil(t, err)
		assert.Equal(t, tok.Type, token.EOF)
	}
}

func TestFilenameOption(t *testing.T) {
	t.Run("WithFile option", func(t *testing.T) {
		l := New("x", WithFile("draws.tw"))
		assert.Equal(t, l.Filename(), "draws.tw")

		tok, err := l.Next()
		assert.Nil(t, err)
		assert.Equal(t, tok.StartPosition.File, "draws.tw")
		assert.Equal(t, tok.EndPosition.File, "draws.tw")
	})

	t.Run("SetFilename method", func(t *testing.T) {
		l := New("x")
		assert.Equal(t, l.Filename(), "")

		l.SetFilename("updated.tw")
		assert.Equal(t, l.Filename(), "updated.tw")

		tok, err := l.Next()
		assert.Nil(t, err)
		assert.Equal(t, tok.StartPosition.File, "updated.tw")
	})
}
