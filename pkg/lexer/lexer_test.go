package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jensneuse/graphql-frontend/pkg/lexer/keyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/token"
)

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()

	lexer := NewLexer()
	lexer.SetInput([]byte(input))

	var out []token.Token
	for {
		tok, err := lexer.Read()
		require.NoError(t, err)
		out = append(out, tok)
		if tok.Keyword == keyword.EOF {
			return out
		}
	}
}

func lexSingle(t *testing.T, input string) token.Token {
	t.Helper()

	tokens := lexAll(t, input)
	require.Len(t, tokens, 2)
	require.Equal(t, keyword.EOF, tokens[1].Keyword)
	return tokens[0]
}

func lexErr(t *testing.T, input string) error {
	t.Helper()

	lexer := NewLexer()
	lexer.SetInput([]byte(input))

	for {
		tok, err := lexer.Read()
		if err != nil {
			return err
		}
		require.NotEqual(t, keyword.EOF, tok.Keyword, "expected a lex error before EOF")
	}
}

func TestLexerRead(t *testing.T) {
	t.Run("punctuators", func(t *testing.T) {
		tokens := lexAll(t, ": ! @ $ | = & ( ) [ ] { } ...")
		want := []keyword.Keyword{
			keyword.COLON, keyword.BANG, keyword.AT, keyword.DOLLAR, keyword.PIPE,
			keyword.EQUALS, keyword.AND, keyword.LPAREN, keyword.RPAREN,
			keyword.LBRACK, keyword.RBRACK, keyword.LBRACE, keyword.RBRACE,
			keyword.SPREAD, keyword.EOF,
		}
		require.Len(t, tokens, len(want))
		for i := range want {
			assert.Equal(t, want[i], tokens[i].Keyword, "token %d", i)
		}
	})
	t.Run("idents", func(t *testing.T) {
		tokens := lexAll(t, "query on _private x123 Type")
		require.Len(t, tokens, 6)
		for _, tok := range tokens[:5] {
			assert.Equal(t, keyword.IDENT, tok.Keyword)
		}
		assert.Equal(t, "query", tokens[0].Literal)
		assert.Equal(t, "_private", tokens[2].Literal)
		assert.Equal(t, "x123", tokens[3].Literal)
	})
	t.Run("integers", func(t *testing.T) {
		tokens := lexAll(t, "0 -42 2147483647 -2147483648")
		require.Len(t, tokens, 5)
		for _, tok := range tokens[:4] {
			assert.Equal(t, keyword.INTEGER, tok.Keyword)
		}
		assert.Equal(t, "0", tokens[0].Literal)
		assert.Equal(t, "-42", tokens[1].Literal)
		assert.Equal(t, "2147483647", tokens[2].Literal)
		assert.Equal(t, "-2147483648", tokens[3].Literal)
	})
	t.Run("floats", func(t *testing.T) {
		tokens := lexAll(t, "0.5 -1.25 1e10 2E-3 1.5e+3")
		require.Len(t, tokens, 6)
		for _, tok := range tokens[:5] {
			assert.Equal(t, keyword.FLOAT, tok.Keyword)
		}
		assert.Equal(t, "0.5", tokens[0].Literal)
		assert.Equal(t, "-1.25", tokens[1].Literal)
		assert.Equal(t, "1.5e+3", tokens[4].Literal)
	})
	t.Run("invalid numbers", func(t *testing.T) {
		for _, input := range []string{"1.", "1.2.3", "-", "1e", "1e+", "123abc", "2147483648", "-2147483649"} {
			err := lexErr(t, input)
			var invalid ErrInvalidNumericLiteral
			require.ErrorAs(t, err, &invalid, "input: %s", input)
		}
	})
	t.Run("single line string", func(t *testing.T) {
		tok := lexSingle(t, `"hello world"`)
		assert.Equal(t, keyword.STRING, tok.Keyword)
		assert.Equal(t, "hello world", tok.Literal)
	})
	t.Run("string escapes", func(t *testing.T) {
		tok := lexSingle(t, `"a\"b\\c\nd\teé"`)
		assert.Equal(t, keyword.STRING, tok.Keyword)
		assert.Equal(t, "a\"b\\c\nd\teé", tok.Literal)
	})
	t.Run("unicode escape", func(t *testing.T) {
		tok := lexSingle(t, `"caf\u00e9"`)
		assert.Equal(t, "café", tok.Literal)
	})
	t.Run("unterminated string", func(t *testing.T) {
		err := lexErr(t, `"abc`)
		var unterminated ErrUnterminatedString
		require.ErrorAs(t, err, &unterminated)
		assert.False(t, unterminated.BlockString)
	})
	t.Run("string with raw line break", func(t *testing.T) {
		err := lexErr(t, "\"ab\ncd\"")
		var unterminated ErrUnterminatedString
		require.ErrorAs(t, err, &unterminated)
	})
	t.Run("invalid escape", func(t *testing.T) {
		err := lexErr(t, `"a\x"`)
		var invalid ErrInvalidEscape
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "x", invalid.Literal)
	})
	t.Run("block string dedent", func(t *testing.T) {
		tok := lexSingle(t, "\"\"\"\n    hello\n      world\n\"\"\"")
		assert.Equal(t, keyword.BLOCKSTRING, tok.Keyword)
		assert.Equal(t, "hello\n  world", tok.Literal)
	})
	t.Run("block string single line", func(t *testing.T) {
		tok := lexSingle(t, `"""simple"""`)
		assert.Equal(t, keyword.BLOCKSTRING, tok.Keyword)
		assert.Equal(t, "simple", tok.Literal)
	})
	t.Run("block string escaped triple quote", func(t *testing.T) {
		tok := lexSingle(t, `"""contains \""" quotes"""`)
		assert.Equal(t, `contains """ quotes`, tok.Literal)
	})
	t.Run("block string keeps first line indentation", func(t *testing.T) {
		tok := lexSingle(t, "\"\"\"  leading\n  trailing\"\"\"")
		assert.Equal(t, "  leading\ntrailing", tok.Literal)
	})
	t.Run("block string strips blank edge lines", func(t *testing.T) {
		tok := lexSingle(t, "\"\"\"\n\n  content\n\n\"\"\"")
		assert.Equal(t, "content", tok.Literal)
	})
	t.Run("unterminated block string", func(t *testing.T) {
		err := lexErr(t, `"""abc`)
		var unterminated ErrUnterminatedString
		require.ErrorAs(t, err, &unterminated)
		assert.True(t, unterminated.BlockString)
	})
	t.Run("comments and commas are trivia", func(t *testing.T) {
		tokens := lexAll(t, "a,b # a comment, with commas\nc")
		require.Len(t, tokens, 4)
		assert.Equal(t, "a", tokens[0].Literal)
		assert.Equal(t, "b", tokens[1].Literal)
		assert.Equal(t, "c", tokens[2].Literal)
	})
	t.Run("invalid character", func(t *testing.T) {
		err := lexErr(t, "?")
		var invalid ErrInvalidCharacter
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "?", invalid.Literal)
	})
	t.Run("lone dot", func(t *testing.T) {
		err := lexErr(t, "..")
		var invalid ErrInvalidCharacter
		require.ErrorAs(t, err, &invalid)
	})
}

func TestLexerPositions(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		tok := lexSingle(t, "query")
		assert.Equal(t, uint32(1), tok.TextPosition.LineStart)
		assert.Equal(t, uint32(1), tok.TextPosition.CharStart)
		assert.Equal(t, uint32(1), tok.TextPosition.LineEnd)
		assert.Equal(t, uint32(6), tok.TextPosition.CharEnd)
	})
	t.Run("line counting", func(t *testing.T) {
		tokens := lexAll(t, "a\nb\r\nc\rd")
		require.Len(t, tokens, 5)
		assert.Equal(t, uint32(1), tokens[0].TextPosition.LineStart)
		assert.Equal(t, uint32(2), tokens[1].TextPosition.LineStart)
		assert.Equal(t, uint32(3), tokens[2].TextPosition.LineStart)
		assert.Equal(t, uint32(4), tokens[3].TextPosition.LineStart)
	})
	t.Run("char counting after indentation", func(t *testing.T) {
		tokens := lexAll(t, "  hero")
		assert.Equal(t, uint32(3), tokens[0].TextPosition.CharStart)
	})
}
