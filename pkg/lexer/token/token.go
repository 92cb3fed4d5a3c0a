// Package token defines the token emitted by the lexer.
package token

import (
	"fmt"

	"github.com/jensneuse/graphql-frontend/pkg/lexer/keyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/position"
)

// Token is one lexical unit of a GraphQL document. Literal is the decoded
// content: names and numbers verbatim, single line strings with escape
// sequences resolved, block strings after the dedent algorithm.
type Token struct {
	Keyword      keyword.Keyword
	Literal      string
	TextPosition position.Position
}

func (t Token) String() string {
	return fmt.Sprintf("token:: Keyword: %s, Literal: %s, Pos: %s", t.Keyword, t.Literal, t.TextPosition)
}

func (t *Token) SetStart(textPosition position.Position) {
	t.TextPosition.LineStart = textPosition.LineStart
	t.TextPosition.CharStart = textPosition.CharStart
}

func (t *Token) SetEnd(textPosition position.Position) {
	t.TextPosition.LineEnd = textPosition.LineStart
	t.TextPosition.CharEnd = textPosition.CharStart
}
