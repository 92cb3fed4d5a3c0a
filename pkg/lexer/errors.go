package lexer

import (
	"fmt"

	"github.com/jensneuse/graphql-frontend/pkg/lexer/position"
)

// ErrInvalidCharacter is returned when the lexer encounters a rune that cannot
// start any token.
type ErrInvalidCharacter struct {
	Literal      string
	TextPosition position.Position
}

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character: '%s' position: '%s'", e.Literal, e.TextPosition)
}

// ErrUnterminatedString is returned when the input ends inside a string or
// block string, or a single line string contains a raw line terminator.
type ErrUnterminatedString struct {
	BlockString  bool
	TextPosition position.Position
}

func (e ErrUnterminatedString) Error() string {
	if e.BlockString {
		return fmt.Sprintf("unterminated block string position: '%s'", e.TextPosition)
	}
	return fmt.Sprintf("unterminated string position: '%s'", e.TextPosition)
}

// ErrInvalidNumericLiteral is returned for malformed int/float forms and for
// int literals outside the 32 bit value space.
type ErrInvalidNumericLiteral struct {
	Literal      string
	TextPosition position.Position
}

func (e ErrInvalidNumericLiteral) Error() string {
	return fmt.Sprintf("invalid numeric literal: '%s' position: '%s'", e.Literal, e.TextPosition)
}

// ErrInvalidEscape is returned for an escape sequence inside a single line
// string that the GraphQL grammar does not define.
type ErrInvalidEscape struct {
	Literal      string
	TextPosition position.Position
}

func (e ErrInvalidEscape) Error() string {
	return fmt.Sprintf("invalid escape sequence: '\\%s' position: '%s'", e.Literal, e.TextPosition)
}
