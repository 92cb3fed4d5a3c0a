package astparser

import (
	"fmt"

	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/keyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/position"
)

type origin struct {
	file     string
	line     int
	funcName string
}

// ErrUnexpectedToken is a custom error object containing all necessary information to properly render an unexpected token error
type ErrUnexpectedToken struct {
	keyword  keyword.Keyword
	expected []keyword.Keyword
	position position.Position
	literal  string
	origins  []origin
}

func (e ErrUnexpectedToken) Error() string {

	origins := ""
	for _, origin := range e.origins {
		origins = origins + fmt.Sprintf("\n\t\t%s:%d\n\t\t%s", origin.file, origin.line, origin.funcName)
	}

	return fmt.Sprintf("unexpected token - keyword: '%s' literal: '%s' - expected: '%s' position: '%s'%s", e.keyword, e.literal, e.expected, e.position, origins)
}

// ErrDepthLimitExceeded is returned when the parser encounters nesting depth
// that exceeds the configured limit. The parser rejects the document instead
// of risking stack exhaustion on maliciously deep input.
type ErrDepthLimitExceeded struct {
	limit int
}

func (e ErrDepthLimitExceeded) Error() string {
	return fmt.Sprintf("allowed parsing depth per GraphQL document of '%d' exceeded", e.limit)
}

// ErrDuplicateArgumentName is returned when one argument list names the same
// argument twice. Argument names must be unique within a single directive or
// field invocation.
type ErrDuplicateArgumentName struct {
	Name         string
	TextPosition position.Position
}

func (e ErrDuplicateArgumentName) Error() string {
	return fmt.Sprintf("duplicate argument name: '%s' position: '%s'", e.Name, e.TextPosition)
}

// ErrInvalidDirectiveLocation is returned when a directive definition names a
// location outside the spec defined set.
type ErrInvalidDirectiveLocation struct {
	Literal      string
	TextPosition position.Position
}

func (e ErrInvalidDirectiveLocation) Error() string {
	return fmt.Sprintf("invalid directive location: '%s' position: '%s'", e.Literal, e.TextPosition)
}

// ErrCoercionFailed is returned when a default value literal cannot be
// coerced into the value space of its declared type.
type ErrCoercionFailed struct {
	TypeName     string
	ValueKind    ast.ValueKind
	TextPosition position.Position
}

func (e ErrCoercionFailed) Error() string {
	return fmt.Sprintf("cannot coerce default value of kind '%s' into type '%s' position: '%s'", e.ValueKind, e.TypeName, e.TextPosition)
}
