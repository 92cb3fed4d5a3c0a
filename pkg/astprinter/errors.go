package astprinter

import (
	"fmt"

	"github.com/jensneuse/graphql-frontend/pkg/ast"
)

// ErrUnknownValueKind is returned when a value carries a kind outside the
// closed set. Such a value cannot come from the parser, only from a manually
// constructed document.
type ErrUnknownValueKind struct {
	ValueKind ast.ValueKind
}

func (e ErrUnknownValueKind) Error() string {
	return fmt.Sprintf("cannot print value of unknown kind: '%s'", e.ValueKind)
}

// ErrInvalidTypeReference is returned when a type reference is malformed,
// either an unknown kind or a wrapper without an inner type.
type ErrInvalidTypeReference struct {
	TypeKind ast.TypeKind
}

func (e ErrInvalidTypeReference) Error() string {
	return fmt.Sprintf("cannot print invalid type reference of kind: '%s'", e.TypeKind)
}

// ErrNestingLimitExceeded is returned when a document nests deeper than the
// printer is willing to recurse. Parsed documents stay well below the limit,
// it exists to keep manually constructed cyclic or degenerate documents from
// exhausting the stack.
type ErrNestingLimitExceeded struct {
	limit int
}

func (e ErrNestingLimitExceeded) Error() string {
	return fmt.Sprintf("allowed printing depth per GraphQL document of '%d' exceeded", e.limit)
}
