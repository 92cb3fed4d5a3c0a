package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

func (t TypeKind) String() string {
	switch t {
	case TypeKindNamed:
		return "Named"
	case TypeKindList:
		return "List"
	case TypeKindNonNull:
		return "NonNull"
	default:
		return "Unknown"
	}
}

// Type is a type reference: a named type or a list/non-null wrapper around
// another type reference. Nesting is finite, the parser bounds it.
type Type struct {
	TypeKind TypeKind
	Name     string // set for TypeKindNamed
	OfType   *Type  // set for TypeKindList and TypeKindNonNull
	Position position.Position
}

func (t Type) IsNullable() bool {
	return t.TypeKind != TypeKindNonNull
}

func (t Type) IsList() bool {
	return t.TypeKind == TypeKindList
}

// UnderlyingName unwraps list and non-null wrappers down to the named type.
func (t Type) UnderlyingName() string {
	for t.OfType != nil {
		t = *t.OfType
	}
	return t.Name
}
