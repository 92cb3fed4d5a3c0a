package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// Directive is a directive usage. Argument order is source order; the
// printer preserves it for round trip fidelity. Argument names are unique
// within one directive, the parser rejects duplicates.
type Directive struct {
	Name      string
	Arguments []Argument
	Position  position.Position
}

type Argument struct {
	Name     string
	Value    Value
	Position position.Position
}
