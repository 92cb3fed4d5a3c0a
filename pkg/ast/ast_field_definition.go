package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// FieldDefinition is one field of an object or interface type.
type FieldDefinition struct {
	Description         Description
	Name                string
	ArgumentsDefinition []InputValueDefinition
	Type                Type
	Directives          []Directive
	Position            position.Position
}

// InputValueDefinition is an argument definition or an input object field.
// DefaultValue distinguishes "no default" from "default null": an absent
// Optional means no default was supplied at all.
type InputValueDefinition struct {
	Description  Description
	Name         string
	Type         Type
	DefaultValue Optional[Value]
	Directives   []Directive
	Position     position.Position
}
