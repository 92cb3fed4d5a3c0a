package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// EnumTypeDefinition
// example:
// enum Direction { NORTH EAST SOUTH WEST }
type EnumTypeDefinition struct {
	Description          Description
	Name                 string
	Directives           []Directive
	EnumValuesDefinition []EnumValueDefinition
	Position             position.Position
}

func (*EnumTypeDefinition) NodeKind() NodeKind { return NodeKindEnumTypeDefinition }
func (*EnumTypeDefinition) definitionNode()    {}

type EnumValueDefinition struct {
	Description Description
	EnumValue   string
	Directives  []Directive
	Position    position.Position
}
