package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// InterfaceTypeDefinition
// example:
// interface Named { name: String }
type InterfaceTypeDefinition struct {
	Description          Description
	Name                 string
	ImplementsInterfaces []string
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
	Position             position.Position
}

func (*InterfaceTypeDefinition) NodeKind() NodeKind { return NodeKindInterfaceTypeDefinition }
func (*InterfaceTypeDefinition) definitionNode()    {}
