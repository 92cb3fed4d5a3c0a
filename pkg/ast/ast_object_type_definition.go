package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// ObjectTypeDefinition
// example:
// type Person implements Named & Mortal @tag { name: String }
type ObjectTypeDefinition struct {
	Description          Description
	Name                 string
	ImplementsInterfaces []string
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
	Position             position.Position
}

func (*ObjectTypeDefinition) NodeKind() NodeKind { return NodeKindObjectTypeDefinition }
func (*ObjectTypeDefinition) definitionNode()    {}
