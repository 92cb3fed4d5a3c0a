package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// InputObjectTypeDefinition
// example:
// input Point2D { x: Float = 0.0 y: Float = 0.0 }
type InputObjectTypeDefinition struct {
	Description           Description
	Name                  string
	Directives            []Directive
	InputFieldsDefinition []InputValueDefinition
	Position              position.Position
}

func (*InputObjectTypeDefinition) NodeKind() NodeKind { return NodeKindInputObjectTypeDefinition }
func (*InputObjectTypeDefinition) definitionNode()    {}
