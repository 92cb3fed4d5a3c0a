package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// ScalarTypeDefinition
// example:
// scalar JSON
type ScalarTypeDefinition struct {
	Description Description
	Name        string
	Directives  []Directive
	Position    position.Position
}

func (*ScalarTypeDefinition) NodeKind() NodeKind { return NodeKindScalarTypeDefinition }
func (*ScalarTypeDefinition) definitionNode()    {}
