package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// UnionTypeDefinition
// example:
// union SearchResult = Photo | Person
type UnionTypeDefinition struct {
	Description      Description
	Name             string
	Directives       []Directive
	UnionMemberTypes []string
	Position         position.Position
}

func (*UnionTypeDefinition) NodeKind() NodeKind { return NodeKindUnionTypeDefinition }
func (*UnionTypeDefinition) definitionNode()    {}
