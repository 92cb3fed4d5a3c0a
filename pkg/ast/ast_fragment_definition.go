package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// FragmentDefinition
// example:
// fragment comparisonFields on Character { name appearsIn }
type FragmentDefinition struct {
	Name          string
	TypeCondition string
	Directives    []Directive
	SelectionSet  *SelectionSet
	Position      position.Position
}

func (*FragmentDefinition) NodeKind() NodeKind { return NodeKindFragmentDefinition }
func (*FragmentDefinition) definitionNode()    {}
