package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

type OperationType int

const (
	OperationTypeUndefined OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "undefined"
	}
}

// OperationDefinition
// example:
// query HeroForEpisode($ep: Episode!) { hero(episode: $ep) { name } }
// The anonymous query shorthand parses to OperationTypeQuery with empty Name.
type OperationDefinition struct {
	OperationType       OperationType
	Name                string
	VariableDefinitions []VariableDefinition
	Directives          []Directive
	SelectionSet        *SelectionSet
	Position            position.Position
}

func (*OperationDefinition) NodeKind() NodeKind { return NodeKindOperationDefinition }
func (*OperationDefinition) definitionNode()    {}

// VariableDefinition declares one operation variable. DefaultValue follows
// the same present/absent rules as InputValueDefinition.
type VariableDefinition struct {
	VariableName string
	Type         Type
	DefaultValue Optional[Value]
	Directives   []Directive
	Position     position.Position
}
