package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// SchemaDefinition binds the root operation types of a schema.
// example:
// schema { query: Query mutation: Mutation }
type SchemaDefinition struct {
	Description                  Description
	Directives                   []Directive
	RootOperationTypeDefinitions []RootOperationTypeDefinition
	Position                     position.Position
}

func (*SchemaDefinition) NodeKind() NodeKind { return NodeKindSchemaDefinition }
func (*SchemaDefinition) definitionNode()    {}

type RootOperationTypeDefinition struct {
	OperationType OperationType
	NamedType     string
	Position      position.Position
}
