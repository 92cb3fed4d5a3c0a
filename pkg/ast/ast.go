// Package ast holds the GraphQL document model produced by astparser and
// consumed by astprinter and astdiff. Documents are immutable value trees:
// the parser constructs them once and no consumer mutates them afterwards.
package ast

// Document is the root node: an ordered sequence of definitions plus the
// symbolic name of the source the document was parsed from. SourceName is
// diagnostic metadata and excluded from semantic equality.
type Document struct {
	SourceName  string
	Definitions []Definition
}

type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindSchemaDefinition
	NodeKindObjectTypeDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindDirectiveDefinition
	NodeKindOperationDefinition
	NodeKindFragmentDefinition
)

func (n NodeKind) String() string {
	switch n {
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	default:
		return "Unknown"
	}
}

// Definition is the closed set of top level document definitions. The
// unexported marker keeps the set closed to this package; every traversal
// (printer, diff) switches over the concrete types exhaustively.
type Definition interface {
	NodeKind() NodeKind
	definitionNode()
}
