package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// SelectionSet is a non-empty ordered list of selections.
type SelectionSet struct {
	Selections []Selection
	Position   position.Position
}

// Selection is the closed set of selection kinds: Field, FragmentSpread or
// InlineFragment.
type Selection interface {
	selectionNode()
}

// Field
// example:
// friends: allFriends(first: 10) @include(if: $withFriends) { name }
type Field struct {
	Alias        Optional[string]
	Name         string
	Arguments    []Argument
	Directives   []Directive
	SelectionSet *SelectionSet // nil when the field has no selections
	Position     position.Position
}

func (*Field) selectionNode() {}

// FragmentSpread
// example:
// ...comparisonFields
type FragmentSpread struct {
	FragmentName string
	Directives   []Directive
	Position     position.Position
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment
// example:
// ... on Droid { primaryFunction }
// TypeCondition is empty when the fragment has no type condition.
type InlineFragment struct {
	TypeCondition string
	Directives    []Directive
	SelectionSet  *SelectionSet
	Position      position.Position
}

func (*InlineFragment) selectionNode() {}
