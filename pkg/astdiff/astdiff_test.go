package astdiff

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jensneuse/graphql-frontend/internal/pkg/unsafeparser"
	"github.com/jensneuse/graphql-frontend/pkg/astparser"
)

func assertEqualDocuments(t *testing.T, left, right string) {
	t.Helper()
	leftDocument := unsafeparser.ParseGraphqlDocumentString(left)
	rightDocument := unsafeparser.ParseGraphqlDocumentString(right)
	diff := Diff(leftDocument, rightDocument)
	if diff.IsPresent() {
		t.Fatalf("expected documents to be equal, diverged at: %s\nleft:\n%s\nright:\n%s",
			diff.Value().DotDelimitedString(), spew.Sdump(leftDocument), spew.Sdump(rightDocument))
	}
}

func assertDivergesAt(t *testing.T, left, right, wantPath string) {
	t.Helper()
	diff := Diff(unsafeparser.ParseGraphqlDocumentString(left), unsafeparser.ParseGraphqlDocumentString(right))
	require.True(t, diff.IsPresent(), "expected documents to diverge at: %s", wantPath)
	assert.Equal(t, wantPath, diff.Value().DotDelimitedString())
}

func TestDiffEqualDocuments(t *testing.T) {
	t.Run("identical text", func(t *testing.T) {
		assertEqualDocuments(t,
			"type Query { hero: Character }",
			"type Query { hero: Character }")
	})
	t.Run("formatting is irrelevant", func(t *testing.T) {
		assertEqualDocuments(t,
			"type Query {\n\thero: Character\n}",
			"type Query { hero: Character , }")
	})
	t.Run("comments are irrelevant", func(t *testing.T) {
		assertEqualDocuments(t,
			"# a comment\ntype Query { hero: Character }",
			"type Query { hero: Character # trailing\n}")
	})
	t.Run("coercion normalizes defaults", func(t *testing.T) {
		assertEqualDocuments(t,
			"type Query { f(x: Float = 4): Float }",
			"type Query { f(x: Float = 4.0): Float }")
		assertEqualDocuments(t,
			"type Query { f(x: [Int] = 1): Int }",
			"type Query { f(x: [Int] = [1]): Int }")
	})
	t.Run("operations", func(t *testing.T) {
		assertEqualDocuments(t,
			"query Q($a: Int = 1) @traced { f(x: $a) { ...s ... on T { g } } }",
			"query Q($a: Int = 1) @traced {f(x: $a) {...s ... on T {g}}}")
	})
}

func TestDiffSourceNameIsIrrelevant(t *testing.T) {
	left, err := astparser.NewParser().Parse([]byte("type Query { hero: Character }"), "a.graphqls")
	require.NoError(t, err)
	right, err := astparser.NewParser().Parse([]byte("type Query { hero: Character }"), "b.graphqls")
	require.NoError(t, err)

	require.NotEqual(t, left.SourceName, right.SourceName)
	assert.False(t, Diff(left, right).IsPresent())
}

func TestDiffDivergence(t *testing.T) {
	t.Run("definition count", func(t *testing.T) {
		assertDivergesAt(t,
			"scalar A scalar B",
			"scalar A",
			"definitions")
	})
	t.Run("definition kind", func(t *testing.T) {
		assertDivergesAt(t,
			"scalar A",
			"enum A { X }",
			"definitions.0")
	})
	t.Run("field type", func(t *testing.T) {
		assertDivergesAt(t,
			"type Query { id: ID, hero: Character }",
			"type Query { id: ID, hero: Droid }",
			"definitions.0.fieldsDefinition.1.type")
	})
	t.Run("wrapper kind", func(t *testing.T) {
		assertDivergesAt(t,
			"type Query { hero: [Character]! }",
			"type Query { hero: [Character!] }",
			"definitions.0.fieldsDefinition.0.type")
	})
	t.Run("wrapped named type", func(t *testing.T) {
		assertDivergesAt(t,
			"type Query { hero: [Character] }",
			"type Query { hero: [Droid] }",
			"definitions.0.fieldsDefinition.0.type.ofType")
	})
	t.Run("field count", func(t *testing.T) {
		assertDivergesAt(t,
			"type Query { hero: Character }",
			"type Query { hero: Character, villain: Character }",
			"definitions.0.fieldsDefinition")
	})
	t.Run("description", func(t *testing.T) {
		assertDivergesAt(t,
			`"a hero" type Query { hero: Character }`,
			"type Query { hero: Character }",
			"definitions.0.description")
	})
	t.Run("description content", func(t *testing.T) {
		assertDivergesAt(t,
			"\"\"\"\nblock\ncontent\n\"\"\"\ntype Query { hero: Character }",
			"\"\"\"\nblock\nchanged\n\"\"\"\ntype Query { hero: Character }",
			"definitions.0.description")
	})
	t.Run("default value presence", func(t *testing.T) {
		assertDivergesAt(t,
			"type Query { f(x: Int): Int }",
			"type Query { f(x: Int = null): Int }",
			"definitions.0.fieldsDefinition.0.argumentsDefinition.0.defaultValue")
	})
	t.Run("alias", func(t *testing.T) {
		assertDivergesAt(t,
			"{ renamed: hero }",
			"{ hero }",
			"definitions.0.selectionSet.0.alias")
	})
	t.Run("selection kind", func(t *testing.T) {
		assertDivergesAt(t,
			"{ hero { ...spread } }",
			"{ hero { ... on T { f } } }",
			"definitions.0.selectionSet.0.selectionSet.0")
	})
	t.Run("argument value", func(t *testing.T) {
		assertDivergesAt(t,
			"{ f(x: [1, 2]) }",
			"{ f(x: [1, 3]) }",
			"definitions.0.selectionSet.0.arguments.0.value.1")
	})
	t.Run("object field value", func(t *testing.T) {
		assertDivergesAt(t,
			"{ f(p: {x: 1, y: 2}) }",
			"{ f(p: {x: 1, y: 3}) }",
			"definitions.0.selectionSet.0.arguments.0.value.1.value")
	})
	t.Run("directive name", func(t *testing.T) {
		assertDivergesAt(t,
			"scalar Date @tag",
			"scalar Date @other",
			"definitions.0.directives.0.name")
	})
	t.Run("repeatable flag", func(t *testing.T) {
		assertDivergesAt(t,
			"directive @d repeatable on OBJECT",
			"directive @d on OBJECT",
			"definitions.0.repeatable")
	})
	t.Run("directive locations", func(t *testing.T) {
		assertDivergesAt(t,
			"directive @d on OBJECT | FIELD_DEFINITION",
			"directive @d on OBJECT | ENUM_VALUE",
			"definitions.0.directiveLocations.1")
	})
	t.Run("union members", func(t *testing.T) {
		assertDivergesAt(t,
			"union U = A | B",
			"union U = A | C",
			"definitions.0.unionMemberTypes.1")
	})
	t.Run("operation type", func(t *testing.T) {
		assertDivergesAt(t,
			"query Q { f }",
			"mutation Q { f }",
			"definitions.0.operationType")
	})
}

func TestDiffNilDocuments(t *testing.T) {
	document := unsafeparser.ParseGraphqlDocumentString("scalar A")
	assert.False(t, Diff(nil, nil).IsPresent())
	assert.True(t, Diff(document, nil).IsPresent())
	assert.True(t, Diff(nil, document).IsPresent())
}
