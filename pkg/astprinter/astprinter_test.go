package astprinter

import (
	"os"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"

	"github.com/jensneuse/graphql-frontend/internal/pkg/unsafeparser"
	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/astdiff"
	"github.com/jensneuse/graphql-frontend/pkg/testing/goldie"
)

func operationField(t *testing.T, definition ast.Definition) *ast.Field {
	t.Helper()
	operation, ok := definition.(*ast.OperationDefinition)
	require.True(t, ok)
	field, ok := operation.SelectionSet.Selections[0].(*ast.Field)
	require.True(t, ok)
	return field
}

func objectTypeField(t *testing.T, definition ast.Definition) *ast.FieldDefinition {
	t.Helper()
	object, ok := definition.(*ast.ObjectTypeDefinition)
	require.True(t, ok)
	require.NotEmpty(t, object.FieldsDefinition)
	return &object.FieldsDefinition[0]
}

func TestPrint(t *testing.T) {

	run := func(t *testing.T, raw string, expected string) {
		t.Helper()

		document := unsafeparser.ParseGraphqlDocumentString(raw)

		actual, err := PrintString(document)
		require.NoError(t, err)

		if actual != expected {
			diffview.NewGoland().DiffViewAny(t.Name(), expected, actual)
			t.Fatalf("expected:\n%s\nactual:\n%s", expected, actual)
		}
	}

	t.Run("query", func(t *testing.T) {
		run(t, "query o($id: String!){user(id: $id){id name birthday}}",
			"query o($id: String!) {\n  user(id: $id) {\n    id\n    name\n    birthday\n  }\n}\n")
	})
	t.Run("anonymous query shorthand", func(t *testing.T) {
		run(t, "{hero{name}}",
			"{\n  hero {\n    name\n  }\n}\n")
	})
	t.Run("alias", func(t *testing.T) {
		run(t, "{renamed: hero}",
			"{\n  renamed: hero\n}\n")
	})
	t.Run("mutation with object value and escaped string", func(t *testing.T) {
		run(t, `mutation {save(point: {x: 1, y: -2.5}, note: "line\nbreak \"q\"")}`,
			"mutation {\n  save(point: {x: 1, y: -2.5}, note: \"line\\nbreak \\\"q\\\"\")\n}\n")
	})
	t.Run("coerced float defaults", func(t *testing.T) {
		run(t, "type Query {f(x: Float = 0, y: Float = 1e2): Float}",
			"type Query {\n  f(x: Float = 0.0, y: Float = 100.0): Float\n}\n")
	})
	t.Run("singleton list default coerces to a list", func(t *testing.T) {
		run(t, "type Query {f(a: [Int] = 1): Int}",
			"type Query {\n  f(a: [Int] = [1]): Int\n}\n")
	})
	t.Run("block string description", func(t *testing.T) {
		run(t, "\"\"\"\nmulti\nline\n\"\"\"\ntype Foo {a: String}",
			"\"\"\"\nmulti\nline\n\"\"\"\ntype Foo {\n  a: String\n}\n")
	})
	t.Run("block string description keeps relative indentation", func(t *testing.T) {
		run(t, "type Foo {\"\"\"\nfirst\n  second\n\"\"\" a: String}",
			"type Foo {\n  \"\"\"\n  first\n    second\n  \"\"\"\n  a: String\n}\n")
	})
	t.Run("single line description prints in short form", func(t *testing.T) {
		run(t, `"""Simple""" scalar Date`,
			"\"Simple\"\nscalar Date\n")
	})
	t.Run("description with trailing line break stays single line", func(t *testing.T) {
		run(t, "\"a\\n\" scalar X",
			"\"a\\n\"\nscalar X\n")
	})
	t.Run("description with leading line break stays single line", func(t *testing.T) {
		run(t, "\"\\nabc\" scalar X",
			"\"\\nabc\"\nscalar X\n")
	})
	t.Run("description ending in a blank line stays single line", func(t *testing.T) {
		run(t, "\"a\\nb\\n  \" scalar X",
			"\"a\\nb\\n  \"\nscalar X\n")
	})
	t.Run("described arguments print one per line", func(t *testing.T) {
		run(t, `type Query {hero("the episode" episode: Episode = NEWHOPE): Character}`,
			"type Query {\n  hero(\n    \"the episode\"\n    episode: Episode = NEWHOPE\n  ): Character\n}\n")
	})
	t.Run("schema definition", func(t *testing.T) {
		run(t, `"the schema" schema @ks {query: Query}`,
			"\"the schema\"\nschema @ks {\n  query: Query\n}\n")
	})
	t.Run("implements and bodyless types", func(t *testing.T) {
		run(t, "type A implements B & C @tag {x: Int} scalar S type Empty",
			"type A implements B & C @tag {\n  x: Int\n}\n\nscalar S\n\ntype Empty\n")
	})
	t.Run("type system definitions", func(t *testing.T) {
		run(t, "union U = |A |B enum E {A B @dep} input I {x: Float = 1} directive @cache(ttl: Int = 60) repeatable on FIELD_DEFINITION | OBJECT fragment F on T {f}",
			"union U = A | B\n\nenum E {\n  A\n  B @dep\n}\n\ninput I {\n  x: Float = 1.0\n}\n\ndirective @cache(ttl: Int = 60) repeatable on FIELD_DEFINITION | OBJECT\n\nfragment F on T {\n  f\n}\n")
	})
	t.Run("variables directives and fragments", func(t *testing.T) {
		run(t, "query Q($a: [Int!]! = [1 2] $b: Boolean = false @opt) @traced {f(x: $a) @include(if: $b) {...s ... on T {g}}}",
			"query Q($a: [Int!]! = [1, 2], $b: Boolean = false @opt) @traced {\n  f(x: $a) @include(if: $b) {\n    ...s\n    ... on T {\n      g\n    }\n  }\n}\n")
	})
	t.Run("subscription with unnamed variables", func(t *testing.T) {
		run(t, "subscription ($id: ID!) {updated(id: $id)}",
			"subscription ($id: ID!) {\n  updated(id: $id)\n}\n")
	})
	t.Run("untyped inline fragment with directive", func(t *testing.T) {
		run(t, "{... @defer {slow}}",
			"{\n  ... @defer {\n    slow\n  }\n}\n")
	})
	t.Run("empty document", func(t *testing.T) {
		run(t, "", "")
	})
}

func TestPrintSchemaDefinition(t *testing.T) {
	document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars.graphqls")

	out, err := PrintBytes(document)
	require.NoError(t, err)

	goldie.Assert(t, "starwars_schema_definition", out)
	if t.Failed() {
		fixture, err := os.ReadFile("./fixtures/starwars_schema_definition.golden")
		require.NoError(t, err)
		diffview.NewGoland().DiffViewBytes("starwars_schema_definition", fixture, out)
	}
}

func TestPrintOperationDefinitions(t *testing.T) {
	document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars_operations.graphql")

	out, err := PrintBytes(document)
	require.NoError(t, err)

	goldie.Assert(t, "starwars_operations", out)
	if t.Failed() {
		fixture, err := os.ReadFile("./fixtures/starwars_operations.golden")
		require.NoError(t, err)
		diffview.NewGoland().DiffViewBytes("starwars_operations", fixture, out)
	}
}

// The canonical form must be a fixed point: printing a reparsed canonical
// document yields the identical bytes.
func TestPrintIsStable(t *testing.T) {
	document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars.graphqls")

	first, err := PrintString(document)
	require.NoError(t, err)

	reparsed := unsafeparser.ParseGraphqlDocumentString(first)
	second, err := PrintString(reparsed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Descriptions reachable only through escape sequences, like content with
// leading or trailing line breaks, must survive the parse/print/reparse cycle
// unchanged and must keep printing the same bytes.
func TestPrintDescriptionRoundTrip(t *testing.T) {
	inputs := []string{
		"\"a\\n\" scalar X",
		"\"\\nabc\" scalar X",
		"\"a\\nb\\n\" scalar X",
		"\" \\n \" scalar X",
		"\"\"\"\nfirst\n  second\n\"\"\"\nscalar X",
	}
	for _, input := range inputs {
		document := unsafeparser.ParseGraphqlDocumentString(input)

		first, err := PrintString(document)
		require.NoError(t, err)

		reparsed := unsafeparser.ParseGraphqlDocumentString(first)
		require.False(t, astdiff.Diff(document, reparsed).IsPresent(), "input: %s", input)

		second, err := PrintString(reparsed)
		require.NoError(t, err)
		assert.Equal(t, first, second, "input: %s", input)
	}
}

// Cross check with an independent GraphQL implementation: whatever this
// printer emits must parse cleanly elsewhere.
func TestPrintedOutputIsValidGraphQL(t *testing.T) {
	t.Run("schema", func(t *testing.T) {
		document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars.graphqls")
		out, err := PrintString(document)
		require.NoError(t, err)

		_, parseErr := gqlparser.ParseSchema(&gqlast.Source{Name: "starwars.graphqls", Input: out})
		if parseErr != nil {
			t.Fatalf("printed schema is not valid GraphQL: %s", parseErr.Error())
		}
	})
	t.Run("operations", func(t *testing.T) {
		document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars_operations.graphql")
		out, err := PrintString(document)
		require.NoError(t, err)

		_, parseErr := gqlparser.ParseQuery(&gqlast.Source{Name: "starwars_operations.graphql", Input: out})
		if parseErr != nil {
			t.Fatalf("printed operations are not valid GraphQL: %s", parseErr.Error())
		}
	})
}

func TestPrintErrors(t *testing.T) {
	t.Run("unknown value kind", func(t *testing.T) {
		document := unsafeparser.ParseGraphqlDocumentString("{f(a: 1)}")
		operation := document.Definitions[0]
		field := operationField(t, operation)
		field.Arguments[0].Value.Kind = ast.ValueKindUnknown

		_, err := PrintString(document)
		var unknown ErrUnknownValueKind
		require.ErrorAs(t, err, &unknown)
	})
	t.Run("invalid type reference", func(t *testing.T) {
		document := unsafeparser.ParseGraphqlDocumentString("type Q {f: Int}")
		object := document.Definitions[0]
		objectTypeField(t, object).Type.OfType = nil
		objectTypeField(t, object).Type.TypeKind = ast.TypeKind(99)

		_, err := PrintString(document)
		var invalid ErrInvalidTypeReference
		require.ErrorAs(t, err, &invalid)
	})
}

func BenchmarkPrint(b *testing.B) {
	document := unsafeparser.ParseGraphqlDocumentFile("./testdata/starwars.graphqls")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := PrintBytes(document); err != nil {
			b.Fatal(err)
		}
	}
}
