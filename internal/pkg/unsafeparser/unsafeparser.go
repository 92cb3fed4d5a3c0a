// Package unsafeparser makes it easier to parse documents in tests where
// error handling would only add noise.
package unsafeparser

import (
	"os"

	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/astparser"
)

// ParseGraphqlDocumentString parses input and panics on error.
func ParseGraphqlDocumentString(input string) *ast.Document {
	document, err := astparser.ParseGraphqlDocumentString(input)
	if err != nil {
		panic(err)
	}
	return document
}

// ParseGraphqlDocumentFile reads and parses the file at path and panics on
// error.
func ParseGraphqlDocumentFile(path string) *ast.Document {
	content, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	document, err := astparser.NewParser().Parse(content, path)
	if err != nil {
		panic(err)
	}
	return document
}
