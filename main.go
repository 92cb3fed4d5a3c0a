// Package graphql-frontend is a library for lexing, parsing and printing GraphQL documents.
//
// It contains a full AST for the GraphQL type system and executable languages,
// a recursive descent parser producing that AST, a printer emitting a single
// canonical text form and a structural diff to verify that parse/print round
// trips lose no information.
//
// The binary exposes the same functionality on the command line: `fmt` prints
// a single file in canonical form, `corpus` round trips a whole directory tree.
package main

import "github.com/jensneuse/graphql-frontend/cmd"

func main() {
	cmd.Execute()
}
