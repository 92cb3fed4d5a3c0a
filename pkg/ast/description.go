package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// Description is the optional documentation string attached to a definition,
// field, argument or enum value. Content is the decoded string value: block
// string descriptions are stored after the dedent algorithm, so leading and
// trailing whitespace that survives dedenting is significant and preserved.
type Description struct {
	IsDefined bool
	Content   string
	Position  position.Position
}
