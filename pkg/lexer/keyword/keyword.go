// Package keyword defines the structural token keywords emitted by the lexer.
package keyword

type Keyword int

const (
	UNDEFINED Keyword = iota
	EOF
	IDENT
	COMMENT

	COLON
	BANG
	AT
	DOLLAR
	PIPE
	EQUALS
	AND
	SPREAD

	STRING
	BLOCKSTRING
	INTEGER
	FLOAT

	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
)

func (k Keyword) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case COMMENT:
		return "COMMENT"
	case COLON:
		return "COLON"
	case BANG:
		return "BANG"
	case AT:
		return "AT"
	case DOLLAR:
		return "DOLLAR"
	case PIPE:
		return "PIPE"
	case EQUALS:
		return "EQUALS"
	case AND:
		return "AND"
	case SPREAD:
		return "SPREAD"
	case STRING:
		return "STRING"
	case BLOCKSTRING:
		return "BLOCKSTRING"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACK:
		return "LBRACK"
	case RBRACK:
		return "RBRACK"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	default:
		return "UNDEFINED"
	}
}
