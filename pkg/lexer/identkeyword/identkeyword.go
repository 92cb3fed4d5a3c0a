// Package identkeyword classifies ident literals into the keywords the parser
// dispatches on. The lexer emits every name as keyword.IDENT; whether "type"
// is a keyword or a field name depends on grammar position, so the mapping
// lives here instead of the lexer.
package identkeyword

type IdentKeyword int

const (
	UNDEFINED IdentKeyword = iota
	ON
	TRUE
	FALSE
	NULL
	TYPE
	QUERY
	MUTATION
	SUBSCRIPTION
	FRAGMENT
	ENUM
	UNION
	INPUT
	SCALAR
	SCHEMA
	INTERFACE
	DIRECTIVE
	IMPLEMENTS
	REPEATABLE
)

func KeywordFromLiteral(literal string) IdentKeyword {
	switch len(literal) {
	case 2:
		if literal == "on" {
			return ON
		}
	case 4:
		switch literal {
		case "true":
			return TRUE
		case "null":
			return NULL
		case "type":
			return TYPE
		case "enum":
			return ENUM
		}
	case 5:
		switch literal {
		case "false":
			return FALSE
		case "query":
			return QUERY
		case "union":
			return UNION
		case "input":
			return INPUT
		}
	case 6:
		switch literal {
		case "scalar":
			return SCALAR
		case "schema":
			return SCHEMA
		}
	case 8:
		switch literal {
		case "mutation":
			return MUTATION
		case "fragment":
			return FRAGMENT
		}
	case 9:
		switch literal {
		case "interface":
			return INTERFACE
		case "directive":
			return DIRECTIVE
		}
	case 10:
		switch literal {
		case "implements":
			return IMPLEMENTS
		case "repeatable":
			return REPEATABLE
		}
	case 12:
		if literal == "subscription" {
			return SUBSCRIPTION
		}
	}
	return UNDEFINED
}

func (k IdentKeyword) String() string {
	switch k {
	case ON:
		return "on"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NULL:
		return "null"
	case TYPE:
		return "type"
	case QUERY:
		return "query"
	case MUTATION:
		return "mutation"
	case SUBSCRIPTION:
		return "subscription"
	case FRAGMENT:
		return "fragment"
	case ENUM:
		return "enum"
	case UNION:
		return "union"
	case INPUT:
		return "input"
	case SCALAR:
		return "scalar"
	case SCHEMA:
		return "schema"
	case INTERFACE:
		return "interface"
	case DIRECTIVE:
		return "directive"
	case IMPLEMENTS:
		return "implements"
	case REPEATABLE:
		return "repeatable"
	default:
		return "UNDEFINED"
	}
}
