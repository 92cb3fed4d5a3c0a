// Package literal holds the byte literals shared by the lexer and the printer.
package literal

var (
	COLON          = []byte(":")
	BANG           = []byte("!")
	LINETERMINATOR = []byte("\n")
	SPACE          = []byte(" ")
	QUOTE          = []byte(`"`)
	BLOCKQUOTE     = []byte(`"""`)
	COMMA          = []byte(",")
	AT             = []byte("@")
	DOLLAR         = []byte("$")
	SPREAD         = []byte("...")
	PIPE           = []byte("|")
	EQUALS         = []byte("=")
	AND            = []byte("&")
	INDENT         = []byte("  ")

	LPAREN = []byte("(")
	RPAREN = []byte(")")
	LBRACK = []byte("[")
	RBRACK = []byte("]")
	LBRACE = []byte("{")
	RBRACE = []byte("}")

	QUERY        = []byte("query")
	MUTATION     = []byte("mutation")
	SUBSCRIPTION = []byte("subscription")
	FRAGMENT     = []byte("fragment")
	SCHEMA       = []byte("schema")
	SCALAR       = []byte("scalar")
	TYPE         = []byte("type")
	INTERFACE    = []byte("interface")
	UNION        = []byte("union")
	ENUM         = []byte("enum")
	INPUT        = []byte("input")
	DIRECTIVE    = []byte("directive")
	IMPLEMENTS   = []byte("implements")
	REPEATABLE   = []byte("repeatable")
	ON           = []byte("on")
	TRUE         = []byte("true")
	FALSE        = []byte("false")
	NULL         = []byte("null")

	INT     = []byte("Int")
	FLOAT   = []byte("Float")
	STRING  = []byte("String")
	BOOLEAN = []byte("Boolean")
	ID      = []byte("ID")
)
