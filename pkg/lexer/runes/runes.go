// Package runes defines the rune constants the lexer dispatches on.
package runes

const (
	EOF            = 0
	COLON          = ':'
	BANG           = '!'
	CARRIAGERETURN = '\r'
	LINETERMINATOR = '\n'
	TAB            = '\t'
	SPACE          = ' '
	COMMA          = ','
	HASHTAG        = '#'
	QUOTE          = '"'
	BACKSLASH      = '\\'
	DOT            = '.'
	AT             = '@'
	DOLLAR         = '$'
	PIPE           = '|'
	EQUALS         = '='
	SUB            = '-'
	PLUS           = '+'
	AND            = '&'
	UNDERSCORE     = '_'

	LPAREN = '('
	RPAREN = ')'
	LBRACK = '['
	RBRACK = ']'
	LBRACE = '{'
	RBRACE = '}'
)
