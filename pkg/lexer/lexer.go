// Package lexer turns raw GraphQL document bytes into a stream of tokens.
package lexer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jensneuse/graphql-frontend/pkg/lexer/keyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/position"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/runes"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/token"
)

// Lexer emits tokens from raw input bytes. Whitespace, commas and comments are
// skipped as trivia. Read cannot be undone.
type Lexer struct {
	input         []byte
	inputPosition int
	line          uint32
	char          uint32
}

func NewLexer() *Lexer {
	return &Lexer{}
}

// SetInput sets the input and resets all position state.
func (l *Lexer) SetInput(input []byte) {
	l.input = input
	l.inputPosition = 0
	l.line = 1
	l.char = 1
}

// Read emits the next token or a lex error carrying the offending position.
func (l *Lexer) Read() (token.Token, error) {
	l.skipWhitespace()

	start := l.textPosition()

	if !l.hasMore() {
		return l.emit(keyword.EOF, "", start), nil
	}

	switch b := l.input[l.inputPosition]; b {
	case runes.COLON:
		l.advance()
		return l.emit(keyword.COLON, ":", start), nil
	case runes.BANG:
		l.advance()
		return l.emit(keyword.BANG, "!", start), nil
	case runes.AT:
		l.advance()
		return l.emit(keyword.AT, "@", start), nil
	case runes.DOLLAR:
		l.advance()
		return l.emit(keyword.DOLLAR, "$", start), nil
	case runes.PIPE:
		l.advance()
		return l.emit(keyword.PIPE, "|", start), nil
	case runes.EQUALS:
		l.advance()
		return l.emit(keyword.EQUALS, "=", start), nil
	case runes.AND:
		l.advance()
		return l.emit(keyword.AND, "&", start), nil
	case runes.LPAREN:
		l.advance()
		return l.emit(keyword.LPAREN, "(", start), nil
	case runes.RPAREN:
		l.advance()
		return l.emit(keyword.RPAREN, ")", start), nil
	case runes.LBRACK:
		l.advance()
		return l.emit(keyword.LBRACK, "[", start), nil
	case runes.RBRACK:
		l.advance()
		return l.emit(keyword.RBRACK, "]", start), nil
	case runes.LBRACE:
		l.advance()
		return l.emit(keyword.LBRACE, "{", start), nil
	case runes.RBRACE:
		l.advance()
		return l.emit(keyword.RBRACE, "}", start), nil
	case runes.DOT:
		return l.readSpread(start)
	case runes.QUOTE:
		return l.readString(start)
	case runes.SUB:
		return l.readNumber(start)
	default:
		if byteIsDigit(b) {
			return l.readNumber(start)
		}
		if byteIsIdentStart(b) {
			return l.readIdent(start), nil
		}
		l.advance()
		return token.Token{}, ErrInvalidCharacter{Literal: string(b), TextPosition: start}
	}
}

func (l *Lexer) hasMore() bool {
	return l.inputPosition < len(l.input)
}

func (l *Lexer) textPosition() position.Position {
	return position.Position{
		LineStart: l.line,
		CharStart: l.char,
		LineEnd:   l.line,
		CharEnd:   l.char,
	}
}

func (l *Lexer) emit(k keyword.Keyword, literal string, start position.Position) token.Token {
	start.LineEnd = l.line
	start.CharEnd = l.char
	return token.Token{
		Keyword:      k,
		Literal:      literal,
		TextPosition: start,
	}
}

func (l *Lexer) advance() byte {
	b := l.input[l.inputPosition]
	l.inputPosition++
	switch b {
	case runes.LINETERMINATOR:
		// \r\n counts as a single line terminator, already counted at the \r
		if l.inputPosition < 2 || l.input[l.inputPosition-2] != runes.CARRIAGERETURN {
			l.line++
			l.char = 1
		}
	case runes.CARRIAGERETURN:
		l.line++
		l.char = 1
	default:
		l.char++
	}
	return b
}

func (l *Lexer) peekEquals(equals string) bool {
	return bytes.HasPrefix(l.input[l.inputPosition:], []byte(equals))
}

func (l *Lexer) skipWhitespace() {
	for l.hasMore() {
		switch l.input[l.inputPosition] {
		case runes.SPACE, runes.TAB, runes.LINETERMINATOR, runes.CARRIAGERETURN, runes.COMMA:
			l.advance()
		case runes.HASHTAG:
			l.skipComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.hasMore() {
		b := l.input[l.inputPosition]
		if b == runes.LINETERMINATOR || b == runes.CARRIAGERETURN {
			return
		}
		l.advance()
	}
}

func (l *Lexer) readSpread(start position.Position) (token.Token, error) {
	if !l.peekEquals("...") {
		l.advance()
		return token.Token{}, ErrInvalidCharacter{Literal: ".", TextPosition: start}
	}
	l.advance()
	l.advance()
	l.advance()
	return l.emit(keyword.SPREAD, "...", start), nil
}

func (l *Lexer) readIdent(start position.Position) token.Token {
	identStart := l.inputPosition
	for l.hasMore() && byteIsIdent(l.input[l.inputPosition]) {
		l.advance()
	}
	return l.emit(keyword.IDENT, string(l.input[identStart:l.inputPosition]), start)
}

func (l *Lexer) readNumber(start position.Position) (token.Token, error) {
	numStart := l.inputPosition
	isFloat := false

	if l.hasMore() && l.input[l.inputPosition] == runes.SUB {
		l.advance()
	}

	if !l.hasMore() || !byteIsDigit(l.input[l.inputPosition]) {
		return token.Token{}, ErrInvalidNumericLiteral{
			Literal:      string(l.input[numStart:l.inputPosition]),
			TextPosition: start,
		}
	}
	l.swallowDigits()

	if l.hasMore() && l.input[l.inputPosition] == runes.DOT {
		isFloat = true
		l.advance()
		if !l.hasMore() || !byteIsDigit(l.input[l.inputPosition]) {
			return token.Token{}, ErrInvalidNumericLiteral{
				Literal:      string(l.input[numStart:l.inputPosition]),
				TextPosition: start,
			}
		}
		l.swallowDigits()
	}

	if l.hasMore() && (l.input[l.inputPosition] == 'e' || l.input[l.inputPosition] == 'E') {
		isFloat = true
		l.advance()
		if l.hasMore() && (l.input[l.inputPosition] == runes.PLUS || l.input[l.inputPosition] == runes.SUB) {
			l.advance()
		}
		if !l.hasMore() || !byteIsDigit(l.input[l.inputPosition]) {
			return token.Token{}, ErrInvalidNumericLiteral{
				Literal:      string(l.input[numStart:l.inputPosition]),
				TextPosition: start,
			}
		}
		l.swallowDigits()
	}

	literal := string(l.input[numStart:l.inputPosition])

	// a number must not run into a name or another number
	if l.hasMore() {
		if b := l.input[l.inputPosition]; byteIsIdentStart(b) || byteIsDigit(b) || b == runes.DOT {
			return token.Token{}, ErrInvalidNumericLiteral{Literal: literal, TextPosition: start}
		}
	}

	if isFloat {
		if _, err := strconv.ParseFloat(literal, 64); err != nil {
			return token.Token{}, ErrInvalidNumericLiteral{Literal: literal, TextPosition: start}
		}
		return l.emit(keyword.FLOAT, literal, start), nil
	}

	if _, err := strconv.ParseInt(literal, 10, 32); err != nil {
		return token.Token{}, ErrInvalidNumericLiteral{Literal: literal, TextPosition: start}
	}
	return l.emit(keyword.INTEGER, literal, start), nil
}

func (l *Lexer) swallowDigits() {
	for l.hasMore() && byteIsDigit(l.input[l.inputPosition]) {
		l.advance()
	}
}

func (l *Lexer) readString(start position.Position) (token.Token, error) {
	l.advance()

	if l.peekEquals(`""`) {
		l.advance()
		l.advance()
		return l.readBlockString(start)
	}

	return l.readSingleLineString(start)
}

func (l *Lexer) readSingleLineString(start position.Position) (token.Token, error) {
	var content strings.Builder

	for {
		if !l.hasMore() {
			return token.Token{}, ErrUnterminatedString{TextPosition: start}
		}

		switch b := l.advance(); b {
		case runes.QUOTE:
			return l.emit(keyword.STRING, content.String(), start), nil
		case runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return token.Token{}, ErrUnterminatedString{TextPosition: start}
		case runes.BACKSLASH:
			if !l.hasMore() {
				return token.Token{}, ErrUnterminatedString{TextPosition: start}
			}
			if err := l.readEscape(&content, start); err != nil {
				return token.Token{}, err
			}
		default:
			content.WriteByte(b)
		}
	}
}

func (l *Lexer) readEscape(content *strings.Builder, start position.Position) error {
	switch esc := l.advance(); esc {
	case runes.QUOTE:
		content.WriteByte(runes.QUOTE)
	case runes.BACKSLASH:
		content.WriteByte(runes.BACKSLASH)
	case '/':
		content.WriteByte('/')
	case 'b':
		content.WriteByte('\b')
	case 'f':
		content.WriteByte('\f')
	case 'n':
		content.WriteByte('\n')
	case 'r':
		content.WriteByte('\r')
	case 't':
		content.WriteByte('\t')
	case 'u':
		if len(l.input)-l.inputPosition < 4 {
			return ErrUnterminatedString{TextPosition: start}
		}
		hex := string(l.input[l.inputPosition : l.inputPosition+4])
		code, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ErrInvalidEscape{Literal: "u" + hex, TextPosition: start}
		}
		for i := 0; i < 4; i++ {
			l.advance()
		}
		content.WriteRune(rune(code))
	default:
		return ErrInvalidEscape{Literal: string(esc), TextPosition: start}
	}
	return nil
}

func (l *Lexer) readBlockString(start position.Position) (token.Token, error) {
	rawStart := l.inputPosition

	for {
		if !l.hasMore() {
			return token.Token{}, ErrUnterminatedString{BlockString: true, TextPosition: start}
		}

		if l.peekEquals(`\"""`) {
			for i := 0; i < 4; i++ {
				l.advance()
			}
			continue
		}

		if l.peekEquals(`"""`) {
			raw := l.input[rawStart:l.inputPosition]
			l.advance()
			l.advance()
			l.advance()
			return l.emit(keyword.BLOCKSTRING, dedentBlockString(raw), start), nil
		}

		l.advance()
	}
}

func byteIsIdentStart(b byte) bool {
	return b == runes.UNDERSCORE ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func byteIsIdent(b byte) bool {
	return byteIsIdentStart(b) || byteIsDigit(b)
}

func byteIsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
