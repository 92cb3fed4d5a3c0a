// Package astparser implements a recursive descent parser for GraphQL type
// system and operation documents. The parser is fail fast: the first
// malformed construct aborts parsing and no partial document is returned.
package astparser

import (
	"runtime"

	"github.com/jensneuse/graphql-frontend/internal/pkg/unsafebytes"
	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/lexer"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/identkeyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/keyword"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/token"
)

// DefaultMaxDepth bounds type reference, value and selection set nesting.
const DefaultMaxDepth = 128

type Options func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth overrides the maximum nesting depth the parser accepts before
// rejecting the document with ErrDepthLimitExceeded.
func WithMaxDepth(maxDepth int) Options {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

type Parser struct {
	lexer        *lexer.Lexer
	document     *ast.Document
	err          error
	maxDepth     int
	depth        int
	lookAhead    token.Token
	hasLookAhead bool
}

func NewParser(opts ...Options) *Parser {
	o := options{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		lexer:    lexer.NewLexer(),
		maxDepth: o.maxDepth,
	}
}

// ParseGraphqlDocumentBytes parses input using a one shot parser.
func ParseGraphqlDocumentBytes(input []byte) (*ast.Document, error) {
	return NewParser().Parse(input, "")
}

// ParseGraphqlDocumentString parses input using a one shot parser.
func ParseGraphqlDocumentString(input string) (*ast.Document, error) {
	return ParseGraphqlDocumentBytes([]byte(input))
}

// Parse consumes the input and produces exactly one document or an error.
// sourceName is a symbolic origin (file path) used for diagnostics only.
func (p *Parser) Parse(input []byte, sourceName string) (*ast.Document, error) {
	p.lexer.SetInput(input)
	p.document = &ast.Document{SourceName: sourceName}
	p.err = nil
	p.depth = 0
	p.hasLookAhead = false
	p.parse()
	if p.err != nil {
		return nil, p.err
	}
	return p.document, nil
}

func (p *Parser) parse() {
	for p.err == nil {
		switch p.peek() {
		case keyword.EOF:
			p.read()
			return
		case keyword.STRING, keyword.BLOCKSTRING:
			p.parseRootDescription()
		case keyword.LBRACE:
			p.parseAnonymousOperationDefinition()
		case keyword.IDENT:
			switch p.peekIdentKeyword() {
			case identkeyword.SCHEMA:
				p.parseSchemaDefinition(nil)
			case identkeyword.SCALAR:
				p.parseScalarTypeDefinition(nil)
			case identkeyword.TYPE:
				p.parseObjectTypeDefinition(nil)
			case identkeyword.INTERFACE:
				p.parseInterfaceTypeDefinition(nil)
			case identkeyword.UNION:
				p.parseUnionTypeDefinition(nil)
			case identkeyword.ENUM:
				p.parseEnumTypeDefinition(nil)
			case identkeyword.INPUT:
				p.parseInputObjectTypeDefinition(nil)
			case identkeyword.DIRECTIVE:
				p.parseDirectiveDefinition(nil)
			case identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION:
				p.parseOperationDefinition()
			case identkeyword.FRAGMENT:
				p.parseFragmentDefinition()
			default:
				p.errUnexpectedToken(p.read())
			}
		default:
			p.errUnexpectedToken(p.read())
		}
	}
}

// read emits the next token, this cannot be undone
func (p *Parser) read() token.Token {
	if p.hasLookAhead {
		p.hasLookAhead = false
		return p.lookAhead
	}
	tok, err := p.lexer.Read()
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		return token.Token{Keyword: keyword.EOF}
	}
	return tok
}

// peek returns the keyword of the next token without consuming it
func (p *Parser) peek() keyword.Keyword {
	return p.peekToken().Keyword
}

func (p *Parser) peekToken() token.Token {
	if p.err != nil {
		return token.Token{Keyword: keyword.EOF}
	}
	if !p.hasLookAhead {
		tok, err := p.lexer.Read()
		if err != nil {
			p.err = err
			return token.Token{Keyword: keyword.EOF}
		}
		p.lookAhead = tok
		p.hasLookAhead = true
	}
	return p.lookAhead
}

// peekIdentKeyword classifies the next token literal when it is an ident
func (p *Parser) peekIdentKeyword() identkeyword.IdentKeyword {
	next := p.peekToken()
	if next.Keyword != keyword.IDENT {
		return identkeyword.UNDEFINED
	}
	return identkeyword.KeywordFromLiteral(next.Literal)
}

func (p *Parser) mustRead(oneOf ...keyword.Keyword) (next token.Token) {
	next = p.read()
	if len(oneOf) == 0 {
		return
	}
	for i := range oneOf {
		if next.Keyword == oneOf[i] {
			return
		}
	}
	p.errUnexpectedToken(next, oneOf...)
	return
}

func (p *Parser) mustReadIdentKeyword(key identkeyword.IdentKeyword) (next token.Token) {
	next = p.read()
	if next.Keyword != keyword.IDENT || identkeyword.KeywordFromLiteral(next.Literal) != key {
		p.errUnexpectedToken(next, keyword.IDENT)
	}
	return
}

func (p *Parser) errUnexpectedToken(unexpected token.Token, expectedKeywords ...keyword.Keyword) {
	if p.err != nil {
		return
	}

	origins := make([]origin, 3)
	for i := range origins {
		fpcs := make([]uintptr, 1)
		callers := runtime.Callers(2+i, fpcs)

		if callers == 0 {
			origins = origins[:i]
			break
		}

		fn := runtime.FuncForPC(fpcs[0])
		file, line := fn.FileLine(fpcs[0])

		origins[i].file = file
		origins[i].line = line
		origins[i].funcName = fn.Name()
	}

	p.err = ErrUnexpectedToken{
		keyword:  unexpected.Keyword,
		position: unexpected.TextPosition,
		literal:  unexpected.Literal,
		origins:  origins,
	}
	if len(expectedKeywords) > 0 {
		p.err = ErrUnexpectedToken{
			keyword:  unexpected.Keyword,
			expected: expectedKeywords,
			position: unexpected.TextPosition,
			literal:  unexpected.Literal,
			origins:  origins,
		}
	}
}

func (p *Parser) enterNesting() bool {
	p.depth++
	if p.depth > p.maxDepth {
		if p.err == nil {
			p.err = ErrDepthLimitExceeded{limit: p.maxDepth}
		}
		return false
	}
	return true
}

func (p *Parser) leaveNesting() {
	p.depth--
}

func (p *Parser) parseRootDescription() {
	description := p.parseDescription()

	switch p.peekIdentKeyword() {
	case identkeyword.SCHEMA:
		p.parseSchemaDefinition(&description)
	case identkeyword.SCALAR:
		p.parseScalarTypeDefinition(&description)
	case identkeyword.TYPE:
		p.parseObjectTypeDefinition(&description)
	case identkeyword.INTERFACE:
		p.parseInterfaceTypeDefinition(&description)
	case identkeyword.UNION:
		p.parseUnionTypeDefinition(&description)
	case identkeyword.ENUM:
		p.parseEnumTypeDefinition(&description)
	case identkeyword.INPUT:
		p.parseInputObjectTypeDefinition(&description)
	case identkeyword.DIRECTIVE:
		p.parseDirectiveDefinition(&description)
	default:
		p.errUnexpectedToken(p.read())
	}
}

func (p *Parser) parseDescription() ast.Description {
	tok := p.mustRead(keyword.STRING, keyword.BLOCKSTRING)
	return ast.Description{
		IsDefined: true,
		Content:   tok.Literal,
		Position:  tok.TextPosition,
	}
}

func (p *Parser) parseSchemaDefinition(description *ast.Description) {
	schemaDefinition := ast.SchemaDefinition{}
	if description != nil {
		schemaDefinition.Description = *description
	}
	schemaDefinition.Position = p.mustReadIdentKeyword(identkeyword.SCHEMA).TextPosition

	if p.peek() == keyword.AT {
		schemaDefinition.Directives = p.parseDirectiveList()
	}

	schemaDefinition.RootOperationTypeDefinitions = p.parseRootOperationTypeDefinitionList()

	p.putDefinition(&schemaDefinition)
}

func (p *Parser) parseRootOperationTypeDefinitionList() (list []ast.RootOperationTypeDefinition) {
	p.mustRead(keyword.LBRACE)

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACE:
			if len(list) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT)
				return
			}
			p.read()
			return
		case keyword.IDENT:
			operationType := p.parseOperationType()
			p.mustRead(keyword.COLON)
			namedType := p.mustRead(keyword.IDENT)
			list = append(list, ast.RootOperationTypeDefinition{
				OperationType: operationType,
				NamedType:     namedType.Literal,
				Position:      namedType.TextPosition,
			})
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.RBRACE)
			return
		}
	}
	return
}

func (p *Parser) parseOperationType() ast.OperationType {
	operationType := p.read()
	switch identkeyword.KeywordFromLiteral(operationType.Literal) {
	case identkeyword.QUERY:
		return ast.OperationTypeQuery
	case identkeyword.MUTATION:
		return ast.OperationTypeMutation
	case identkeyword.SUBSCRIPTION:
		return ast.OperationTypeSubscription
	default:
		p.errUnexpectedToken(operationType)
		return ast.OperationTypeUndefined
	}
}

func (p *Parser) parseScalarTypeDefinition(description *ast.Description) {
	scalarTypeDefinition := ast.ScalarTypeDefinition{}
	if description != nil {
		scalarTypeDefinition.Description = *description
	}
	scalarTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.SCALAR).TextPosition
	scalarTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.AT {
		scalarTypeDefinition.Directives = p.parseDirectiveList()
	}
	p.putDefinition(&scalarTypeDefinition)
}

func (p *Parser) parseObjectTypeDefinition(description *ast.Description) {
	objectTypeDefinition := ast.ObjectTypeDefinition{}
	if description != nil {
		objectTypeDefinition.Description = *description
	}
	objectTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.TYPE).TextPosition
	objectTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peekIdentKeyword() == identkeyword.IMPLEMENTS {
		objectTypeDefinition.ImplementsInterfaces = p.parseImplementsInterfaces()
	}
	if p.peek() == keyword.AT {
		objectTypeDefinition.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.LBRACE {
		objectTypeDefinition.FieldsDefinition = p.parseFieldDefinitionList()
	}
	p.putDefinition(&objectTypeDefinition)
}

func (p *Parser) parseInterfaceTypeDefinition(description *ast.Description) {
	interfaceTypeDefinition := ast.InterfaceTypeDefinition{}
	if description != nil {
		interfaceTypeDefinition.Description = *description
	}
	interfaceTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.INTERFACE).TextPosition
	interfaceTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peekIdentKeyword() == identkeyword.IMPLEMENTS {
		interfaceTypeDefinition.ImplementsInterfaces = p.parseImplementsInterfaces()
	}
	if p.peek() == keyword.AT {
		interfaceTypeDefinition.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.LBRACE {
		interfaceTypeDefinition.FieldsDefinition = p.parseFieldDefinitionList()
	}
	p.putDefinition(&interfaceTypeDefinition)
}

func (p *Parser) parseImplementsInterfaces() (list []string) {
	p.mustReadIdentKeyword(identkeyword.IMPLEMENTS)

	// an optional leading ampersand is allowed
	if p.peek() == keyword.AND {
		p.read()
	}

	list = append(list, p.mustRead(keyword.IDENT).Literal)

	for p.err == nil && p.peek() == keyword.AND {
		p.read()
		list = append(list, p.mustRead(keyword.IDENT).Literal)
	}

	return
}

func (p *Parser) parseUnionTypeDefinition(description *ast.Description) {
	unionTypeDefinition := ast.UnionTypeDefinition{}
	if description != nil {
		unionTypeDefinition.Description = *description
	}
	unionTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.UNION).TextPosition
	unionTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.AT {
		unionTypeDefinition.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.EQUALS {
		unionTypeDefinition.UnionMemberTypes = p.parseUnionMemberTypes()
	}
	p.putDefinition(&unionTypeDefinition)
}

func (p *Parser) parseUnionMemberTypes() (members []string) {
	p.mustRead(keyword.EQUALS)

	// an optional leading pipe is allowed
	if p.peek() == keyword.PIPE {
		p.read()
	}

	members = append(members, p.mustRead(keyword.IDENT).Literal)

	for p.err == nil && p.peek() == keyword.PIPE {
		p.read()
		members = append(members, p.mustRead(keyword.IDENT).Literal)
	}

	return
}

func (p *Parser) parseEnumTypeDefinition(description *ast.Description) {
	enumTypeDefinition := ast.EnumTypeDefinition{}
	if description != nil {
		enumTypeDefinition.Description = *description
	}
	enumTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.ENUM).TextPosition
	enumTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.AT {
		enumTypeDefinition.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.LBRACE {
		enumTypeDefinition.EnumValuesDefinition = p.parseEnumValueDefinitionList()
	}
	p.putDefinition(&enumTypeDefinition)
}

func (p *Parser) parseEnumValueDefinitionList() (list []ast.EnumValueDefinition) {
	p.mustRead(keyword.LBRACE)

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACE:
			if len(list) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT)
				return
			}
			p.read()
			return
		case keyword.STRING, keyword.BLOCKSTRING, keyword.IDENT:
			list = append(list, p.parseEnumValueDefinition())
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.RBRACE)
			return
		}
	}
	return
}

func (p *Parser) parseEnumValueDefinition() (definition ast.EnumValueDefinition) {
	switch p.peek() {
	case keyword.STRING, keyword.BLOCKSTRING:
		definition.Description = p.parseDescription()
	}

	// true, false and null are not valid enum values
	switch p.peekIdentKeyword() {
	case identkeyword.TRUE, identkeyword.FALSE, identkeyword.NULL:
		p.errUnexpectedToken(p.read())
		return
	}

	enumValue := p.mustRead(keyword.IDENT)
	definition.EnumValue = enumValue.Literal
	definition.Position = enumValue.TextPosition
	if p.peek() == keyword.AT {
		definition.Directives = p.parseDirectiveList()
	}
	return
}

func (p *Parser) parseInputObjectTypeDefinition(description *ast.Description) {
	inputObjectTypeDefinition := ast.InputObjectTypeDefinition{}
	if description != nil {
		inputObjectTypeDefinition.Description = *description
	}
	inputObjectTypeDefinition.Position = p.mustReadIdentKeyword(identkeyword.INPUT).TextPosition
	inputObjectTypeDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.AT {
		inputObjectTypeDefinition.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.LBRACE {
		inputObjectTypeDefinition.InputFieldsDefinition = p.parseInputValueDefinitionList(keyword.LBRACE, keyword.RBRACE)
	}
	p.putDefinition(&inputObjectTypeDefinition)
}

func (p *Parser) parseDirectiveDefinition(description *ast.Description) {
	directiveDefinition := ast.DirectiveDefinition{}
	if description != nil {
		directiveDefinition.Description = *description
	}
	directiveDefinition.Position = p.mustReadIdentKeyword(identkeyword.DIRECTIVE).TextPosition
	p.mustRead(keyword.AT)
	directiveDefinition.Name = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.LPAREN {
		directiveDefinition.ArgumentsDefinition = p.parseInputValueDefinitionList(keyword.LPAREN, keyword.RPAREN)
	}
	if p.peekIdentKeyword() == identkeyword.REPEATABLE {
		p.read()
		directiveDefinition.Repeatable = true
	}
	p.mustReadIdentKeyword(identkeyword.ON)
	directiveDefinition.DirectiveLocations = p.parseDirectiveLocations()
	p.putDefinition(&directiveDefinition)
}

func (p *Parser) parseDirectiveLocations() (locations []ast.DirectiveLocation) {
	// an optional leading pipe is allowed
	if p.peek() == keyword.PIPE {
		p.read()
	}

	locations = append(locations, p.parseDirectiveLocation())

	for p.err == nil && p.peek() == keyword.PIPE {
		p.read()
		locations = append(locations, p.parseDirectiveLocation())
	}

	return
}

func (p *Parser) parseDirectiveLocation() ast.DirectiveLocation {
	name := p.mustRead(keyword.IDENT)
	if p.err != nil {
		return ast.DirectiveLocationUnknown
	}
	location, ok := ast.DirectiveLocationFromName(name.Literal)
	if !ok {
		p.err = ErrInvalidDirectiveLocation{
			Literal:      name.Literal,
			TextPosition: name.TextPosition,
		}
		return ast.DirectiveLocationUnknown
	}
	return location
}

func (p *Parser) parseFieldDefinitionList() (list []ast.FieldDefinition) {
	p.mustRead(keyword.LBRACE)

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACE:
			if len(list) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT)
				return
			}
			p.read()
			return
		case keyword.STRING, keyword.BLOCKSTRING, keyword.IDENT:
			list = append(list, p.parseFieldDefinition())
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.RBRACE)
			return
		}
	}
	return
}

func (p *Parser) parseFieldDefinition() (definition ast.FieldDefinition) {
	switch p.peek() {
	case keyword.STRING, keyword.BLOCKSTRING:
		definition.Description = p.parseDescription()
	}

	name := p.mustRead(keyword.IDENT)
	definition.Name = name.Literal
	definition.Position = name.TextPosition
	if p.peek() == keyword.LPAREN {
		definition.ArgumentsDefinition = p.parseInputValueDefinitionList(keyword.LPAREN, keyword.RPAREN)
	}
	p.mustRead(keyword.COLON)
	definition.Type = p.parseType()
	if p.peek() == keyword.AT {
		definition.Directives = p.parseDirectiveList()
	}
	return
}

func (p *Parser) parseInputValueDefinitionList(opening, closing keyword.Keyword) (list []ast.InputValueDefinition) {
	p.mustRead(opening)

	for p.err == nil {
		switch p.peek() {
		case closing:
			if len(list) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT)
				return
			}
			p.read()
			return
		case keyword.STRING, keyword.BLOCKSTRING, keyword.IDENT:
			list = append(list, p.parseInputValueDefinition())
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, closing)
			return
		}
	}
	return
}

func (p *Parser) parseInputValueDefinition() (definition ast.InputValueDefinition) {
	switch p.peek() {
	case keyword.STRING, keyword.BLOCKSTRING:
		definition.Description = p.parseDescription()
	}

	name := p.mustRead(keyword.IDENT)
	definition.Name = name.Literal
	definition.Position = name.TextPosition
	p.mustRead(keyword.COLON)
	definition.Type = p.parseType()
	if p.peek() == keyword.EQUALS {
		p.read()
		value := p.parseValue()
		definition.DefaultValue = ast.Present(p.coerceDefaultValue(definition.Type, value))
	}
	if p.peek() == keyword.AT {
		definition.Directives = p.parseDirectiveList()
	}
	return
}

func (p *Parser) parseType() (t ast.Type) {
	if !p.enterNesting() {
		return
	}
	defer p.leaveNesting()

	switch p.peek() {
	case keyword.IDENT:
		named := p.read()
		t = ast.Type{
			TypeKind: ast.TypeKindNamed,
			Name:     named.Literal,
			Position: named.TextPosition,
		}
	case keyword.LBRACK:
		open := p.read()
		ofType := p.parseType()
		p.mustRead(keyword.RBRACK)
		t = ast.Type{
			TypeKind: ast.TypeKindList,
			OfType:   &ofType,
			Position: open.TextPosition,
		}
	default:
		p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.LBRACK)
		return
	}

	if p.peek() == keyword.BANG {
		bang := p.read()
		if p.peek() == keyword.BANG {
			p.errUnexpectedToken(p.read())
			return
		}
		inner := t
		t = ast.Type{
			TypeKind: ast.TypeKindNonNull,
			OfType:   &inner,
			Position: bang.TextPosition,
		}
	}

	return
}

func (p *Parser) parseValue() (value ast.Value) {
	if !p.enterNesting() {
		return
	}
	defer p.leaveNesting()

	switch p.peek() {
	case keyword.STRING, keyword.BLOCKSTRING:
		tok := p.read()
		value = ast.Value{
			Kind:        ast.ValueKindString,
			StringValue: tok.Literal,
			Position:    tok.TextPosition,
		}
	case keyword.INTEGER:
		tok := p.read()
		value = ast.Value{
			Kind:     ast.ValueKindInteger,
			IntValue: unsafebytes.StringToInt32(tok.Literal),
			Position: tok.TextPosition,
		}
	case keyword.FLOAT:
		tok := p.read()
		value = ast.Value{
			Kind:       ast.ValueKindFloat,
			FloatValue: unsafebytes.StringToFloat64(tok.Literal),
			Position:   tok.TextPosition,
		}
	case keyword.DOLLAR:
		dollar := p.read()
		name := p.mustRead(keyword.IDENT)
		value = ast.Value{
			Kind:          ast.ValueKindVariable,
			VariableValue: name.Literal,
			Position:      dollar.TextPosition,
		}
	case keyword.IDENT:
		tok := p.read()
		switch identkeyword.KeywordFromLiteral(tok.Literal) {
		case identkeyword.TRUE:
			value = ast.Value{Kind: ast.ValueKindBoolean, BooleanValue: true, Position: tok.TextPosition}
		case identkeyword.FALSE:
			value = ast.Value{Kind: ast.ValueKindBoolean, BooleanValue: false, Position: tok.TextPosition}
		case identkeyword.NULL:
			value = ast.Value{Kind: ast.ValueKindNull, Position: tok.TextPosition}
		default:
			value = ast.Value{Kind: ast.ValueKindEnum, EnumValue: tok.Literal, Position: tok.TextPosition}
		}
	case keyword.LBRACK:
		value = p.parseValueList()
	case keyword.LBRACE:
		value = p.parseObjectValue()
	default:
		p.errUnexpectedToken(p.read())
	}

	return
}

func (p *Parser) parseValueList() (value ast.Value) {
	open := p.mustRead(keyword.LBRACK)
	value = ast.Value{
		Kind:     ast.ValueKindList,
		Position: open.TextPosition,
	}

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACK:
			p.read()
			return
		default:
			value.ListValue = append(value.ListValue, p.parseValue())
		}
	}
	return
}

func (p *Parser) parseObjectValue() (value ast.Value) {
	open := p.mustRead(keyword.LBRACE)
	value = ast.Value{
		Kind:     ast.ValueKindObject,
		Position: open.TextPosition,
	}

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACE:
			p.read()
			return
		case keyword.IDENT:
			name := p.read()
			p.mustRead(keyword.COLON)
			value.ObjectValue = append(value.ObjectValue, ast.ObjectField{
				Name:     name.Literal,
				Value:    p.parseValue(),
				Position: name.TextPosition,
			})
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.RBRACE)
			return
		}
	}
	return
}

func (p *Parser) parseDirectiveList() (directives []ast.Directive) {
	for p.err == nil && p.peek() == keyword.AT {
		at := p.read()
		name := p.mustRead(keyword.IDENT)

		directive := ast.Directive{
			Name:     name.Literal,
			Position: at.TextPosition,
		}

		if p.peek() == keyword.LPAREN {
			directive.Arguments = p.parseArgumentList()
		}

		directives = append(directives, directive)
	}
	return
}

func (p *Parser) parseArgumentList() (arguments []ast.Argument) {
	p.mustRead(keyword.LPAREN)

	seen := map[string]bool{}

	for p.err == nil {
		switch p.peek() {
		case keyword.RPAREN:
			if len(arguments) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT)
				return
			}
			p.read()
			return
		case keyword.IDENT:
			name := p.read()
			if seen[name.Literal] {
				p.err = ErrDuplicateArgumentName{
					Name:         name.Literal,
					TextPosition: name.TextPosition,
				}
				return
			}
			seen[name.Literal] = true
			p.mustRead(keyword.COLON)
			arguments = append(arguments, ast.Argument{
				Name:     name.Literal,
				Value:    p.parseValue(),
				Position: name.TextPosition,
			})
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.RPAREN)
			return
		}
	}
	return
}

func (p *Parser) parseAnonymousOperationDefinition() {
	operationDefinition := ast.OperationDefinition{
		OperationType: ast.OperationTypeQuery,
		Position:      p.peekToken().TextPosition,
	}
	operationDefinition.SelectionSet = p.parseSelectionSet()
	p.putDefinition(&operationDefinition)
}

func (p *Parser) parseOperationDefinition() {
	operationType := p.peekToken()
	operationDefinition := ast.OperationDefinition{
		OperationType: p.parseOperationType(),
		Position:      operationType.TextPosition,
	}

	if p.peek() == keyword.IDENT {
		operationDefinition.Name = p.read().Literal
	}
	if p.peek() == keyword.LPAREN {
		operationDefinition.VariableDefinitions = p.parseVariableDefinitionList()
	}
	if p.peek() == keyword.AT {
		operationDefinition.Directives = p.parseDirectiveList()
	}
	operationDefinition.SelectionSet = p.parseSelectionSet()

	p.putDefinition(&operationDefinition)
}

func (p *Parser) parseVariableDefinitionList() (list []ast.VariableDefinition) {
	p.mustRead(keyword.LPAREN)

	for p.err == nil {
		switch p.peek() {
		case keyword.RPAREN:
			if len(list) == 0 {
				p.errUnexpectedToken(p.read(), keyword.DOLLAR)
				return
			}
			p.read()
			return
		case keyword.DOLLAR:
			list = append(list, p.parseVariableDefinition())
		default:
			p.errUnexpectedToken(p.read(), keyword.DOLLAR, keyword.RPAREN)
			return
		}
	}
	return
}

func (p *Parser) parseVariableDefinition() (definition ast.VariableDefinition) {
	dollar := p.mustRead(keyword.DOLLAR)
	definition.Position = dollar.TextPosition
	definition.VariableName = p.mustRead(keyword.IDENT).Literal
	p.mustRead(keyword.COLON)
	definition.Type = p.parseType()
	if p.peek() == keyword.EQUALS {
		p.read()
		value := p.parseValue()
		definition.DefaultValue = ast.Present(p.coerceDefaultValue(definition.Type, value))
	}
	if p.peek() == keyword.AT {
		definition.Directives = p.parseDirectiveList()
	}
	return
}

func (p *Parser) parseFragmentDefinition() {
	fragmentDefinition := ast.FragmentDefinition{}
	fragmentDefinition.Position = p.mustReadIdentKeyword(identkeyword.FRAGMENT).TextPosition

	// the fragment name must not be "on"
	if p.peekIdentKeyword() == identkeyword.ON {
		p.errUnexpectedToken(p.read())
		return
	}
	fragmentDefinition.Name = p.mustRead(keyword.IDENT).Literal
	p.mustReadIdentKeyword(identkeyword.ON)
	fragmentDefinition.TypeCondition = p.mustRead(keyword.IDENT).Literal
	if p.peek() == keyword.AT {
		fragmentDefinition.Directives = p.parseDirectiveList()
	}
	fragmentDefinition.SelectionSet = p.parseSelectionSet()

	p.putDefinition(&fragmentDefinition)
}

func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	if !p.enterNesting() {
		return nil
	}
	defer p.leaveNesting()

	open := p.mustRead(keyword.LBRACE)
	set := &ast.SelectionSet{Position: open.TextPosition}

	for p.err == nil {
		switch p.peek() {
		case keyword.RBRACE:
			if len(set.Selections) == 0 {
				p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.SPREAD)
				return set
			}
			p.read()
			return set
		case keyword.IDENT:
			set.Selections = append(set.Selections, p.parseField())
		case keyword.SPREAD:
			set.Selections = append(set.Selections, p.parseFragmentSelection())
		default:
			p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.SPREAD, keyword.RBRACE)
			return set
		}
	}
	return set
}

func (p *Parser) parseField() *ast.Field {
	field := &ast.Field{}

	first := p.mustRead(keyword.IDENT)
	field.Position = first.TextPosition
	if p.peek() == keyword.COLON {
		p.read()
		field.Alias = ast.Present(first.Literal)
		field.Name = p.mustRead(keyword.IDENT).Literal
	} else {
		field.Name = first.Literal
	}

	if p.peek() == keyword.LPAREN {
		field.Arguments = p.parseArgumentList()
	}
	if p.peek() == keyword.AT {
		field.Directives = p.parseDirectiveList()
	}
	if p.peek() == keyword.LBRACE {
		field.SelectionSet = p.parseSelectionSet()
	}

	return field
}

func (p *Parser) parseFragmentSelection() ast.Selection {
	spread := p.mustRead(keyword.SPREAD)

	switch p.peek() {
	case keyword.IDENT:
		if p.peekIdentKeyword() == identkeyword.ON {
			p.read()
			inlineFragment := &ast.InlineFragment{Position: spread.TextPosition}
			inlineFragment.TypeCondition = p.mustRead(keyword.IDENT).Literal
			if p.peek() == keyword.AT {
				inlineFragment.Directives = p.parseDirectiveList()
			}
			inlineFragment.SelectionSet = p.parseSelectionSet()
			return inlineFragment
		}
		fragmentSpread := &ast.FragmentSpread{Position: spread.TextPosition}
		fragmentSpread.FragmentName = p.read().Literal
		if p.peek() == keyword.AT {
			fragmentSpread.Directives = p.parseDirectiveList()
		}
		return fragmentSpread
	case keyword.AT, keyword.LBRACE:
		inlineFragment := &ast.InlineFragment{Position: spread.TextPosition}
		if p.peek() == keyword.AT {
			inlineFragment.Directives = p.parseDirectiveList()
		}
		inlineFragment.SelectionSet = p.parseSelectionSet()
		return inlineFragment
	default:
		p.errUnexpectedToken(p.read(), keyword.IDENT, keyword.AT, keyword.LBRACE)
		return &ast.FragmentSpread{Position: spread.TextPosition}
	}
}

func (p *Parser) putDefinition(definition ast.Definition) {
	if p.err != nil {
		return
	}
	p.document.Definitions = append(p.document.Definitions, definition)
}
