// Package astprinter turns a document back into GraphQL source text. The
// output is deterministic: one canonical rendering per document, so two
// semantically equal documents print byte identical text.
package astprinter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/jensneuse/graphql-frontend/internal/pkg/quotes"
	"github.com/jensneuse/graphql-frontend/internal/pkg/unsafebytes"
	"github.com/jensneuse/graphql-frontend/pkg/ast"
	"github.com/jensneuse/graphql-frontend/pkg/escape"
	"github.com/jensneuse/graphql-frontend/pkg/lexer/literal"
)

// maxNestingDepth bounds printer recursion for values, type references and
// selection sets.
const maxNestingDepth = 4096

// Print writes the canonical text form of document to out.
func Print(document *ast.Document, out io.Writer) error {
	p := printer{out: out}
	p.printDocument(document)
	return p.err
}

// PrintBytes prints document into a new byte slice.
func PrintBytes(document *ast.Document) ([]byte, error) {
	buf := bytes.Buffer{}
	err := Print(document, &buf)
	return buf.Bytes(), err
}

// PrintString prints document into a new string.
func PrintString(document *ast.Document) (string, error) {
	out, err := PrintBytes(document)
	return string(out), err
}

type printer struct {
	out    io.Writer
	err    error
	indent int
	depth  int
}

func (p *printer) write(data []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.out.Write(data)
}

func (p *printer) writeString(str string) {
	p.write(unsafebytes.StringToBytes(str))
}

func (p *printer) writeLinebreak() {
	p.write(literal.LINETERMINATOR)
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.write(literal.INDENT)
	}
}

func (p *printer) enterNesting() bool {
	p.depth++
	if p.depth > maxNestingDepth {
		if p.err == nil {
			p.err = ErrNestingLimitExceeded{limit: maxNestingDepth}
		}
		return false
	}
	return true
}

func (p *printer) leaveNesting() {
	p.depth--
}

func (p *printer) printDocument(document *ast.Document) {
	for i, definition := range document.Definitions {
		if i != 0 {
			p.writeLinebreak()
			p.writeLinebreak()
		}
		p.printDefinition(definition)
	}
	if len(document.Definitions) != 0 {
		p.writeLinebreak()
	}
}

func (p *printer) printDefinition(definition ast.Definition) {
	switch def := definition.(type) {
	case *ast.SchemaDefinition:
		p.printSchemaDefinition(def)
	case *ast.ObjectTypeDefinition:
		p.printObjectTypeDefinition(def)
	case *ast.InterfaceTypeDefinition:
		p.printInterfaceTypeDefinition(def)
	case *ast.UnionTypeDefinition:
		p.printUnionTypeDefinition(def)
	case *ast.EnumTypeDefinition:
		p.printEnumTypeDefinition(def)
	case *ast.ScalarTypeDefinition:
		p.printScalarTypeDefinition(def)
	case *ast.InputObjectTypeDefinition:
		p.printInputObjectTypeDefinition(def)
	case *ast.DirectiveDefinition:
		p.printDirectiveDefinition(def)
	case *ast.OperationDefinition:
		p.printOperationDefinition(def)
	case *ast.FragmentDefinition:
		p.printFragmentDefinition(def)
	}
}

func (p *printer) printSchemaDefinition(definition *ast.SchemaDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.SCHEMA)
	p.printDirectives(definition.Directives)
	p.write(literal.SPACE)
	p.write(literal.LBRACE)
	p.indent++
	for _, rootOperationType := range definition.RootOperationTypeDefinitions {
		p.writeLinebreak()
		p.writeIndent()
		p.writeString(rootOperationType.OperationType.String())
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.writeString(rootOperationType.NamedType)
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RBRACE)
}

func (p *printer) printObjectTypeDefinition(definition *ast.ObjectTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.TYPE)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printImplementsInterfaces(definition.ImplementsInterfaces)
	p.printDirectives(definition.Directives)
	p.printFieldDefinitions(definition.FieldsDefinition)
}

func (p *printer) printInterfaceTypeDefinition(definition *ast.InterfaceTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.INTERFACE)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printImplementsInterfaces(definition.ImplementsInterfaces)
	p.printDirectives(definition.Directives)
	p.printFieldDefinitions(definition.FieldsDefinition)
}

func (p *printer) printImplementsInterfaces(interfaces []string) {
	for i, name := range interfaces {
		if i == 0 {
			p.write(literal.SPACE)
			p.write(literal.IMPLEMENTS)
			p.write(literal.SPACE)
		} else {
			p.write(literal.SPACE)
			p.write(literal.AND)
			p.write(literal.SPACE)
		}
		p.writeString(name)
	}
}

func (p *printer) printUnionTypeDefinition(definition *ast.UnionTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.UNION)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printDirectives(definition.Directives)
	for i, member := range definition.UnionMemberTypes {
		if i == 0 {
			p.write(literal.SPACE)
			p.write(literal.EQUALS)
			p.write(literal.SPACE)
		} else {
			p.write(literal.SPACE)
			p.write(literal.PIPE)
			p.write(literal.SPACE)
		}
		p.writeString(member)
	}
}

func (p *printer) printEnumTypeDefinition(definition *ast.EnumTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.ENUM)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printDirectives(definition.Directives)
	if len(definition.EnumValuesDefinition) == 0 {
		return
	}
	p.write(literal.SPACE)
	p.write(literal.LBRACE)
	p.indent++
	for _, valueDefinition := range definition.EnumValuesDefinition {
		p.writeLinebreak()
		p.writeIndent()
		p.printDescription(valueDefinition.Description)
		p.writeString(valueDefinition.EnumValue)
		p.printDirectives(valueDefinition.Directives)
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RBRACE)
}

func (p *printer) printScalarTypeDefinition(definition *ast.ScalarTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.SCALAR)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printDirectives(definition.Directives)
}

func (p *printer) printInputObjectTypeDefinition(definition *ast.InputObjectTypeDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.INPUT)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.printDirectives(definition.Directives)
	if len(definition.InputFieldsDefinition) == 0 {
		return
	}
	p.write(literal.SPACE)
	p.write(literal.LBRACE)
	p.indent++
	for i := range definition.InputFieldsDefinition {
		p.writeLinebreak()
		p.writeIndent()
		p.printDescription(definition.InputFieldsDefinition[i].Description)
		p.printInputValueDefinition(definition.InputFieldsDefinition[i])
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RBRACE)
}

func (p *printer) printDirectiveDefinition(definition *ast.DirectiveDefinition) {
	p.printDescription(definition.Description)
	p.write(literal.DIRECTIVE)
	p.write(literal.SPACE)
	p.write(literal.AT)
	p.writeString(definition.Name)
	p.printArgumentsDefinition(definition.ArgumentsDefinition)
	if definition.Repeatable {
		p.write(literal.SPACE)
		p.write(literal.REPEATABLE)
	}
	p.write(literal.SPACE)
	p.write(literal.ON)
	for i, location := range definition.DirectiveLocations {
		if i != 0 {
			p.write(literal.SPACE)
			p.write(literal.PIPE)
		}
		p.write(literal.SPACE)
		p.writeString(location.String())
	}
}

func (p *printer) printFieldDefinitions(fields []ast.FieldDefinition) {
	if len(fields) == 0 {
		return
	}
	p.write(literal.SPACE)
	p.write(literal.LBRACE)
	p.indent++
	for i := range fields {
		p.writeLinebreak()
		p.writeIndent()
		p.printDescription(fields[i].Description)
		p.writeString(fields[i].Name)
		p.printArgumentsDefinition(fields[i].ArgumentsDefinition)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.printType(fields[i].Type)
		p.printDirectives(fields[i].Directives)
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RBRACE)
}

// printArgumentsDefinition prints an argument list on one line, or one
// argument per line as soon as any argument carries a description. A
// description cannot be rendered inside a single line argument list.
func (p *printer) printArgumentsDefinition(arguments []ast.InputValueDefinition) {
	if len(arguments) == 0 {
		return
	}

	multiline := false
	for i := range arguments {
		if arguments[i].Description.IsDefined {
			multiline = true
			break
		}
	}

	p.write(literal.LPAREN)

	if !multiline {
		for i := range arguments {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.printInputValueDefinition(arguments[i])
		}
		p.write(literal.RPAREN)
		return
	}

	p.indent++
	for i := range arguments {
		p.writeLinebreak()
		p.writeIndent()
		p.printDescription(arguments[i].Description)
		p.printInputValueDefinition(arguments[i])
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RPAREN)
}

func (p *printer) printInputValueDefinition(definition ast.InputValueDefinition) {
	p.writeString(definition.Name)
	p.write(literal.COLON)
	p.write(literal.SPACE)
	p.printType(definition.Type)
	if defaultValue, ok := definition.DefaultValue.Get(); ok {
		p.write(literal.SPACE)
		p.write(literal.EQUALS)
		p.write(literal.SPACE)
		p.printValue(defaultValue)
	}
	p.printDirectives(definition.Directives)
}

func (p *printer) printOperationDefinition(definition *ast.OperationDefinition) {
	if definition.OperationType == ast.OperationTypeQuery &&
		definition.Name == "" &&
		len(definition.VariableDefinitions) == 0 &&
		len(definition.Directives) == 0 {
		p.printSelectionSet(definition.SelectionSet)
		return
	}

	p.writeString(definition.OperationType.String())
	if definition.Name != "" {
		p.write(literal.SPACE)
		p.writeString(definition.Name)
	}
	if len(definition.VariableDefinitions) != 0 {
		if definition.Name == "" {
			p.write(literal.SPACE)
		}
		p.write(literal.LPAREN)
		for i := range definition.VariableDefinitions {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.printVariableDefinition(definition.VariableDefinitions[i])
		}
		p.write(literal.RPAREN)
	}
	p.printDirectives(definition.Directives)
	p.write(literal.SPACE)
	p.printSelectionSet(definition.SelectionSet)
}

func (p *printer) printVariableDefinition(definition ast.VariableDefinition) {
	p.write(literal.DOLLAR)
	p.writeString(definition.VariableName)
	p.write(literal.COLON)
	p.write(literal.SPACE)
	p.printType(definition.Type)
	if defaultValue, ok := definition.DefaultValue.Get(); ok {
		p.write(literal.SPACE)
		p.write(literal.EQUALS)
		p.write(literal.SPACE)
		p.printValue(defaultValue)
	}
	p.printDirectives(definition.Directives)
}

func (p *printer) printFragmentDefinition(definition *ast.FragmentDefinition) {
	p.write(literal.FRAGMENT)
	p.write(literal.SPACE)
	p.writeString(definition.Name)
	p.write(literal.SPACE)
	p.write(literal.ON)
	p.write(literal.SPACE)
	p.writeString(definition.TypeCondition)
	p.printDirectives(definition.Directives)
	p.write(literal.SPACE)
	p.printSelectionSet(definition.SelectionSet)
}

func (p *printer) printSelectionSet(set *ast.SelectionSet) {
	if set == nil {
		return
	}
	if !p.enterNesting() {
		return
	}
	defer p.leaveNesting()

	p.write(literal.LBRACE)
	p.indent++
	for _, selection := range set.Selections {
		p.writeLinebreak()
		p.writeIndent()
		p.printSelection(selection)
	}
	p.indent--
	p.writeLinebreak()
	p.writeIndent()
	p.write(literal.RBRACE)
}

func (p *printer) printSelection(selection ast.Selection) {
	switch sel := selection.(type) {
	case *ast.Field:
		if alias, ok := sel.Alias.Get(); ok {
			p.writeString(alias)
			p.write(literal.COLON)
			p.write(literal.SPACE)
		}
		p.writeString(sel.Name)
		p.printArguments(sel.Arguments)
		p.printDirectives(sel.Directives)
		if sel.SelectionSet != nil {
			p.write(literal.SPACE)
			p.printSelectionSet(sel.SelectionSet)
		}
	case *ast.FragmentSpread:
		p.write(literal.SPREAD)
		p.writeString(sel.FragmentName)
		p.printDirectives(sel.Directives)
	case *ast.InlineFragment:
		p.write(literal.SPREAD)
		if sel.TypeCondition != "" {
			p.write(literal.SPACE)
			p.write(literal.ON)
			p.write(literal.SPACE)
			p.writeString(sel.TypeCondition)
		}
		p.printDirectives(sel.Directives)
		p.write(literal.SPACE)
		p.printSelectionSet(sel.SelectionSet)
	}
}

func (p *printer) printDirectives(directives []ast.Directive) {
	for i := range directives {
		p.write(literal.SPACE)
		p.write(literal.AT)
		p.writeString(directives[i].Name)
		p.printArguments(directives[i].Arguments)
	}
}

func (p *printer) printArguments(arguments []ast.Argument) {
	if len(arguments) == 0 {
		return
	}
	p.write(literal.LPAREN)
	for i := range arguments {
		if i != 0 {
			p.write(literal.COMMA)
			p.write(literal.SPACE)
		}
		p.writeString(arguments[i].Name)
		p.write(literal.COLON)
		p.write(literal.SPACE)
		p.printValue(arguments[i].Value)
	}
	p.write(literal.RPAREN)
}

func (p *printer) printType(t ast.Type) {
	if !p.enterNesting() {
		return
	}
	defer p.leaveNesting()

	switch t.TypeKind {
	case ast.TypeKindNamed:
		p.writeString(t.Name)
	case ast.TypeKindList:
		if t.OfType == nil {
			p.err = ErrInvalidTypeReference{TypeKind: t.TypeKind}
			return
		}
		p.write(literal.LBRACK)
		p.printType(*t.OfType)
		p.write(literal.RBRACK)
	case ast.TypeKindNonNull:
		if t.OfType == nil {
			p.err = ErrInvalidTypeReference{TypeKind: t.TypeKind}
			return
		}
		p.printType(*t.OfType)
		p.write(literal.BANG)
	default:
		if p.err == nil {
			p.err = ErrInvalidTypeReference{TypeKind: t.TypeKind}
		}
	}
}

func (p *printer) printValue(value ast.Value) {
	if !p.enterNesting() {
		return
	}
	defer p.leaveNesting()

	switch value.Kind {
	case ast.ValueKindVariable:
		p.write(literal.DOLLAR)
		p.writeString(value.VariableValue)
	case ast.ValueKindInteger:
		p.writeString(strconv.FormatInt(int64(value.IntValue), 10))
	case ast.ValueKindFloat:
		p.printFloatValue(value.FloatValue)
	case ast.ValueKindString:
		p.writeString(quotes.WrapString(escape.String(value.StringValue)))
	case ast.ValueKindBoolean:
		if value.BooleanValue {
			p.write(literal.TRUE)
		} else {
			p.write(literal.FALSE)
		}
	case ast.ValueKindNull:
		p.write(literal.NULL)
	case ast.ValueKindEnum:
		p.writeString(value.EnumValue)
	case ast.ValueKindList:
		p.write(literal.LBRACK)
		for i := range value.ListValue {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.printValue(value.ListValue[i])
		}
		p.write(literal.RBRACK)
	case ast.ValueKindObject:
		p.write(literal.LBRACE)
		for i := range value.ObjectValue {
			if i != 0 {
				p.write(literal.COMMA)
				p.write(literal.SPACE)
			}
			p.writeString(value.ObjectValue[i].Name)
			p.write(literal.COLON)
			p.write(literal.SPACE)
			p.printValue(value.ObjectValue[i].Value)
		}
		p.write(literal.RBRACE)
	default:
		if p.err == nil {
			p.err = ErrUnknownValueKind{ValueKind: value.Kind}
		}
	}
}

// printFloatValue renders float values without an exponent and always with a
// decimal point, so a coerced int literal prints in float form (0 -> 0.0).
func (p *printer) printFloatValue(value float64) {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsRune(formatted, '.') {
		formatted += ".0"
	}
	p.writeString(formatted)
}

// printDescription renders the description on its own line(s) directly above
// the described definition. Multi line content prints as a block string when
// a reparse recovers it exactly; everything else, including content with
// leading or trailing blank lines that the block string dedent would drop,
// prints in the escaped single line form, which is lossless for any content.
func (p *printer) printDescription(description ast.Description) {
	if !description.IsDefined {
		return
	}
	if blockStringRoundTrips(description.Content) {
		p.printBlockString(description.Content)
	} else {
		p.writeString(quotes.WrapString(escape.String(description.Content)))
	}
	p.writeLinebreak()
	p.writeIndent()
}
