// Package astdiff compares two documents for semantic equality. Equality is
// structural: definition order, field order and value content must match,
// while source names and text positions are diagnostic metadata and never
// participate in the comparison.
package astdiff

import (
	"github.com/jensneuse/graphql-frontend/pkg/ast"
)

// maxNestingDepth bounds diff recursion for values, type references and
// selection sets. Two documents nesting deeper than the limit diverge at the
// path where the limit was hit.
const maxNestingDepth = 4096

// Diff returns Absent when left and right are semantically equal, or the
// dotted path to the first divergence otherwise. The walk is depth first in
// document order, so the returned path is deterministic.
func Diff(left, right *ast.Document) ast.Optional[ast.Path] {
	d := differ{}
	return d.diffDocuments(left, right)
}

type differ struct {
	depth int
}

func (d *differ) diffDocuments(left, right *ast.Document) ast.Optional[ast.Path] {
	var path ast.Path

	if left == nil || right == nil {
		if left == right {
			return ast.Absent[ast.Path]()
		}
		return ast.Present(path)
	}

	path = path.WithFieldName("definitions")
	if len(left.Definitions) != len(right.Definitions) {
		return ast.Present(path)
	}
	for i := range left.Definitions {
		if diff := d.diffDefinitions(path.WithIndex(i), left.Definitions[i], right.Definitions[i]); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffDefinitions(path ast.Path, left, right ast.Definition) ast.Optional[ast.Path] {
	if left == nil || right == nil {
		if left == right {
			return ast.Absent[ast.Path]()
		}
		return ast.Present(path)
	}
	if left.NodeKind() != right.NodeKind() {
		return ast.Present(path)
	}

	switch l := left.(type) {
	case *ast.SchemaDefinition:
		return d.diffSchemaDefinitions(path, l, right.(*ast.SchemaDefinition))
	case *ast.ObjectTypeDefinition:
		return d.diffObjectTypeDefinitions(path, l, right.(*ast.ObjectTypeDefinition))
	case *ast.InterfaceTypeDefinition:
		return d.diffInterfaceTypeDefinitions(path, l, right.(*ast.InterfaceTypeDefinition))
	case *ast.UnionTypeDefinition:
		return d.diffUnionTypeDefinitions(path, l, right.(*ast.UnionTypeDefinition))
	case *ast.EnumTypeDefinition:
		return d.diffEnumTypeDefinitions(path, l, right.(*ast.EnumTypeDefinition))
	case *ast.ScalarTypeDefinition:
		return d.diffScalarTypeDefinitions(path, l, right.(*ast.ScalarTypeDefinition))
	case *ast.InputObjectTypeDefinition:
		return d.diffInputObjectTypeDefinitions(path, l, right.(*ast.InputObjectTypeDefinition))
	case *ast.DirectiveDefinition:
		return d.diffDirectiveDefinitions(path, l, right.(*ast.DirectiveDefinition))
	case *ast.OperationDefinition:
		return d.diffOperationDefinitions(path, l, right.(*ast.OperationDefinition))
	case *ast.FragmentDefinition:
		return d.diffFragmentDefinitions(path, l, right.(*ast.FragmentDefinition))
	default:
		return ast.Present(path)
	}
}

func (d *differ) diffSchemaDefinitions(path ast.Path, left, right *ast.SchemaDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	rootPath := path.WithFieldName("rootOperationTypeDefinitions")
	if len(left.RootOperationTypeDefinitions) != len(right.RootOperationTypeDefinitions) {
		return ast.Present(rootPath)
	}
	for i := range left.RootOperationTypeDefinitions {
		l, r := left.RootOperationTypeDefinitions[i], right.RootOperationTypeDefinitions[i]
		if l.OperationType != r.OperationType {
			return ast.Present(rootPath.WithIndex(i).WithFieldName("operationType"))
		}
		if l.NamedType != r.NamedType {
			return ast.Present(rootPath.WithIndex(i).WithFieldName("namedType"))
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffObjectTypeDefinitions(path ast.Path, left, right *ast.ObjectTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := diffStrings(path.WithFieldName("implementsInterfaces"), left.ImplementsInterfaces, right.ImplementsInterfaces); diff.IsPresent() {
		return diff
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return d.diffFieldDefinitions(path.WithFieldName("fieldsDefinition"), left.FieldsDefinition, right.FieldsDefinition)
}

func (d *differ) diffInterfaceTypeDefinitions(path ast.Path, left, right *ast.InterfaceTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := diffStrings(path.WithFieldName("implementsInterfaces"), left.ImplementsInterfaces, right.ImplementsInterfaces); diff.IsPresent() {
		return diff
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return d.diffFieldDefinitions(path.WithFieldName("fieldsDefinition"), left.FieldsDefinition, right.FieldsDefinition)
}

func (d *differ) diffUnionTypeDefinitions(path ast.Path, left, right *ast.UnionTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return diffStrings(path.WithFieldName("unionMemberTypes"), left.UnionMemberTypes, right.UnionMemberTypes)
}

func (d *differ) diffEnumTypeDefinitions(path ast.Path, left, right *ast.EnumTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	valuesPath := path.WithFieldName("enumValuesDefinition")
	if len(left.EnumValuesDefinition) != len(right.EnumValuesDefinition) {
		return ast.Present(valuesPath)
	}
	for i := range left.EnumValuesDefinition {
		l, r := left.EnumValuesDefinition[i], right.EnumValuesDefinition[i]
		itemPath := valuesPath.WithIndex(i)
		if diff := diffDescriptions(itemPath.WithFieldName("description"), l.Description, r.Description); diff.IsPresent() {
			return diff
		}
		if l.EnumValue != r.EnumValue {
			return ast.Present(itemPath.WithFieldName("enumValue"))
		}
		if diff := d.diffDirectives(itemPath.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffScalarTypeDefinitions(path ast.Path, left, right *ast.ScalarTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	return d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives)
}

func (d *differ) diffInputObjectTypeDefinitions(path ast.Path, left, right *ast.InputObjectTypeDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return d.diffInputValueDefinitions(path.WithFieldName("inputFieldsDefinition"), left.InputFieldsDefinition, right.InputFieldsDefinition)
}

func (d *differ) diffDirectiveDefinitions(path ast.Path, left, right *ast.DirectiveDefinition) ast.Optional[ast.Path] {
	if diff := diffDescriptions(path.WithFieldName("description"), left.Description, right.Description); diff.IsPresent() {
		return diff
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if diff := d.diffInputValueDefinitions(path.WithFieldName("argumentsDefinition"), left.ArgumentsDefinition, right.ArgumentsDefinition); diff.IsPresent() {
		return diff
	}
	if left.Repeatable != right.Repeatable {
		return ast.Present(path.WithFieldName("repeatable"))
	}
	locationsPath := path.WithFieldName("directiveLocations")
	if len(left.DirectiveLocations) != len(right.DirectiveLocations) {
		return ast.Present(locationsPath)
	}
	for i := range left.DirectiveLocations {
		if left.DirectiveLocations[i] != right.DirectiveLocations[i] {
			return ast.Present(locationsPath.WithIndex(i))
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffOperationDefinitions(path ast.Path, left, right *ast.OperationDefinition) ast.Optional[ast.Path] {
	if left.OperationType != right.OperationType {
		return ast.Present(path.WithFieldName("operationType"))
	}
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	variablesPath := path.WithFieldName("variableDefinitions")
	if len(left.VariableDefinitions) != len(right.VariableDefinitions) {
		return ast.Present(variablesPath)
	}
	for i := range left.VariableDefinitions {
		l, r := left.VariableDefinitions[i], right.VariableDefinitions[i]
		itemPath := variablesPath.WithIndex(i)
		if l.VariableName != r.VariableName {
			return ast.Present(itemPath.WithFieldName("variableName"))
		}
		if diff := d.diffTypes(itemPath.WithFieldName("type"), l.Type, r.Type); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDefaultValues(itemPath.WithFieldName("defaultValue"), l.DefaultValue, r.DefaultValue); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDirectives(itemPath.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return d.diffSelectionSets(path.WithFieldName("selectionSet"), left.SelectionSet, right.SelectionSet)
}

func (d *differ) diffFragmentDefinitions(path ast.Path, left, right *ast.FragmentDefinition) ast.Optional[ast.Path] {
	if left.Name != right.Name {
		return ast.Present(path.WithFieldName("name"))
	}
	if left.TypeCondition != right.TypeCondition {
		return ast.Present(path.WithFieldName("typeCondition"))
	}
	if diff := d.diffDirectives(path.WithFieldName("directives"), left.Directives, right.Directives); diff.IsPresent() {
		return diff
	}
	return d.diffSelectionSets(path.WithFieldName("selectionSet"), left.SelectionSet, right.SelectionSet)
}

func (d *differ) diffFieldDefinitions(path ast.Path, left, right []ast.FieldDefinition) ast.Optional[ast.Path] {
	if len(left) != len(right) {
		return ast.Present(path)
	}
	for i := range left {
		l, r := left[i], right[i]
		itemPath := path.WithIndex(i)
		if diff := diffDescriptions(itemPath.WithFieldName("description"), l.Description, r.Description); diff.IsPresent() {
			return diff
		}
		if l.Name != r.Name {
			return ast.Present(itemPath.WithFieldName("name"))
		}
		if diff := d.diffInputValueDefinitions(itemPath.WithFieldName("argumentsDefinition"), l.ArgumentsDefinition, r.ArgumentsDefinition); diff.IsPresent() {
			return diff
		}
		if diff := d.diffTypes(itemPath.WithFieldName("type"), l.Type, r.Type); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDirectives(itemPath.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffInputValueDefinitions(path ast.Path, left, right []ast.InputValueDefinition) ast.Optional[ast.Path] {
	if len(left) != len(right) {
		return ast.Present(path)
	}
	for i := range left {
		l, r := left[i], right[i]
		itemPath := path.WithIndex(i)
		if diff := diffDescriptions(itemPath.WithFieldName("description"), l.Description, r.Description); diff.IsPresent() {
			return diff
		}
		if l.Name != r.Name {
			return ast.Present(itemPath.WithFieldName("name"))
		}
		if diff := d.diffTypes(itemPath.WithFieldName("type"), l.Type, r.Type); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDefaultValues(itemPath.WithFieldName("defaultValue"), l.DefaultValue, r.DefaultValue); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDirectives(itemPath.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffSelectionSets(path ast.Path, left, right *ast.SelectionSet) ast.Optional[ast.Path] {
	if left == nil || right == nil {
		if left == right {
			return ast.Absent[ast.Path]()
		}
		return ast.Present(path)
	}

	d.depth++
	defer func() { d.depth-- }()
	if d.depth > maxNestingDepth {
		return ast.Present(path)
	}

	if len(left.Selections) != len(right.Selections) {
		return ast.Present(path)
	}
	for i := range left.Selections {
		if diff := d.diffSelections(path.WithIndex(i), left.Selections[i], right.Selections[i]); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffSelections(path ast.Path, left, right ast.Selection) ast.Optional[ast.Path] {
	switch l := left.(type) {
	case *ast.Field:
		r, ok := right.(*ast.Field)
		if !ok {
			return ast.Present(path)
		}
		if diff := diffOptionalStrings(path.WithFieldName("alias"), l.Alias, r.Alias); diff.IsPresent() {
			return diff
		}
		if l.Name != r.Name {
			return ast.Present(path.WithFieldName("name"))
		}
		if diff := d.diffArguments(path.WithFieldName("arguments"), l.Arguments, r.Arguments); diff.IsPresent() {
			return diff
		}
		if diff := d.diffDirectives(path.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
		return d.diffSelectionSets(path.WithFieldName("selectionSet"), l.SelectionSet, r.SelectionSet)
	case *ast.FragmentSpread:
		r, ok := right.(*ast.FragmentSpread)
		if !ok {
			return ast.Present(path)
		}
		if l.FragmentName != r.FragmentName {
			return ast.Present(path.WithFieldName("fragmentName"))
		}
		return d.diffDirectives(path.WithFieldName("directives"), l.Directives, r.Directives)
	case *ast.InlineFragment:
		r, ok := right.(*ast.InlineFragment)
		if !ok {
			return ast.Present(path)
		}
		if l.TypeCondition != r.TypeCondition {
			return ast.Present(path.WithFieldName("typeCondition"))
		}
		if diff := d.diffDirectives(path.WithFieldName("directives"), l.Directives, r.Directives); diff.IsPresent() {
			return diff
		}
		return d.diffSelectionSets(path.WithFieldName("selectionSet"), l.SelectionSet, r.SelectionSet)
	default:
		return ast.Present(path)
	}
}

func (d *differ) diffDirectives(path ast.Path, left, right []ast.Directive) ast.Optional[ast.Path] {
	if len(left) != len(right) {
		return ast.Present(path)
	}
	for i := range left {
		itemPath := path.WithIndex(i)
		if left[i].Name != right[i].Name {
			return ast.Present(itemPath.WithFieldName("name"))
		}
		if diff := d.diffArguments(itemPath.WithFieldName("arguments"), left[i].Arguments, right[i].Arguments); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffArguments(path ast.Path, left, right []ast.Argument) ast.Optional[ast.Path] {
	if len(left) != len(right) {
		return ast.Present(path)
	}
	for i := range left {
		itemPath := path.WithIndex(i)
		if left[i].Name != right[i].Name {
			return ast.Present(itemPath.WithFieldName("name"))
		}
		if diff := d.diffValues(itemPath.WithFieldName("value"), left[i].Value, right[i].Value); diff.IsPresent() {
			return diff
		}
	}
	return ast.Absent[ast.Path]()
}

func (d *differ) diffDefaultValues(path ast.Path, left, right ast.Optional[ast.Value]) ast.Optional[ast.Path] {
	leftValue, leftPresent := left.Get()
	rightValue, rightPresent := right.Get()
	if leftPresent != rightPresent {
		return ast.Present(path)
	}
	if !leftPresent {
		return ast.Absent[ast.Path]()
	}
	return d.diffValues(path, leftValue, rightValue)
}

func (d *differ) diffValues(path ast.Path, left, right ast.Value) ast.Optional[ast.Path] {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > maxNestingDepth {
		return ast.Present(path)
	}

	if left.Kind != right.Kind {
		return ast.Present(path)
	}

	switch left.Kind {
	case ast.ValueKindVariable:
		if left.VariableValue != right.VariableValue {
			return ast.Present(path)
		}
	case ast.ValueKindInteger:
		if left.IntValue != right.IntValue {
			return ast.Present(path)
		}
	case ast.ValueKindFloat:
		if left.FloatValue != right.FloatValue {
			return ast.Present(path)
		}
	case ast.ValueKindString:
		if left.StringValue != right.StringValue {
			return ast.Present(path)
		}
	case ast.ValueKindBoolean:
		if left.BooleanValue != right.BooleanValue {
			return ast.Present(path)
		}
	case ast.ValueKindNull:
	case ast.ValueKindEnum:
		if left.EnumValue != right.EnumValue {
			return ast.Present(path)
		}
	case ast.ValueKindList:
		if len(left.ListValue) != len(right.ListValue) {
			return ast.Present(path)
		}
		for i := range left.ListValue {
			if diff := d.diffValues(path.WithIndex(i), left.ListValue[i], right.ListValue[i]); diff.IsPresent() {
				return diff
			}
		}
	case ast.ValueKindObject:
		if len(left.ObjectValue) != len(right.ObjectValue) {
			return ast.Present(path)
		}
		for i := range left.ObjectValue {
			itemPath := path.WithIndex(i)
			if left.ObjectValue[i].Name != right.ObjectValue[i].Name {
				return ast.Present(itemPath.WithFieldName("name"))
			}
			if diff := d.diffValues(itemPath.WithFieldName("value"), left.ObjectValue[i].Value, right.ObjectValue[i].Value); diff.IsPresent() {
				return diff
			}
		}
	default:
		return ast.Present(path)
	}

	return ast.Absent[ast.Path]()
}

func (d *differ) diffTypes(path ast.Path, left, right ast.Type) ast.Optional[ast.Path] {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > maxNestingDepth {
		return ast.Present(path)
	}

	if left.TypeKind != right.TypeKind {
		return ast.Present(path)
	}
	switch left.TypeKind {
	case ast.TypeKindNamed:
		if left.Name != right.Name {
			return ast.Present(path)
		}
	case ast.TypeKindList, ast.TypeKindNonNull:
		if left.OfType == nil || right.OfType == nil {
			if left.OfType == right.OfType {
				return ast.Absent[ast.Path]()
			}
			return ast.Present(path)
		}
		return d.diffTypes(path.WithFieldName("ofType"), *left.OfType, *right.OfType)
	default:
		return ast.Present(path)
	}
	return ast.Absent[ast.Path]()
}

func diffDescriptions(path ast.Path, left, right ast.Description) ast.Optional[ast.Path] {
	if left.IsDefined != right.IsDefined {
		return ast.Present(path)
	}
	if left.Content != right.Content {
		return ast.Present(path)
	}
	return ast.Absent[ast.Path]()
}

func diffStrings(path ast.Path, left, right []string) ast.Optional[ast.Path] {
	if len(left) != len(right) {
		return ast.Present(path)
	}
	for i := range left {
		if left[i] != right[i] {
			return ast.Present(path.WithIndex(i))
		}
	}
	return ast.Absent[ast.Path]()
}

func diffOptionalStrings(path ast.Path, left, right ast.Optional[string]) ast.Optional[ast.Path] {
	leftValue, leftPresent := left.Get()
	rightValue, rightPresent := right.Get()
	if leftPresent != rightPresent || leftValue != rightValue {
		return ast.Present(path)
	}
	return ast.Absent[ast.Path]()
}
