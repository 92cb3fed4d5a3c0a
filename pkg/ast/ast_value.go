package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInteger
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

func (v ValueKind) String() string {
	switch v {
	case ValueKindVariable:
		return "Variable"
	case ValueKindInteger:
		return "Integer"
	case ValueKindFloat:
		return "Float"
	case ValueKindString:
		return "String"
	case ValueKindBoolean:
		return "Boolean"
	case ValueKindNull:
		return "Null"
	case ValueKindEnum:
		return "Enum"
	case ValueKindList:
		return "List"
	case ValueKindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a kind tagged literal value. Exactly the content field matching
// Kind is meaningful; the others stay zero. String values hold decoded
// content (escape sequences resolved, block strings dedented).
type Value struct {
	Kind          ValueKind
	VariableValue string
	IntValue      int32
	FloatValue    float64
	StringValue   string
	BooleanValue  bool
	EnumValue     string
	ListValue     []Value
	ObjectValue   []ObjectField
	Position      position.Position
}

// ObjectField is one name/value pair of an object value. Field order is
// source order and preserved by the printer.
type ObjectField struct {
	Name     string
	Value    Value
	Position position.Position
}
