package astparser

import (
	"github.com/jensneuse/graphql-frontend/pkg/ast"
)

// coerceDefaultValue validates a default value literal against its declared
// type reference and rewrites the literal into the declared value space where
// the GraphQL input coercion rules allow it: an int literal declared Float
// becomes a float value, a single value declared for a list type becomes a
// one element list. The check is deliberately loose for type names this
// module cannot resolve (custom scalars, enums, input objects) - resolving
// those requires a schema and is a validation concern, not a parsing concern.
func (p *Parser) coerceDefaultValue(declared ast.Type, value ast.Value) ast.Value {
	if p.err != nil {
		return value
	}

	// variables inside default values are passed through untouched; whether
	// they are legal at this position is a validation concern
	if value.Kind == ast.ValueKindVariable {
		return value
	}

	switch declared.TypeKind {
	case ast.TypeKindNonNull:
		if value.Kind == ast.ValueKindNull {
			p.errCoercionFailed(declared, value)
			return value
		}
		return p.coerceDefaultValue(*declared.OfType, value)
	case ast.TypeKindList:
		return p.coerceListValue(declared, value)
	case ast.TypeKindNamed:
		return p.coerceNamedValue(declared, value)
	default:
		p.errCoercionFailed(declared, value)
		return value
	}
}

func (p *Parser) coerceListValue(declared ast.Type, value ast.Value) ast.Value {
	if value.Kind == ast.ValueKindNull {
		return value
	}

	if value.Kind != ast.ValueKindList {
		// a single value supplied for a list type coerces to a list of one
		item := p.coerceDefaultValue(*declared.OfType, value)
		return ast.Value{
			Kind:      ast.ValueKindList,
			ListValue: []ast.Value{item},
			Position:  value.Position,
		}
	}

	items := make([]ast.Value, len(value.ListValue))
	for i := range value.ListValue {
		items[i] = p.coerceDefaultValue(*declared.OfType, value.ListValue[i])
	}
	value.ListValue = items
	return value
}

func (p *Parser) coerceNamedValue(declared ast.Type, value ast.Value) ast.Value {
	if value.Kind == ast.ValueKindNull {
		return value
	}

	switch declared.Name {
	case "Int":
		if value.Kind != ast.ValueKindInteger {
			p.errCoercionFailed(declared, value)
		}
	case "Float":
		switch value.Kind {
		case ast.ValueKindFloat:
		case ast.ValueKindInteger:
			return ast.Value{
				Kind:       ast.ValueKindFloat,
				FloatValue: float64(value.IntValue),
				Position:   value.Position,
			}
		default:
			p.errCoercionFailed(declared, value)
		}
	case "String":
		if value.Kind != ast.ValueKindString {
			p.errCoercionFailed(declared, value)
		}
	case "Boolean":
		if value.Kind != ast.ValueKindBoolean {
			p.errCoercionFailed(declared, value)
		}
	case "ID":
		if value.Kind != ast.ValueKindString && value.Kind != ast.ValueKindInteger {
			p.errCoercionFailed(declared, value)
		}
	}

	return value
}

func (p *Parser) errCoercionFailed(declared ast.Type, value ast.Value) {
	if p.err != nil {
		return
	}
	p.err = ErrCoercionFailed{
		TypeName:     typeName(declared),
		ValueKind:    value.Kind,
		TextPosition: value.Position,
	}
}

func typeName(t ast.Type) string {
	switch t.TypeKind {
	case ast.TypeKindNamed:
		return t.Name
	case ast.TypeKindList:
		return "[" + typeName(*t.OfType) + "]"
	case ast.TypeKindNonNull:
		return typeName(*t.OfType) + "!"
	default:
		return "Unknown"
	}
}
