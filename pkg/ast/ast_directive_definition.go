package ast

import "github.com/jensneuse/graphql-frontend/pkg/lexer/position"

// DirectiveDefinition
// example:
// directive @deprecated(reason: String) on FIELD_DEFINITION | ENUM_VALUE
type DirectiveDefinition struct {
	Description         Description
	Name                string
	ArgumentsDefinition []InputValueDefinition
	Repeatable          bool
	DirectiveLocations  []DirectiveLocation
	Position            position.Position
}

func (*DirectiveDefinition) NodeKind() NodeKind { return NodeKindDirectiveDefinition }
func (*DirectiveDefinition) definitionNode()    {}

type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota
	DirectiveLocationQuery
	DirectiveLocationMutation
	DirectiveLocationSubscription
	DirectiveLocationField
	DirectiveLocationFragmentDefinition
	DirectiveLocationFragmentSpread
	DirectiveLocationInlineFragment
	DirectiveLocationVariableDefinition
	DirectiveLocationSchema
	DirectiveLocationScalar
	DirectiveLocationObject
	DirectiveLocationFieldDefinition
	DirectiveLocationArgumentDefinition
	DirectiveLocationInterface
	DirectiveLocationUnion
	DirectiveLocationEnum
	DirectiveLocationEnumValue
	DirectiveLocationInputObject
	DirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	DirectiveLocationQuery:                "QUERY",
	DirectiveLocationMutation:             "MUTATION",
	DirectiveLocationSubscription:         "SUBSCRIPTION",
	DirectiveLocationField:                "FIELD",
	DirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	DirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	DirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	DirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
	DirectiveLocationSchema:               "SCHEMA",
	DirectiveLocationScalar:               "SCALAR",
	DirectiveLocationObject:               "OBJECT",
	DirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	DirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	DirectiveLocationInterface:            "INTERFACE",
	DirectiveLocationUnion:                "UNION",
	DirectiveLocationEnum:                 "ENUM",
	DirectiveLocationEnumValue:            "ENUM_VALUE",
	DirectiveLocationInputObject:          "INPUT_OBJECT",
	DirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	out := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for location, name := range directiveLocationNames {
		out[name] = location
	}
	return out
}()

func (d DirectiveLocation) String() string {
	if name, ok := directiveLocationNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// DirectiveLocationFromName resolves a directive location name from source
// text. The second return is false for names outside the spec defined set.
func DirectiveLocationFromName(name string) (DirectiveLocation, bool) {
	location, ok := directiveLocationsByName[name]
	return location, ok
}
