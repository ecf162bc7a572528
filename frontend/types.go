package frontend

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// TypeTag is the closed set of types a function can declare as its return
// type
type TypeTag int

// Type tags. A function without a return annotation returns UnitType
const (
	UnitType TypeTag = iota
	NumberType
	StringType
	BooleanType
)

func (t TypeTag) String() string {
	switch t {
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case BooleanType:
		return "Boolean"
	default:
		return "Unit"
	}
}

// typeNames maps the spelling used in return annotations to each TypeTag
var typeNames = map[string]TypeTag{
	"Number": NumberType,
	"String": StringType,
	"Bool":   BooleanType,
	"Unit":   UnitType,
}

// LookupType resolves a return type annotation. The lookup is by exact name
func LookupType(name string) (TypeTag, bool) {
	t, ok := typeNames[name]
	return t, ok
}

// TypeNames lists every accepted annotation, sorted
func TypeNames() []string {
	names := maps.Keys(typeNames)
	sort.Strings(names)
	return names
}

func typeNameList() string {
	return strings.Join(TypeNames(), ", ")
}
