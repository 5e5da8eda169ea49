// Package dobject holds the object kinds the fixture tooling hands back for
// decoded records. Unknown is the fall-back for record types nothing else
// recognizes, e.g. vendor specific ones.
package dobject

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
)

type (
	Attribute struct {
		Label string
		Value any
	}
	// Unknown exposes a record's attributes as a flat mapping of lowercased
	// labels to values, keeping the attribute order of the record.
	Unknown struct {
		Name       string
		Type       string
		attributes *orderedmap.OrderedMap
	}
)

const TypeUnknown = "unknown"

func NewUnknown(name string, attributes []Attribute) Unknown {
	lhm := orderedmap.New()
	for _, attribute := range attributes {
		lhm.Set(strings.ToLower(attribute.Label), stripSpaces(attribute.Value))
	}
	return Unknown{
		Name:       name,
		Type:       TypeUnknown,
		attributes: lhm,
	}
}

func (r Unknown) Get(label string) (any, bool) {
	return r.attributes.Get(strings.ToLower(label))
}

func (r Unknown) Labels() []string {
	return r.attributes.Keys()
}

func (r Unknown) String() string {
	s := "dlis-forge.unknown:\n"
	s += fmt.Sprintf("\tname: %v\n", r.Name)
	s += fmt.Sprintf("\ttype: %v\n", r.Type)
	for _, label := range r.attributes.Keys() {
		value, _ := r.attributes.Get(label)
		s += fmt.Sprintf("\t%v: %v\n", label, value)
	}
	return s
}

// stripSpaces drops the trailing blanks the format's fixed-width string
// values carry.
func stripSpaces(value any) any {
	switch value := value.(type) {
	case string:
		return strings.TrimRight(value, " ")
	case []string:
		return lo.Map(
			value,
			func(s string, _ int) string {
				return strings.TrimRight(s, " ")
			},
		)
	}
	return value
}
