package dobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnknown(t *testing.T) {
	unknown := NewUnknown(
		"MYTOOL",
		[]Attribute{
			{Label: "DESCRIPTION", Value: "a vendor tool   "},
			{Label: "Serial-Number", Value: 1234},
			{Label: "STATUS", Value: []string{"OK ", "DEGRADED"}},
		},
	)

	assert.Equal(t, "MYTOOL", unknown.Name)
	assert.Equal(t, TypeUnknown, unknown.Type)
	assert.Equal(t, []string{"description", "serial-number", "status"}, unknown.Labels())

	description, ok := unknown.Get("DESCRIPTION")
	assert.True(t, ok)
	assert.Equal(t, "a vendor tool", description)

	status, ok := unknown.Get("status")
	assert.True(t, ok)
	assert.Equal(t, []string{"OK", "DEGRADED"}, status)

	_, ok = unknown.Get("missing")
	assert.False(t, ok)
}

func TestUnknownString(t *testing.T) {
	unknown := NewUnknown(
		"ORIGIN",
		[]Attribute{
			{Label: "WELL-NAME", Value: "15/9-F-15 "},
		},
	)

	s := unknown.String()
	assert.Contains(t, s, "name: ORIGIN")
	assert.Contains(t, s, "type: unknown")
	assert.Contains(t, s, "well-name: 15/9-F-15\n")
}
