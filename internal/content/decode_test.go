package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Heading string   `cms:"heading"`
	Count   int      `cms:"count"`
	Ratio   float64  `cms:"ratio"`
	Live    bool     `cms:"live"`
	Tags    []string `cms:"tags"`
	Extra   Props    `cms:"extra"`
	Skipped string
	hidden  string `cms:"hidden"`
}

func TestDecodeIntoPopulatesTaggedFields(t *testing.T) {
	var target decodeTarget
	err := DecodeInto(Props{
		"heading": "Hello",
		"count":   float64(7),
		"ratio":   1.5,
		"live":    true,
		"tags":    []any{"a", "b"},
		"extra":   map[string]any{"k": "v"},
		"hidden":  "nope",
	}, &target)
	require.NoError(t, err)

	assert.Equal(t, "Hello", target.Heading)
	assert.Equal(t, 7, target.Count)
	assert.Equal(t, 1.5, target.Ratio)
	assert.True(t, target.Live)
	assert.Equal(t, []string{"a", "b"}, target.Tags)
	assert.Equal(t, "v", target.Extra.String("k"))
	assert.Empty(t, target.Skipped)
	assert.Empty(t, target.hidden)
}

func TestDecodeIntoIgnoresAbsentAndNullKeys(t *testing.T) {
	target := decodeTarget{Heading: "keep"}
	err := DecodeInto(Props{"count": nil}, &target)
	require.NoError(t, err)
	assert.Equal(t, "keep", target.Heading)
	assert.Zero(t, target.Count)
}

func TestDecodeIntoReportsShapeMismatch(t *testing.T) {
	var target decodeTarget
	err := DecodeInto(Props{"heading": 42}, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heading")
}

func TestDecodeIntoRejectsNonStructTarget(t *testing.T) {
	var s string
	assert.Error(t, DecodeInto(Props{}, &s))
	assert.Error(t, DecodeInto(Props{}, decodeTarget{}))
}
