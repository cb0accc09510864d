package argbind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMapDefaults(t *testing.T) {
	m := DefaultTypeMap()
	cases := map[string]string{
		"bool":     "!",
		"int":      "=i",
		"float":    "=f",
		"string":   "=s",
		"duration": "=d",
		"list":     "=s@",
		"map":      "=s%",
	}
	for name, suffix := range cases {
		assert.True(t, m.Has(name), name)
		got, err := m.Get(name)
		require.NoError(t, err)
		assert.Equal(t, suffix, got)
	}
}

func TestTypeMapAddOverwrites(t *testing.T) {
	m := NewTypeMap()
	assert.False(t, m.Has("count"))

	m.Add("count", "=i")
	got, err := m.Get("count")
	require.NoError(t, err)
	assert.Equal(t, "=i", got)

	m.Add("count", "=f")
	got, err = m.Get("count")
	require.NoError(t, err)
	assert.Equal(t, "=f", got)
}

func TestTypeMapGetUnknown(t *testing.T) {
	m := NewTypeMap()
	_, err := m.Get("widget")
	require.Error(t, err)

	var unknownErr UnknownTypeError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "widget", unknownErr.Name)
}

func TestTypeMapResolveAncestors(t *testing.T) {
	m := DefaultTypeMap()
	m.SetParent("port", "int")
	m.SetParent("tcp-port", "port")

	suffix, ok := m.Resolve("tcp-port")
	require.True(t, ok)
	assert.Equal(t, "=i", suffix)

	// exact registration wins over the chain
	m.Add("tcp-port", "=s")
	suffix, ok = m.Resolve("tcp-port")
	require.True(t, ok)
	assert.Equal(t, "=s", suffix)

	_, ok = m.Resolve("widget")
	assert.False(t, ok)
}

func TestTypeMapResolveCycle(t *testing.T) {
	m := NewTypeMap()
	m.SetParent("a", "b")
	m.SetParent("b", "a")

	_, ok := m.Resolve("a")
	assert.False(t, ok)
}

func TestDefaultTypesRegistry(t *testing.T) {
	require.False(t, HasOptionType("registry-test-type"))
	AddOptionType("registry-test-type", "=i")
	defer delete(DefaultTypes.suffixes, "registry-test-type")

	assert.True(t, HasOptionType("registry-test-type"))
	suffix, err := OptionType("registry-test-type")
	require.NoError(t, err)
	assert.Equal(t, "=i", suffix)
}
