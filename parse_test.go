package argbind

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, attrs []Attr) []Option {
	t.Helper()
	opts, _, err := BuildOptions(attrs, DefaultTypes)
	require.NoError(t, err)
	return opts
}

func TestPlainBackendBasic(t *testing.T) {
	opts := mustBuild(t, []Attr{
		{Name: "bar", Type: "int", Required: true},
		{Name: "baz", Type: "int", Required: true},
	})

	res, err := PlainBackend{}.Parse("app", []string{"--bar", "10", "file.dat"}, opts)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"bar": 10}, res.Values)
	assert.Equal(t, []string{"file.dat"}, res.Extra)
	assert.Nil(t, res.Usage)
}

func TestPlainBackendBoolNegation(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "verbose", Type: "bool"}})

	cases := []struct {
		argv []string
		want interface{}
	}{
		{[]string{"--verbose"}, true},
		{[]string{"-verbose"}, true},
		{[]string{"--verbose=false"}, false},
		{[]string{"--verbose=true"}, true},
		{[]string{"--noverbose"}, false},
		{[]string{"--no-verbose"}, false},
	}
	for _, c := range cases {
		res, err := PlainBackend{}.Parse("app", c.argv, opts)
		require.NoError(t, err, c.argv)
		assert.Equal(t, c.want, res.Values["verbose"], c.argv)
	}

	res, err := PlainBackend{}.Parse("app", []string{}, opts)
	require.NoError(t, err)
	_, present := res.Values["verbose"]
	assert.False(t, present)
}

func TestPlainBackendEqualsForm(t *testing.T) {
	opts := mustBuild(t, []Attr{
		{Name: "name", Type: "string"},
		{Name: "rate", Type: "float"},
	})

	res, err := PlainBackend{}.Parse("app", []string{"--name=joe", "--rate=0.5"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "joe", res.Values["name"])
	assert.Equal(t, 0.5, res.Values["rate"])
}

func TestPlainBackendAliases(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "name", Type: "string", Aliases: []string{"n"}}})

	res, err := PlainBackend{}.Parse("app", []string{"-n", "joe"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "joe", res.Values["name"])
}

func TestPlainBackendListAndMap(t *testing.T) {
	opts := mustBuild(t, []Attr{
		{Name: "include", Type: "list"},
		{Name: "define", Type: "map"},
	})

	res, err := PlainBackend{}.Parse("app", []string{
		"--include", "a",
		"--include=b",
		"--define", "k1=v1",
		"--define", "k2=v2",
	}, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, res.Values["include"])
	assert.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, res.Values["define"])
}

func TestPlainBackendTypedList(t *testing.T) {
	types := DefaultTypeMap()
	types.Add("intlist", "=i@")
	opts, _, err := BuildOptions([]Attr{{Name: "ports", Type: "intlist"}}, types)
	require.NoError(t, err)

	res, err := PlainBackend{}.Parse("app", []string{"--ports", "80", "--ports", "443"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{80, 443}, res.Values["ports"])
}

func TestPlainBackendDuration(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "wait", Type: "duration"}})

	res, err := PlainBackend{}.Parse("app", []string{"--wait", "5s"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, res.Values["wait"])
}

func TestPlainBackendUnknownPassThrough(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "bar", Type: "int"}})

	res, err := PlainBackend{}.Parse("app", []string{
		"pre", "--unknown", "--bar", "1", "mid", "-x", "post",
	}, opts)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"bar": 1}, res.Values)
	assert.Equal(t, []string{"pre", "--unknown", "mid", "-x", "post"}, res.Extra)
}

func TestPlainBackendDashDashTerminator(t *testing.T) {
	opts := mustBuild(t, []Attr{
		{Name: "bar", Type: "int"},
		{Name: "baz", Type: "int"},
	})

	res, err := PlainBackend{}.Parse("app", []string{"--bar", "1", "--", "--baz", "2"}, opts)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"bar": 1}, res.Values)
	assert.Equal(t, []string{"--baz", "2"}, res.Extra)
}

func TestPlainBackendAggregatesDiagnostics(t *testing.T) {
	opts := mustBuild(t, []Attr{
		{Name: "bar", Type: "int"},
		{Name: "baz", Type: "int"},
		{Name: "name", Type: "string"},
	})

	_, err := PlainBackend{}.Parse("app", []string{
		"--bar", "xyz",
		"--baz", "abc",
		"--name",
	}, opts)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Len(t, parseErr.Diagnostics, 3)
	assert.Contains(t, parseErr.Diagnostics[0], "--bar")
	assert.Contains(t, parseErr.Diagnostics[1], "--baz")
	assert.Contains(t, parseErr.Diagnostics[2], "--name")
}

func TestPlainBackendDoesNotModifyArgv(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "bar", Type: "int"}})

	argv := []string{"--bar", "10", "file.dat"}
	_, err := PlainBackend{}.Parse("app", argv, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"--bar", "10", "file.dat"}, argv)
}

func TestPlainBackendBadSyntax(t *testing.T) {
	opts := mustBuild(t, []Attr{{Name: "bar", Type: "int"}})

	_, err := PlainBackend{}.Parse("app", []string{"---bar", "1"}, opts)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}
