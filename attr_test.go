package argbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligibleAttrs(t *testing.T) {
	attrs := []Attr{
		{Name: "alpha"},
		{Name: "_hidden"},
		{Name: "_secret", Flag: "secret"},
		{Name: "beta", NoFlag: true},
		{Name: "gamma"},
	}

	eligible := eligibleAttrs(attrs)

	names := []string{}
	for _, a := range eligible {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"alpha", "_secret", "gamma"}, names)
}

func TestEligibleAttrsPreservesOrder(t *testing.T) {
	attrs := []Attr{
		{Name: "zeta"},
		{Name: "alpha"},
		{Name: "mu"},
	}

	eligible := eligibleAttrs(attrs)
	assert.Equal(t, attrs, eligible)
}

func TestAttrInitArgDefaultsToName(t *testing.T) {
	assert.Equal(t, "foo", Attr{Name: "foo"}.initArg())
	assert.Equal(t, "bar", Attr{Name: "foo", InitArg: "bar"}.initArg())
}
