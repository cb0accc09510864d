package argbind

import "strings"

// reservedPrefix marks attributes that are internal to the host object and
// should not become flags unless they opt in with an explicit Flag name.
const reservedPrefix = "_"

// Attr describes one constructible field of a target object. Attrs are
// plain data declared by the caller; the binder only reads them.
type Attr struct {
	// Name is the attribute's name in the host object model. It is also
	// the basis for the derived flag name unless Flag overrides it.
	Name string

	// InitArg is the key used when passing the value to the constructor.
	// When empty it defaults to Name.
	InitArg string

	// Type is the attribute's type name, looked up in the TypeMap to pick
	// an option suffix. Empty means the flag takes no value.
	Type string

	// Required marks the attribute as mandatory for construction. It is
	// surfaced in usage text; enforcement belongs to the constructor,
	// since a required value may arrive from any precedence tier.
	Required bool

	// Default is a static default value. DefaultFunc, when set, supplies
	// the default instead and takes precedence over Default.
	Default     interface{}
	DefaultFunc func() interface{}

	// Lazy marks a default that must not be evaluated eagerly.
	Lazy bool

	// Doc is the help text shown in usage output.
	Doc string

	// Flag overrides the derived flag name. Setting it also opts a
	// reserved-prefix attribute into the CLI surface.
	Flag string

	// Aliases are additional flag names for the same attribute.
	Aliases []string

	// NoFlag excludes the attribute from the CLI surface entirely.
	NoFlag bool
}

func (a Attr) hasDefault() bool {
	return a.Default != nil || a.DefaultFunc != nil
}

func (a Attr) defaultValue() interface{} {
	if a.DefaultFunc != nil {
		return a.DefaultFunc()
	}
	return a.Default
}

func (a Attr) initArg() string {
	if a.InitArg != "" {
		return a.InitArg
	}
	return a.Name
}

// eligibleAttrs filters attrs down to those that become flags, preserving
// declaration order. An attribute is dropped when it is explicitly
// excluded, or when its name carries the reserved prefix and no explicit
// Flag name opts it back in.
func eligibleAttrs(attrs []Attr) []Attr {
	eligible := []Attr{}
	for _, a := range attrs {
		if a.NoFlag {
			continue
		}
		if strings.HasPrefix(a.Name, reservedPrefix) && a.Flag == "" {
			continue
		}
		eligible = append(eligible, a)
	}
	return eligible
}
