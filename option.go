package argbind

import (
	"strings"

	"github.com/huandu/xstrings"
)

// Option is the derived CLI grammar entry for one attribute.
type Option struct {
	// Spec is the full option string: the display name, pipe-joined
	// aliases, and the type-derived suffix, e.g. "verbose|v!" or
	// "include|I=s@".
	Spec string

	// Name is the display name (the primary flag name without suffix).
	Name string

	// InitArg is the construction key parsed values are delivered under.
	InitArg string

	Required   bool
	Default    interface{}
	HasDefault bool
	Doc        string
}

// BuildOptions derives option specs from the eligible attrs, using the
// current state of types for suffix lookup. It returns the options in
// attribute declaration order and a table mapping every flag name and
// alias to its init-arg.
//
// Building is idempotent and free of side effects on attrs; it fails with
// DuplicateOptionError when two attributes claim the same flag name and
// with MissingInitArgError when an attribute has no construction key.
func BuildOptions(attrs []Attr, types *TypeMap) ([]Option, map[string]string, error) {
	options := []Option{}
	initArgs := map[string]string{}

	for _, a := range eligibleAttrs(attrs) {
		initArg := a.initArg()
		if initArg == "" {
			return nil, nil, MissingInitArgError{Attr: a.Name}
		}

		name := a.Flag
		if name == "" {
			name = xstrings.ToKebabCase(a.Name)
		}

		spec := name
		if len(a.Aliases) > 0 {
			spec += "|" + strings.Join(a.Aliases, "|")
		}
		if a.Type != "" {
			if suffix, ok := types.Resolve(a.Type); ok {
				spec += suffix
			} else {
				// Unregistered even through the ancestor chain: accept a
				// plain string value rather than failing the whole build.
				spec += "=s"
			}
		}

		for _, n := range append([]string{name}, a.Aliases...) {
			if _, taken := initArgs[n]; taken {
				return nil, nil, DuplicateOptionError{Name: n}
			}
			initArgs[n] = initArg
		}

		opt := Option{
			Spec:     spec,
			Name:     name,
			InitArg:  initArg,
			Required: a.Required,
			Doc:      a.Doc,
		}
		if a.hasDefault() && ((a.DefaultFunc != nil) != a.Lazy) {
			opt.Default = a.defaultValue()
			opt.HasDefault = true
		}
		options = append(options, opt)
	}

	return options, initArgs, nil
}

type valueKind int

const (
	kindFlag valueKind = iota // no value; presence sets true
	kindBool                  // negatable bool
	kindInt
	kindFloat
	kindString
	kindDuration
	kindList
	kindMap
)

// optionShape is the compiled form of an option spec string, shared by both
// parse backends.
type optionShape struct {
	names []string
	kind  valueKind
	elem  valueKind // element kind when kind == kindList
}

func (o Option) shape() optionShape {
	spec := o.Spec
	shape := optionShape{kind: kindFlag, elem: kindString}

	if strings.HasSuffix(spec, "!") {
		shape.kind = kindBool
		spec = strings.TrimSuffix(spec, "!")
	} else if i := strings.IndexByte(spec, '='); i >= 0 {
		suffix := spec[i:]
		spec = spec[:i]
		if strings.HasSuffix(suffix, "%") {
			shape.kind = kindMap
		} else {
			repeated := strings.HasSuffix(suffix, "@")
			suffix = strings.TrimSuffix(suffix, "@")
			elem := kindString
			switch suffix {
			case "=i":
				elem = kindInt
			case "=f":
				elem = kindFloat
			case "=d":
				elem = kindDuration
			}
			if repeated {
				shape.kind = kindList
				shape.elem = elem
			} else {
				shape.kind = elem
			}
		}
	}

	shape.names = strings.Split(spec, "|")
	return shape
}

// HasArg reports whether the option consumes a value token.
func (o Option) HasArg() bool {
	kind := o.shape().kind
	return kind != kindFlag && kind != kindBool
}
