package argbind

import (
	"fmt"
	"time"

	"github.com/DavidGamba/go-getoptions"
)

// DescriptiveBackend parses with the go-getoptions engine, which also
// produces a formatted usage object alongside the parsed values.
type DescriptiveBackend struct{}

func (DescriptiveBackend) Parse(name string, argv []string, opts []Option) (*BackendResult, error) {
	gopt := getoptions.New()
	gopt.Self(name, "")
	gopt.SetUnknownMode(getoptions.Pass)

	taken := map[string]bool{}
	for _, opt := range opts {
		for _, n := range opt.shape().names {
			taken[n] = true
		}
	}

	// readers pull a value out of the engine after parsing; a value is
	// surfaced only when its option was actually called.
	readers := make([]func() (string, interface{}, bool, error), 0, len(opts))
	for _, opt := range opts {
		opt := opt
		shape := opt.shape()
		primary := shape.names[0]
		mods := []getoptions.ModifyFn{}
		if len(shape.names) > 1 {
			mods = append(mods, gopt.Alias(shape.names[1:]...))
		}
		doc := opt.Doc
		if doc == "" {
			doc = primary
		}
		mods = append(mods, gopt.Description(doc))

		switch shape.kind {
		case kindFlag:
			// The engine toggles a bool against its registered default, so
			// register false regardless of the surfaced default (which only
			// feeds help text); a called flag must always read back true.
			p := gopt.Bool(primary, false, mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				return opt.Name, *p, gopt.Called(primary), nil
			})
		case kindBool:
			p := gopt.Bool(primary, false, mods...)
			negated := false
			negName := "no" + primary
			if !taken[negName] {
				negAliases := []string{}
				if alias := "no-" + primary; !taken[alias] {
					negAliases = append(negAliases, alias)
				}
				negMods := []getoptions.ModifyFn{gopt.Description("disable --" + primary)}
				if len(negAliases) > 0 {
					negMods = append(negMods, gopt.Alias(negAliases...))
				}
				gopt.Bool(negName, false, negMods...)
				negated = true
			}
			readers = append(readers, func() (string, interface{}, bool, error) {
				if negated && gopt.Called(negName) {
					return opt.Name, false, true, nil
				}
				return opt.Name, *p, gopt.Called(primary), nil
			})
		case kindInt:
			p := gopt.Int(primary, defaultInt(opt), mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				return opt.Name, *p, gopt.Called(primary), nil
			})
		case kindFloat:
			p := gopt.Float64(primary, defaultFloat(opt), mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				return opt.Name, *p, gopt.Called(primary), nil
			})
		case kindDuration:
			p := gopt.String(primary, defaultString(opt), mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				if !gopt.Called(primary) {
					return opt.Name, nil, false, nil
				}
				v, err := time.ParseDuration(*p)
				if err != nil {
					return opt.Name, nil, false, fmt.Errorf("flag --%s: invalid duration %q", primary, *p)
				}
				return opt.Name, v, true, nil
			})
		case kindList:
			elem := shape.elem
			p := gopt.StringSlice(primary, 1, 1, mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				if !gopt.Called(primary) {
					return opt.Name, nil, false, nil
				}
				v, err := convertList(elem, *p)
				if err != nil {
					return opt.Name, nil, false, fmt.Errorf("flag --%s: %s", primary, err)
				}
				return opt.Name, v, true, nil
			})
		case kindMap:
			m := gopt.StringMap(primary, 1, 1, mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				return opt.Name, m, gopt.Called(primary), nil
			})
		default:
			p := gopt.String(primary, defaultString(opt), mods...)
			readers = append(readers, func() (string, interface{}, bool, error) {
				return opt.Name, *p, gopt.Called(primary), nil
			})
		}
	}

	extra, err := gopt.Parse(argv)
	if err != nil {
		return nil, newParseError(err.Error())
	}

	values := map[string]interface{}{}
	diagnostics := []string{}
	for _, read := range readers {
		name, v, ok, err := read()
		if err != nil {
			diagnostics = append(diagnostics, err.Error())
			continue
		}
		if ok {
			values[name] = v
		}
	}
	if len(diagnostics) > 0 {
		return nil, newParseError(diagnostics...)
	}

	return &BackendResult{
		Values: values,
		Extra:  extra,
		Usage:  &Usage{text: gopt.Help()},
	}, nil
}

func defaultInt(opt Option) int {
	if !opt.HasDefault {
		return 0
	}
	switch v := opt.Default.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func defaultFloat(opt Option) float64 {
	if !opt.HasDefault {
		return 0
	}
	switch v := opt.Default.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func defaultString(opt Option) string {
	if !opt.HasDefault {
		return ""
	}
	if s, ok := opt.Default.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", opt.Default)
}
