package argbind

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Params is a construction parameter set, keyed by init-arg.
type Params map[string]interface{}

func (p Params) clone() Params {
	out := Params{}
	for k, v := range p {
		out[k] = v
	}
	return out
}

// overlay copies src over dst; later assignment wins on key conflicts.
func (p Params) overlay(src Params) {
	for k, v := range src {
		p[k] = v
	}
}

// ProcessedArgs is the result of one argument-processing pass. It is
// constructed fresh per call and never mutated afterwards. CLIParams and
// ConstructorParams are deliberately kept separate so each source remains
// independently inspectable; they are only merged on the construction path.
type ProcessedArgs struct {
	// ArgvCopy is a snapshot of the argument sequence as it existed at
	// call entry, before any parsing.
	ArgvCopy []string

	// ExtraArgv holds the tokens the parser did not consume, preserving
	// their original relative order.
	ExtraArgv []string

	// Usage is the engine's formatted usage handle. It is nil when the
	// plain backend was used.
	Usage *Usage

	// ConstructorParams are the explicitly supplied construction
	// parameters, unmodified.
	ConstructorParams Params

	// CLIParams maps init-args to values for the options that were
	// actually supplied on the parsed command line.
	CLIParams Params
}

// Constructor builds the target object from a merged parameter set. The
// set includes the reserved keys "ARGV" (the argument snapshot) and
// "extra_argv" (the unconsumed tokens).
type Constructor func(params Params) (interface{}, error)

// Binder derives a flag grammar from an attribute table, parses argument
// sequences against it, and reconciles the results with config-file and
// explicit construction parameters.
type Binder struct {
	Name string

	attrs     []Attr
	types     *TypeMap
	backend   Backend
	loader    ConfigLoader
	configKey string
	construct Constructor
}

// New creates a Binder for the given attribute table. New returns the
// Binder for further method chaining and panics if the table cannot
// produce a valid option grammar. If you would like to have errors
// returned for handling, use Build instead.
func New(name string, attrs []Attr) *Binder {
	b, err := Build(name, attrs)
	if err != nil {
		panic(fmt.Sprintf("argbind: %s", err))
	}
	return b
}

// Build is like New, but it returns any errors instead of calling panic,
// at the expense of being harder to chain.
func Build(name string, attrs []Attr) (*Binder, error) {
	b := &Binder{
		Name:      name,
		attrs:     attrs,
		backend:   DescriptiveBackend{},
		configKey: "configfile",
	}
	// Surface configuration errors (duplicate flags, missing init-args)
	// immediately; specs are still rebuilt per parse so that type-map
	// changes made after Build are honored.
	if _, _, err := BuildOptions(attrs, b.typeMap()); err != nil {
		return nil, err
	}
	return b, nil
}

// SetTypeMap configures the TypeMap consulted when option specs are built.
// The default is the process-wide DefaultTypes registry.
func (b *Binder) SetTypeMap(m *TypeMap) *Binder {
	b.types = m
	return b
}

// SetBackend configures the parse backend. The default is
// DescriptiveBackend, which also produces usage text.
func (b *Binder) SetBackend(be Backend) *Binder {
	b.backend = be
	return b
}

// SetConfigLoader configures the optional config-file collaborator. A nil
// loader means the binder has no config-file capability.
func (b *Binder) SetConfigLoader(l ConfigLoader) *Binder {
	b.loader = l
	return b
}

// SetConfigKey configures the init-arg under which a config-file path is
// looked for. The default is "configfile".
func (b *Binder) SetConfigKey(key string) *Binder {
	b.configKey = key
	return b
}

// SetConstructor configures the constructor called by NewWithArgs and
// NewWithOptions.
func (b *Binder) SetConstructor(fn Constructor) *Binder {
	b.construct = fn
	return b
}

func (b *Binder) typeMap() *TypeMap {
	if b.types != nil {
		return b.types
	}
	return DefaultTypes
}

// Options builds and returns the current option specs. Specs are derived
// from the type map's state at call time.
func (b *Binder) Options() ([]Option, error) {
	opts, _, err := BuildOptions(b.attrs, b.typeMap())
	return opts, err
}

// ProcessArgs parses argv against the derived option grammar and returns
// the structured result without constructing anything. The caller's argv
// slice is never modified; parsing operates on a private copy.
func (b *Binder) ProcessArgs(argv []string, explicit Params) (*ProcessedArgs, error) {
	argvCopy := append([]string{}, argv...)

	opts, initArgs, err := BuildOptions(b.attrs, b.typeMap())
	if err != nil {
		return nil, err
	}

	res, err := b.backend.Parse(b.Name, append([]string{}, argv...), opts)
	if err != nil {
		return nil, err
	}

	cli := Params{}
	for name, v := range res.Values {
		initArg, ok := initArgs[name]
		if !ok {
			return nil, errors.Errorf("no init arg for option %q", name)
		}
		cli[initArg] = v
	}

	return &ProcessedArgs{
		ArgvCopy:          argvCopy,
		ExtraArgv:         res.Extra,
		Usage:             res.Usage,
		ConstructorParams: explicit.clone(),
		CLIParams:         cli,
	}, nil
}

// Process is a convenience wrapper for ProcessArgs(os.Args[1:], explicit).
func (b *Binder) Process(explicit Params) (*ProcessedArgs, error) {
	return b.ProcessArgs(os.Args[1:], explicit)
}

// NewWithArgs processes argv, merges the three parameter tiers, and hands
// the merged set to the configured constructor. Precedence, lowest to
// highest: parsed CLI values, config-file values, explicit params.
func (b *Binder) NewWithArgs(argv []string, explicit Params) (interface{}, error) {
	if b.construct == nil {
		return nil, NoConstructorError{Binder: b.Name}
	}

	pa, err := b.ProcessArgs(argv, explicit)
	if err != nil {
		return nil, err
	}

	merged, err := b.mergeParams(pa)
	if err != nil {
		return nil, err
	}

	merged["ARGV"] = pa.ArgvCopy
	merged["extra_argv"] = pa.ExtraArgv

	return b.construct(merged)
}

// NewWithOptions is a convenience wrapper for
// NewWithArgs(os.Args[1:], explicit).
func (b *Binder) NewWithOptions(explicit Params) (interface{}, error) {
	return b.NewWithArgs(os.Args[1:], explicit)
}

func (b *Binder) mergeParams(pa *ProcessedArgs) (Params, error) {
	merged := pa.CLIParams.clone()

	if b.loader != nil {
		if path := b.configPath(pa); path != "" {
			cfg, err := b.loader.Load(path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to load config from %s", path)
			}
			merged.overlay(cfg)
		}
	}

	merged.overlay(pa.ConstructorParams)
	return merged, nil
}

// configPath finds the config-file path, preferring explicit params over
// parsed CLI values, mirroring the overall precedence order.
func (b *Binder) configPath(pa *ProcessedArgs) string {
	if path, ok := pa.ConstructorParams[b.configKey].(string); ok {
		return path
	}
	if path, ok := pa.CLIParams[b.configKey].(string); ok {
		return path
	}
	return ""
}
