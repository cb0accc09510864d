/*
Package argbind derives a command-line option grammar from a declared
attribute table, parses argument sequences against it, and reconciles the
parsed values with config-file values and explicit construction parameters.

# Example

A program with two attributes:

	package main

	import (
		"fmt"

		"github.com/argbind/argbind"
	)

	func main() {
		b := argbind.New("copy", []argbind.Attr{
			{Name: "jobs", Type: "int", Default: 1, Lazy: true, Doc: "parallel copies"},
			{Name: "verbose", Type: "bool", Aliases: []string{"v"}, Doc: "log each file"},
		})

		pa, err := b.Process(nil)
		if err != nil {
			panic(err)
		}
		fmt.Println(pa.CLIParams)  // values supplied on the command line
		fmt.Println(pa.ExtraArgv)  // leftover positional arguments
	}

Usage:

	$ copy --jobs 4 -v src.dat dst.dat
	map[jobs:4 verbose:true]
	[src.dat dst.dat]

# Attributes

Each eligible attribute becomes one long-form option, optionally with
aliases. Attributes are plain data: name, construction key (init-arg),
type name, required flag, default, documentation, and CLI overrides
(explicit flag name, aliases, exclusion). Attributes whose names begin
with "_" stay off the CLI unless they set an explicit Flag name.

# Types and suffixes

An attribute's type name is resolved through a TypeMap to a getopt-style
suffix that fixes the flag's parsing behavior:

	bool      !     --flag and --noflag
	int       =i    one integer value
	float     =f    one number value
	string    =s    one string value
	duration  =d    one time.ParseDuration value
	list      =s@   repeated occurrences collect into a slice
	map       =s%   repeated key=value occurrences collect into a map

Custom type names can be registered process-wide with AddOptionType, or
per binder with SetTypeMap. A type name can also declare an ancestor with
TypeMap.SetParent; unregistered names fall back to their nearest
registered ancestor. Attributes with a type that resolves to nothing are
parsed as plain strings, and attributes with no type at all are bare
presence flags.

# Backends

Two interchangeable backends satisfy the same parsing contract.
DescriptiveBackend (the default) drives go-getoptions and additionally
yields a formatted usage handle; PlainBackend is a minimal pull parser
with no usage object. Unrecognized tokens are never discarded by either:
they are returned in order as ExtraArgv.

# Construction

NewWithArgs merges three tiers, lowest to highest precedence: parsed CLI
values, values loaded by the configured ConfigLoader, and explicit
parameters passed by the caller. The merged set, plus the reserved keys
"ARGV" and "extra_argv", is handed to the configured Constructor.
*/
package argbind
