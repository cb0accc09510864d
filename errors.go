package argbind

import (
	"fmt"
	"strings"
)

// DuplicateOptionError indicates two attributes derived the same flag name
// or alias. It is detected while building option specs, before any parsing.
type DuplicateOptionError struct {
	Name string
}

func (e DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option %q", e.Name)
}

// MissingInitArgError indicates an attribute with no usable construction
// key (both Name and InitArg are empty).
type MissingInitArgError struct {
	Attr string
}

func (e MissingInitArgError) Error() string {
	return fmt.Sprintf("attribute %q has no init arg", e.Attr)
}

// UnknownTypeError indicates a type-map lookup for a name that is not
// registered and has no registered ancestor.
type UnknownTypeError struct {
	Name string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("no option type registered for %q", e.Name)
}

// ParseError carries every diagnostic produced during a single parse.
// Parsing never fails piecemeal: all problems with the argument sequence
// are collected and reported as one error.
type ParseError struct {
	Diagnostics []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing arguments: %s", strings.Join(e.Diagnostics, "; "))
}

func newParseError(diagnostics ...string) *ParseError {
	return &ParseError{Diagnostics: diagnostics}
}

// NoConstructorError is returned by NewWithArgs when the binder has no
// constructor to hand the merged parameters to.
type NoConstructorError struct {
	Binder string
}

func (e NoConstructorError) Error() string {
	return fmt.Sprintf("binder %q has no constructor", e.Binder)
}
