package argbind

// TypeMap maps attribute type names to option suffixes. Suffixes follow the
// getopt convention: "!" for a negatable bool, "=i"/"=f"/"=s"/"=d" for a
// single int, float, string or duration value, a trailing "@" for a repeated
// list, and "=s%" for repeated key=value pairs.
//
// A TypeMap may also declare parent relationships between type names; an
// unregistered name resolves to the suffix of its nearest registered
// ancestor.
type TypeMap struct {
	suffixes map[string]string
	parents  map[string]string
}

// NewTypeMap returns an empty TypeMap.
func NewTypeMap() *TypeMap {
	return &TypeMap{
		suffixes: map[string]string{},
		parents:  map[string]string{},
	}
}

// DefaultTypeMap returns a TypeMap seeded with the built-in type names.
func DefaultTypeMap() *TypeMap {
	m := NewTypeMap()
	m.Add("bool", "!")
	m.Add("int", "=i")
	m.Add("float", "=f")
	m.Add("string", "=s")
	m.Add("duration", "=d")
	m.Add("list", "=s@")
	m.Add("map", "=s%")
	return m
}

// Has reports whether an exact suffix registration exists for name.
// Ancestor fallback is not consulted; use Resolve for that.
func (m *TypeMap) Has(name string) bool {
	_, ok := m.suffixes[name]
	return ok
}

// Get returns the suffix registered for the exact name, or an
// UnknownTypeError if there is none.
func (m *TypeMap) Get(name string) (string, error) {
	suffix, ok := m.suffixes[name]
	if !ok {
		return "", UnknownTypeError{Name: name}
	}
	return suffix, nil
}

// Add registers a suffix for a type name, overwriting any previous
// registration.
func (m *TypeMap) Add(name string, suffix string) {
	m.suffixes[name] = suffix
}

// SetParent declares parent as the fallback for child when child itself is
// not registered. Chains are followed transitively by Resolve.
func (m *TypeMap) SetParent(child string, parent string) {
	m.parents[child] = parent
}

// Resolve walks name and its ancestor chain and returns the first
// registered suffix. The boolean is false when the whole chain is
// unregistered.
func (m *TypeMap) Resolve(name string) (string, bool) {
	seen := map[string]bool{}
	for name != "" && !seen[name] {
		if suffix, ok := m.suffixes[name]; ok {
			return suffix, true
		}
		seen[name] = true
		name = m.parents[name]
	}
	return "", false
}

// DefaultTypes is the process-wide registry consulted by binders that have
// not been given their own TypeMap. It may be extended at any time; lookups
// happen when option specs are built, not earlier.
var DefaultTypes = DefaultTypeMap()

// HasOptionType reports whether name is registered in DefaultTypes.
func HasOptionType(name string) bool {
	return DefaultTypes.Has(name)
}

// OptionType returns the suffix registered for name in DefaultTypes.
func OptionType(name string) (string, error) {
	return DefaultTypes.Get(name)
}

// AddOptionType registers a suffix for name in DefaultTypes, overwriting
// any previous registration.
func AddOptionType(name string, suffix string) {
	DefaultTypes.Add(name, suffix)
}
