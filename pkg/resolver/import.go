package resolver

import (
	"fmt"
	"sort"
	"strings"
)

// ImportDescriptor is a single parsed import statement: the module path
// plus the set of imported names. An empty name set is a default or
// namespace import. The literal name "default" is ordinary and matched
// literally against rules that specify it.
type ImportDescriptor struct {
	// Module is the module path as written in the import statement.
	Module string
	// Names are the imported names, if any.
	Names []string
}

// NewModuleImport creates a descriptor for a default/namespace import.
func NewModuleImport(module string) ImportDescriptor {
	return ImportDescriptor{Module: module}
}

// NewNamedImport creates a descriptor for a named import list.
func NewNamedImport(module string, names ...string) ImportDescriptor {
	return ImportDescriptor{Module: module, Names: names}
}

// HasName reports whether the descriptor imports the given name.
func (d ImportDescriptor) HasName(name string) bool {
	for _, n := range d.Names {
		if n == name {
			return true
		}
	}
	return false
}

// String returns a canonical form of the descriptor, stable under name
// ordering. Used as the memo cache key.
func (d ImportDescriptor) String() string {
	if len(d.Names) == 0 {
		return d.Module
	}
	names := make([]string, len(d.Names))
	copy(names, d.Names)
	sort.Strings(names)
	return fmt.Sprintf("%s{%s}", d.Module, strings.Join(names, ","))
}
