package policy

import (
	"fmt"
	"strings"
)

// Restriction says how much of a module a SymbolRule forbids. The tag
// removes the ambiguity of an empty name list: an empty list always
// means WholeModule, never "no restriction".
type Restriction int

const (
	// WholeModule forbids every import of the module.
	WholeModule Restriction = iota
	// NamedSymbols forbids only the names listed on the rule.
	NamedSymbols
)

// SymbolRule forbids specific names, or all imports, of an exact module
// path.
type SymbolRule struct {
	// Module is the exact module path the rule applies to.
	Module string
	// Restriction selects whole-module or named-symbol scope.
	Restriction Restriction
	// Names are the forbidden names when Restriction is NamedSymbols.
	// The name "default" is ordinary and matched literally, so a rule
	// can forbid the default import without forbidding named ones.
	Names []string
	// Message is the guidance reported with every violation of this
	// rule. May span multiple lines.
	Message string
}

// ForbidsName reports whether the rule forbids importing the given name.
func (r *SymbolRule) ForbidsName(name string) bool {
	if r.Restriction == WholeModule {
		return true
	}
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Guidance implements part of the Rule interface.
func (r *SymbolRule) Guidance() string {
	return r.Message
}

// String implements fmt.Stringer
func (r *SymbolRule) String() string {
	if r.Restriction == WholeModule {
		return fmt.Sprintf("restrict %s", r.Module)
	}
	return fmt.Sprintf("restrict %s{%s}", r.Module, strings.Join(r.Names, ","))
}
