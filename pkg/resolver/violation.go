package resolver

import (
	"fmt"

	"github.com/stackb/importpolicy/pkg/policy"
)

// Violation is a single detected policy breach for one import
// statement.
type Violation struct {
	// Rule is the policy rule that fired.
	Rule policy.Rule
	// Module is the offending module path.
	Module string
	// Name is the offending imported name. Empty for module-level
	// violations.
	Name string
	// Message is the guidance text authored on the rule.
	Message string
}

// String implements fmt.Stringer
func (v Violation) String() string {
	if v.Name != "" {
		return fmt.Sprintf("%s!%s (%v)", v.Module, v.Name, v.Rule)
	}
	return fmt.Sprintf("%s (%v)", v.Module, v.Rule)
}
