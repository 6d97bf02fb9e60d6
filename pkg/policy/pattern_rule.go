package policy

import (
	"fmt"
	"strings"
)

// PatternRule forbids imports whose module path matches any include glob
// and no exclude glob. Includes are order-independent; excludes
// dominate.
type PatternRule struct {
	// Includes are the glob patterns that select restricted paths.
	Includes []string
	// Excludes carve exemptions out of the includes. Stored without the
	// leading '!' they are authored with.
	Excludes []string
	// Message is the guidance reported with every violation of this
	// rule.
	Message string
}

// Guidance implements part of the Rule interface.
func (r *PatternRule) Guidance() string {
	return r.Message
}

// String implements fmt.Stringer
func (r *PatternRule) String() string {
	s := fmt.Sprintf("restrict %s", strings.Join(r.Includes, ","))
	if len(r.Excludes) > 0 {
		s += fmt.Sprintf(" except %s", strings.Join(r.Excludes, ","))
	}
	return s
}
