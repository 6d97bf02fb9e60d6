package diagnostic

import (
	"fmt"

	"github.com/stackb/importpolicy/pkg/resolver"
)

// Format renders one violation as a reportable diagnostic: a contextual
// prefix naming the module (and symbol, when one matched) followed by
// the rule's guidance text verbatim. Guidance may span multiple lines;
// embedded newlines are preserved. Pure, no I/O.
func Format(v resolver.Violation) string {
	if v.Name != "" {
		return fmt.Sprintf("restricted import %q from %q: %s", v.Name, v.Module, v.Message)
	}
	return fmt.Sprintf("restricted import %q: %s", v.Module, v.Message)
}

// FormatAll renders each violation in order, one diagnostic per
// violation.
func FormatAll(violations []resolver.Violation) []string {
	if len(violations) == 0 {
		return nil
	}
	diagnostics := make([]string, len(violations))
	for i, v := range violations {
		diagnostics[i] = Format(v)
	}
	return diagnostics
}
