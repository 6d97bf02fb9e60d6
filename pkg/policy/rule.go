package policy

import "fmt"

// Rule is the common interface of the rule kinds held in a Store.
type Rule interface {
	// Guidance returns the message authored on the rule.
	Guidance() string

	fmt.Stringer
}
