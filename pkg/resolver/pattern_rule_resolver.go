package resolver

import (
	"github.com/stackb/importpolicy/pkg/glob"
	"github.com/stackb/importpolicy/pkg/policy"
)

// NewPatternRuleResolver constructs a PatternRuleResolver against the
// given store.
func NewPatternRuleResolver(store *policy.Store) *PatternRuleResolver {
	return &PatternRuleResolver{store: store}
}

// PatternRuleResolver implements Resolver for the pattern pass. Each
// matching rule fires one module-level violation; names on the
// descriptor play no part.
type PatternRuleResolver struct {
	store *policy.Store
}

// Resolve implements the Resolver interface.
func (r *PatternRuleResolver) Resolve(desc ImportDescriptor) (violations []Violation) {
	for _, rule := range r.store.PatternRules() {
		if glob.Filter(rule.Includes, rule.Excludes, desc.Module) {
			violations = append(violations, Violation{
				Rule:    rule,
				Module:  desc.Module,
				Message: rule.Guidance(),
			})
		}
	}
	return
}
