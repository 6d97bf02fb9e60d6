package resolver

import (
	"github.com/stackb/importpolicy/pkg/policy"
)

// NewSymbolRuleResolver constructs a SymbolRuleResolver against the
// given store.
func NewSymbolRuleResolver(store *policy.Store) *SymbolRuleResolver {
	return &SymbolRuleResolver{store: store}
}

// SymbolRuleResolver implements Resolver for the exact-match pass. A
// whole-module rule fires one module-level violation; a named rule
// fires one violation per forbidden name the descriptor imports, in the
// rule's name order.
type SymbolRuleResolver struct {
	store *policy.Store
}

// Resolve implements the Resolver interface.
func (r *SymbolRuleResolver) Resolve(desc ImportDescriptor) (violations []Violation) {
	for _, rule := range r.store.SymbolRulesFor(desc.Module) {
		if rule.Restriction == policy.WholeModule {
			violations = append(violations, Violation{
				Rule:    rule,
				Module:  desc.Module,
				Message: rule.Guidance(),
			})
			continue
		}
		for _, name := range rule.Names {
			if desc.HasName(name) {
				violations = append(violations, Violation{
					Rule:    rule,
					Module:  desc.Module,
					Name:    name,
					Message: rule.Guidance(),
				})
			}
		}
	}
	return
}
