package resolver

// Resolver evaluates one import descriptor against policy.
type Resolver interface {
	// Resolve returns every Violation the descriptor triggers, in rule
	// load order. A descriptor matching no rule yields a nil slice,
	// never an error: an import that nothing restricts is not a
	// failure.
	Resolve(desc ImportDescriptor) []Violation
}
