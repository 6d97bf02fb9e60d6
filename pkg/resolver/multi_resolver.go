package resolver

// NewMultiResolver constructs a MultiResolver over the given resolvers.
func NewMultiResolver(resolvers ...Resolver) *MultiResolver {
	return &MultiResolver{resolvers: resolvers}
}

// MultiResolver implements Resolver over a list of resolvers. Unlike a
// first-wins chain, every resolver runs unconditionally and the results
// are concatenated: each rule carries a distinct message, so duplicates
// across passes are intended and not deduplicated.
type MultiResolver struct {
	resolvers []Resolver
}

// Resolve implements the Resolver interface.
func (r *MultiResolver) Resolve(desc ImportDescriptor) (violations []Violation) {
	for _, next := range r.resolvers {
		violations = append(violations, next.Resolve(desc)...)
	}
	return
}
