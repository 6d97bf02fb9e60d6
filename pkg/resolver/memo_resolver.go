package resolver

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// NewMemoResolver constructs a MemoResolver with the given cache size.
func NewMemoResolver(next Resolver, size int) (*MemoResolver, error) {
	cache, err := lru.New[string, []Violation](size)
	if err != nil {
		return nil, err
	}
	return &MemoResolver{next: next, cache: cache}, nil
}

// MemoResolver implements Resolver, memoizing results of the delegate.
// Resolution is pure once the store is loaded, so entries never need
// invalidation. Safe for concurrent use.
type MemoResolver struct {
	next  Resolver
	cache *lru.Cache[string, []Violation]
}

// Resolve implements the Resolver interface.
func (r *MemoResolver) Resolve(desc ImportDescriptor) []Violation {
	key := desc.String()
	if violations, ok := r.cache.Get(key); ok {
		return violations
	}
	violations := r.next.Resolve(desc)
	r.cache.Add(key, violations)
	return violations
}
