package resolver

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/importpolicy/pkg/policy"
)

type PolicyResolverOption func(*PolicyResolver) *PolicyResolver

// WithLogger sets the resolver logger.
func WithLogger(logger zerolog.Logger) PolicyResolverOption {
	return func(r *PolicyResolver) *PolicyResolver {
		r.logger = logger
		return r
	}
}

// WithDebug enables descriptor dumps on every resolution.
func WithDebug(debug bool) PolicyResolverOption {
	return func(r *PolicyResolver) *PolicyResolver {
		r.debug = debug
		return r
	}
}

// NewPolicyResolver assembles the full pipeline against the given
// store: the exact-match pass followed by the pattern pass.
func NewPolicyResolver(store *policy.Store, options ...PolicyResolverOption) *PolicyResolver {
	r := &PolicyResolver{logger: zerolog.Nop()}
	for _, opt := range options {
		r = opt(r)
	}
	r.multi = NewMultiResolver(
		NewSymbolRuleResolver(store),
		NewPatternRuleResolver(store),
	)
	return r
}

// PolicyResolver implements Resolver over the full rule set. Both
// passes run unconditionally, so a single import may violate several
// rules at once.
type PolicyResolver struct {
	logger zerolog.Logger
	debug  bool

	multi *MultiResolver
}

// Resolve implements the Resolver interface.
func (r *PolicyResolver) Resolve(desc ImportDescriptor) []Violation {
	if r.debug {
		r.logger.Debug().Msg(spew.Sdump(desc))
	}
	violations := r.multi.Resolve(desc)
	if r.debug && len(violations) > 0 {
		r.logger.Debug().
			Str("module", desc.Module).
			Int("violations", len(violations)).
			Msg("import restricted")
	}
	return violations
}
