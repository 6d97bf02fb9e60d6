package policy

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/stackb/importpolicy/pkg/glob"
)

type StoreOption func(*Store) *Store

// WithLogger sets the logger used during load.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) *Store {
		s.logger = logger
		return s
	}
}

// Store holds the loaded rule set. It is read-only after Load and safe
// for unsynchronized concurrent readers.
type Store struct {
	logger zerolog.Logger

	aliasRules   []*AliasRule
	symbolRules  []*SymbolRule
	patternRules []*PatternRule

	// symbolRulesByModule indexes symbolRules by exact module path.
	symbolRulesByModule map[string][]*SymbolRule
}

// Load validates the raw config and builds a Store. It fails with a
// *ConfigError on the first duplicate alias prefix, missing message,
// empty pattern group, or malformed glob; rules are otherwise kept in
// authored order.
func Load(config *Config, options ...StoreOption) (*Store, error) {
	s := &Store{
		logger:              zerolog.Nop(),
		symbolRulesByModule: make(map[string][]*SymbolRule),
	}
	for _, opt := range options {
		s = opt(s)
	}

	if err := s.loadAliases(config.Aliases); err != nil {
		return nil, err
	}
	if err := s.loadPaths(config.Restricted.Paths); err != nil {
		return nil, err
	}
	if err := s.loadPatterns(config.Restricted.Patterns); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("aliases", len(s.aliasRules)).
		Int("symbolRules", len(s.symbolRules)).
		Int("patternRules", len(s.patternRules)).
		Msg("loaded policy")

	return s, nil
}

func (s *Store) loadAliases(aliases []AliasConfig) error {
	seen := make(map[string]bool)
	for _, a := range aliases {
		if a.Alias == "" {
			return NewConfigError("aliases", a.Path, "alias prefix must not be empty")
		}
		if a.Path == "" {
			return NewConfigError("aliases", a.Alias, "alias path must not be empty")
		}
		if seen[a.Alias] {
			return NewConfigError("aliases", a.Alias, "alias prefix already defined")
		}
		seen[a.Alias] = true
		s.aliasRules = append(s.aliasRules, &AliasRule{Alias: a.Alias, Path: a.Path})
	}
	return nil
}

func (s *Store) loadPaths(paths []PathConfig) error {
	for _, p := range paths {
		if p.Module == "" {
			return NewConfigError("restricted.paths", p.Message, "module must not be empty")
		}
		if p.Message == "" {
			return NewConfigError("restricted.paths", p.Module, "message must not be empty")
		}
		rule := &SymbolRule{
			Module:      p.Module,
			Restriction: WholeModule,
			Message:     p.Message,
		}
		if len(p.Names) > 0 {
			rule.Restriction = NamedSymbols
			rule.Names = append(rule.Names, p.Names...)
		}
		s.symbolRules = append(s.symbolRules, rule)
		s.symbolRulesByModule[rule.Module] = append(s.symbolRulesByModule[rule.Module], rule)
	}
	return nil
}

func (s *Store) loadPatterns(patterns []PatternConfig) error {
	for _, p := range patterns {
		if len(p.Group) == 0 {
			return NewConfigError("restricted.patterns", p.Message, "pattern group must not be empty")
		}
		if p.Message == "" {
			return NewConfigError("restricted.patterns", strings.Join(p.Group, ","), "message must not be empty")
		}
		rule := &PatternRule{Message: p.Message}
		for _, pattern := range p.Group {
			exclude := strings.HasPrefix(pattern, "!")
			if exclude {
				pattern = pattern[1:]
			}
			if err := glob.Validate(pattern); err != nil {
				return NewConfigError("restricted.patterns", pattern, err.Error())
			}
			if exclude {
				rule.Excludes = append(rule.Excludes, pattern)
			} else {
				rule.Includes = append(rule.Includes, pattern)
			}
		}
		if len(rule.Includes) == 0 {
			return NewConfigError("restricted.patterns", strings.Join(p.Group, ","), "pattern group needs at least one include pattern")
		}
		s.patternRules = append(s.patternRules, rule)
	}
	return nil
}

// AliasRules returns the alias rules in authored order.
func (s *Store) AliasRules() []*AliasRule {
	return s.aliasRules
}

// SymbolRules returns the exact-module rules in authored order.
func (s *Store) SymbolRules() []*SymbolRule {
	return s.symbolRules
}

// PatternRules returns the glob rules in authored order.
func (s *Store) PatternRules() []*PatternRule {
	return s.patternRules
}

// SymbolRulesFor returns the exact-module rules for the given module
// path, in authored order.
func (s *Store) SymbolRulesFor(module string) []*SymbolRule {
	return s.symbolRulesByModule[module]
}
