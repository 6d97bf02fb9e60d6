package resolver

import (
	"github.com/dghubble/trie"

	"github.com/stackb/importpolicy/pkg/policy"
)

// NewAliasResolver constructs an AliasResolver from the given alias
// rules. Prefix uniqueness is the store's concern; rules arrive here
// already validated.
func NewAliasResolver(rules []*policy.AliasRule) *AliasResolver {
	r := &AliasResolver{
		forward: trie.NewPathTrie(),
		reverse: trie.NewPathTrie(),
	}
	for _, rule := range rules {
		r.forward.Put(rule.Alias, rule)
		r.reverse.Put(rule.Path, rule)
	}
	return r
}

// AliasResolver rewrites import paths between their aliased and
// canonical forms using a pair of path tries. The longest matching
// prefix wins, and prefixes match whole path segments only, so "@src"
// never captures "@srcx/util".
type AliasResolver struct {
	forward *trie.PathTrie
	reverse *trie.PathTrie
}

// Apply rewrites an aliased import path to its canonical location,
// returning false if no alias prefix matches.
func (r *AliasResolver) Apply(path string) (string, bool) {
	rule, prefix := longestPrefix(r.forward, path)
	if rule == nil {
		return path, false
	}
	return rule.Path + path[len(prefix):], true
}

// Unapply rewrites a canonical path back to its aliased form, returning
// false if no canonical prefix matches.
func (r *AliasResolver) Unapply(path string) (string, bool) {
	rule, prefix := longestPrefix(r.reverse, path)
	if rule == nil {
		return path, false
	}
	return rule.Alias + path[len(prefix):], true
}

func longestPrefix(t *trie.PathTrie, path string) (rule *policy.AliasRule, prefix string) {
	t.WalkPath(path, func(key string, value interface{}) error {
		rule = value.(*policy.AliasRule)
		prefix = key
		return nil
	})
	return
}
