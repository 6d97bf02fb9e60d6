package policy

import "fmt"

// AliasRule maps a short import path prefix to its canonical location.
// Prefixes match whole path segments only ("@src" matches "@src/libs/x"
// but not "@srcx/libs/x").
type AliasRule struct {
	// Alias is the prefix as written in import statements.
	Alias string
	// Path is the canonical location the prefix stands for.
	Path string
}

// String implements fmt.Stringer
func (r *AliasRule) String() string {
	return fmt.Sprintf("%s -> %s", r.Alias, r.Path)
}
