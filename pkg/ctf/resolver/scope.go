package resolver

import "github.com/antmicro/ctfresolve/pkg/ctf"

// classified is the outcome of matching a path expression's tokens against
// the six absolute prefixes (spec.md §4.2).
type classified struct {
	absolute bool
	root     ctf.ScopeRoot
	// skip is the number of leading tokens the matched prefix consumed
	// (3 for the three-token prefixes, 2 for the two-token ones).
	skip int
}

// classifyScope tests tokens against the six absolute prefixes in the fixed
// order from spec.md §4.2's table and reports the first match. An
// expression that matches none of them is relative.
func classifyScope(tokens []string) classified {
	for _, prefix := range ctf.ScopePrefixes {
		if hasPrefix(tokens, prefix.Tokens) {
			return classified{absolute: true, root: prefix.Root, skip: len(prefix.Tokens)}
		}
	}
	return classified{absolute: false}
}

func hasPrefix(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
