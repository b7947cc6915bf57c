package resolver

import (
	"strings"

	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// TokenizePath splits a dotted path expression into its ordered tokens
// (spec.md §4.1). The separator is '.'; a token ends at each '.' or at
// end-of-string. Empty tokens ("..", a leading '.', a trailing '.', or the
// empty string itself) are rejected — the lexer never interprets a token,
// it only refuses to hand one downstream empty.
func TokenizePath(expr string) ([]string, error) {
	if expr == "" {
		return nil, rerrors.New(rerrors.KindLexical, expr, "path expression must not be empty")
	}

	parts := strings.Split(expr, ".")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, rerrors.New(rerrors.KindLexical, expr, "path expression contains an empty token")
		}
		tokens = append(tokens, p)
	}
	return tokens, nil
}
