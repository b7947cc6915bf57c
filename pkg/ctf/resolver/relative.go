package resolver

import (
	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// resolveRelative implements spec.md §4.6: search the descent stack
// innermost-to-outermost, attempting the target locator at each ancestor
// with source index = the index under which we descended from it. The
// first successful attempt wins; its field path is the stack prefix from
// the outermost ancestor up to (not including) the matched one, stitched
// to whatever the locator returned from the matched ancestor down.
func resolveRelative(ctx *Context, tokens []string, expr string) (*ctf.FieldPath, ctf.FieldClass, error) {
	if ctx.stack.size() == 0 {
		return nil, nil, rerrors.New(rerrors.KindLookup, expr,
			"relative reference has no enclosing compound to search")
	}

	prefix := ctx.stack.indices()

	var lastErr error
	for i := ctx.stack.size() - 1; i >= 0; i-- {
		anc := ctx.stack.at(i)
		tail, targetClass, err := locateTarget(tokens, anc.compound, anc.index, expr)
		if err != nil {
			lastErr = err
			continue
		}

		indices := append(append([]int(nil), prefix[:i]...), tail...)
		return ctf.NewFieldPath(ctx.currentRoot, indices), targetClass, nil
	}

	return nil, nil, lastErr
}
