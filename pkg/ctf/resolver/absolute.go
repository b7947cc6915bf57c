package resolver

import (
	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// resolveAbsolute implements spec.md §4.5: skip the matched prefix's
// tokens, enforce the layer-translation precondition for that root scope,
// then locate the target starting from the root scope's own compound with
// source index = +∞ (siblings of an absolute reference are never subject
// to a same-level causality check, since the reference did not originate
// inside that scope root).
func resolveAbsolute(ctx *Context, cl classified, tokens []string, expr string) (*ctf.FieldPath, ctf.FieldClass, error) {
	if err := ctx.checkPrecondition(cl.root, expr); err != nil {
		return nil, nil, err
	}

	rootClass := ctx.roots.Get(cl.root)
	if rootClass == nil {
		return nil, nil, rerrors.New(rerrors.KindScopePrecondition, expr,
			"scope root "+cl.root.String()+" is absent").WithScope(cl.root.String())
	}

	indices, targetClass, err := locateTarget(tokens[cl.skip:], rootClass, infiniteSourceIndex, expr)
	if err != nil {
		return nil, nil, err
	}
	return ctf.NewFieldPath(cl.root, indices), targetClass, nil
}
