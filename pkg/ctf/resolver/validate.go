package resolver

import (
	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// validateTarget enforces spec.md §4.7 against a located target: non-root,
// scope ordering, intra-scope causality via lowest-common-ancestor, and
// type compatibility. sourcePath is the full path (including the node's own
// position) of the field doing the referencing.
func validateTarget(
	expr string,
	sourcePath []int,
	sourceRoot ctf.ScopeRoot,
	targetPath *ctf.FieldPath,
	targetClass ctf.FieldClass,
	wantKind func(ctf.FieldClass) bool,
	wantDesc string,
) error {
	fail := func(kind rerrors.ErrorKind, msg string) error {
		return rerrors.New(kind, expr, msg).
			WithScope(sourceRoot.String()).
			WithTarget(targetPath.String())
	}

	if len(targetPath.Indices) == 0 {
		return fail(rerrors.KindCausality, "reference resolves to a scope root, not a field within it")
	}

	if targetPath.Root != sourceRoot {
		if !targetPath.Root.Before(sourceRoot) {
			return fail(rerrors.KindCausality, "cross-scope target does not precede the source scope")
		}
	} else {
		divergence, isPrefix := ctf.LowestCommonAncestor(sourcePath, targetPath.Indices)
		if isPrefix {
			return fail(rerrors.KindCausality, "target is an ancestor or descendant of the source field")
		}
		if targetPath.Indices[divergence] >= sourcePath[divergence] {
			return fail(rerrors.KindCausality, "target does not precede the source field")
		}
	}

	if !wantKind(targetClass) {
		return fail(rerrors.KindType, "target field class is not "+wantDesc)
	}

	return nil
}

func validateSequenceLength(expr string, sourcePath []int, sourceRoot ctf.ScopeRoot, targetPath *ctf.FieldPath, targetClass ctf.FieldClass) error {
	return validateTarget(expr, sourcePath, sourceRoot, targetPath, targetClass, ctf.IsUnsignedInteger, "an unsigned integer")
}

func validateVariantTag(expr string, sourcePath []int, sourceRoot ctf.ScopeRoot, targetPath *ctf.FieldPath, targetClass ctf.FieldClass) error {
	return validateTarget(expr, sourcePath, sourceRoot, targetPath, targetClass, ctf.IsEnumeration, "an enumeration")
}
