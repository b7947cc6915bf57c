package resolver

import (
	"math"

	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// infiniteSourceIndex stands in for spec.md §4.4's "+∞": used when the
// referring field is contained deeper than the compound being walked, so no
// sibling-position comparison against it can ever fail.
const infiniteSourceIndex = math.MaxInt

// locateTarget walks tokens against start, producing the field-path indices
// from start down to the target field class (spec.md §4.4). sourceIndex is
// the index of the referring field within start, or infiniteSourceIndex.
//
// The "first level done" guard: causality is enforced only on the very
// first descent away from start. Once any descent has happened — whether
// a structure/variant member lookup or a transparent array/sequence
// unwrap — deeper lookups never compare against sourceIndex again.
func locateTarget(tokens []string, start ctf.FieldClass, sourceIndex int, expr string) ([]int, ctf.FieldClass, error) {
	var indices []int
	current := start
	atStart := true

	for {
		switch c := current.(type) {
		case *ctf.Array:
			indices = append(indices, ctf.ElementIndex)
			current = c.Element
			atStart = false
			continue

		case *ctf.Sequence:
			indices = append(indices, ctf.ElementIndex)
			current = c.Element
			atStart = false
			continue
		}

		if len(tokens) == 0 {
			return indices, current, nil
		}

		token := tokens[0]

		switch c := current.(type) {
		case *ctf.Structure:
			idx := c.MemberIndex(token)
			if idx == -1 {
				return nil, nil, rerrors.New(rerrors.KindLookup, expr,
					"no member named '"+token+"' in the current structure")
			}
			if atStart && idx >= sourceIndex {
				return nil, nil, rerrors.New(rerrors.KindCausality, expr,
					"reference to '"+token+"' does not precede the referring field")
			}
			indices = append(indices, idx)
			current = c.Members[idx].Class
			tokens = tokens[1:]
			atStart = false

		case *ctf.Variant:
			idx := c.OptionIndex(token)
			if idx == -1 {
				return nil, nil, rerrors.New(rerrors.KindLookup, expr,
					"no option named '"+token+"' in the current variant")
			}
			if atStart && idx >= sourceIndex {
				return nil, nil, rerrors.New(rerrors.KindCausality, expr,
					"reference to '"+token+"' does not precede the referring field")
			}
			indices = append(indices, idx)
			current = c.Options[idx].Class
			tokens = tokens[1:]
			atStart = false

		default:
			return nil, nil, rerrors.New(rerrors.KindLookup, expr,
				"'"+token+"' has no member to descend into at this point in the path")
		}
	}
}
