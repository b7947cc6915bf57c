package resolver

import "github.com/antmicro/ctfresolve/pkg/ctf"

// frame is one level of the descent stack: the compound field class that
// was entered, and the index under which descent was made from its parent
// (spec.md §4.3). The tree itself carries no parent pointers; the driver
// supplies them through this stack as it walks down.
type frame struct {
	compound ctf.FieldClass
	index    int
}

// descentStack is the growable ancestor chain of the field currently under
// visit, from the current root scope down to (but not including) that
// field.
type descentStack struct {
	frames []frame
}

func newDescentStack() *descentStack {
	return &descentStack{}
}

// push enters a compound field class, initially under no determined index.
func (s *descentStack) push(fc ctf.FieldClass) {
	s.frames = append(s.frames, frame{compound: fc, index: -1})
}

// pop leaves the innermost compound.
func (s *descentStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// size returns the current descent depth.
func (s *descentStack) size() int {
	return len(s.frames)
}

// peek returns the innermost frame, or the zero frame if the stack is empty.
func (s *descentStack) peek() frame {
	if len(s.frames) == 0 {
		return frame{}
	}
	return s.frames[len(s.frames)-1]
}

// at returns the frame at depth i (0 = outermost).
func (s *descentStack) at(i int) frame {
	return s.frames[i]
}

// setTopIndex records the index under which the next child of the
// innermost frame is about to be visited.
func (s *descentStack) setTopIndex(i int) {
	s.frames[len(s.frames)-1].index = i
}

// indices returns the index from every frame, outermost first: the path
// prefix that a relative resolution stitches onto a locator result.
func (s *descentStack) indices() []int {
	out := make([]int, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.index
	}
	return out
}
