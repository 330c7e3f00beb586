// Package closure implements the two primitives subset construction and the
// NFA simulator both need: epsilon-closure and move. Both components in the
// public API call the same code here, rather than each carrying its own
// copy of a fixed-point worklist algorithm.
package closure

import (
	"sort"

	"github.com/relex/automaton/internal/conv"
	"github.com/relex/automaton/thompson"
)

// idSet is a seen-set over a bounded thompson.StateID universe, backed by a
// sparse/dense pair for O(1) insert-if-absent: sparse maps an id to its slot
// in dense, so membership is one bounds check and one comparison rather than
// a map lookup. Unlike a general-purpose set, it only ever grows within one
// Epsilon/Move call and is discarded afterward, so there is no Remove or
// Clear — nothing in this package ever needs to shrink one.
type idSet struct {
	sparse []uint32
	dense  []thompson.StateID
}

func newIDSet(capacity uint32) *idSet {
	return &idSet{sparse: make([]uint32, capacity)}
}

func (s *idSet) contains(id thompson.StateID) bool {
	idx := s.sparse[id]
	return int(idx) < len(s.dense) && s.dense[idx] == id
}

// insert adds id to the set, reporting whether it was newly added. A no-op
// on a repeat id, which is the common case: both Epsilon and Move call this
// once per candidate and only act when it returns true.
func (s *idSet) insert(id thompson.StateID) bool {
	if s.contains(id) {
		return false
	}
	s.sparse[id] = uint32(len(s.dense))
	s.dense = append(s.dense, id)
	return true
}

// Epsilon computes the smallest set containing seeds and closed under
// epsilon edges, via a worklist seeded with seeds. Each state is visited at
// most once; insertion order does not affect the result, so the output is
// sorted for a deterministic, comparable representation.
func Epsilon(n *thompson.NFA, seeds []thompson.StateID) []thompson.StateID {
	seen := newIDSet(conv.IntToUint32(n.Len()))
	var worklist []thompson.StateID

	push := func(id thompson.StateID) {
		if seen.insert(id) {
			worklist = append(worklist, id)
		}
	}

	for _, id := range seeds {
		push(id)
	}

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		switch s := n.Get(id); s.Kind() {
		case thompson.KindEpsilon:
			push(s.Epsilon())
		case thompson.KindSplit:
			l, r := s.Split()
			push(l)
			push(r)
		}
	}

	out := make([]thompson.StateID, len(seen.dense))
	copy(out, seen.dense)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Move returns the set of states reachable from subset by exactly one
// transition labeled c. Epsilon edges are not followed.
func Move(n *thompson.NFA, subset []thompson.StateID, c rune) []thompson.StateID {
	seen := newIDSet(conv.IntToUint32(n.Len()))
	var out []thompson.StateID

	for _, id := range subset {
		s := n.Get(id)
		if s.Kind() != thompson.KindByte {
			continue
		}
		sym, next := s.Byte()
		if sym != c {
			continue
		}
		if seen.insert(next) {
			out = append(out, next)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ContainsFinal reports whether subset contains the NFA's end state.
func ContainsFinal(n *thompson.NFA, subset []thompson.StateID) bool {
	end := n.End()
	for _, id := range subset {
		if id == end {
			return true
		}
	}
	return false
}
