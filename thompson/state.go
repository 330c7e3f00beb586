// Package thompson builds a Thompson-construction NFA from a postfix regular
// expression. Each postfix operator maps to one combinator over a small
// working stack of fragments; every fragment is a pair of state ids into a
// single Builder's arena.
package thompson

import (
	"fmt"

	"github.com/relex/automaton/internal/conv"
)

// StateID indexes a State within one NFA's arena. Ids are assigned
// monotonically by the Builder that created them and are meaningless outside
// that Builder/NFA.
type StateID uint32

// InvalidState is returned where no state id applies.
const InvalidState StateID = ^StateID(0)

// Kind identifies the shape of a state's outgoing edges. There is no
// separate "isFinal" flag on State: whether a state is accepting is a
// property of which state an NFA designates as its end (see NFA.End),
// recomputed by subset construction, not stored per-node.
type Kind uint8

const (
	// KindMatch is a sink: zero outgoing edges. Every fragment starts life
	// with a KindMatch end state; that state is repurposed into KindEpsilon
	// or KindSplit the moment an outer combinator splices something after
	// it. Exactly one KindMatch state survives unmutated in a finished NFA:
	// the top-level fragment's End.
	KindMatch Kind = iota

	// KindByte transitions on exactly one alphabet symbol.
	KindByte

	// KindEpsilon has a single unlabeled outgoing edge.
	KindEpsilon

	// KindSplit has two unlabeled outgoing edges (alternation or a
	// quantifier's loop-back/exit branches).
	KindSplit
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "Match"
	case KindByte:
		return "Byte"
	case KindEpsilon:
		return "Epsilon"
	case KindSplit:
		return "Split"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// State is a read-only view of one arena slot. Only the fields relevant to
// its Kind are meaningful.
type State struct {
	id    StateID
	kind  Kind
	sym   rune
	next  StateID
	left  StateID
	right StateID
}

// ID returns the state's id.
func (s State) ID() StateID { return s.id }

// Kind returns the state's kind.
func (s State) Kind() Kind { return s.kind }

// Byte returns the transition symbol and target for a KindByte state.
// Returns (0, InvalidState) otherwise.
func (s State) Byte() (sym rune, next StateID) {
	if s.kind != KindByte {
		return 0, InvalidState
	}
	return s.sym, s.next
}

// Epsilon returns the target for a KindEpsilon state.
// Returns InvalidState otherwise.
func (s State) Epsilon() StateID {
	if s.kind != KindEpsilon {
		return InvalidState
	}
	return s.next
}

// Split returns the two targets for a KindSplit state.
// Returns (InvalidState, InvalidState) otherwise.
func (s State) Split() (left, right StateID) {
	if s.kind != KindSplit {
		return InvalidState, InvalidState
	}
	return s.left, s.right
}

// NFA is the finished product of a Builder: an immutable arena of states
// plus the (start, end) pair Thompson construction requires. Dropping a
// DFA does not affect the NFA it was built from (a DFA only borrows read-only
// references into the arena via state ids); dropping the NFA while a DFA
// built from it is still in use is a caller error, since the DFA's ids would
// then dangle.
type NFA struct {
	states []State
	start  StateID
	end    StateID
}

// Start returns the NFA's unique start state id.
func (n *NFA) Start() StateID { return n.start }

// End returns the NFA's unique final state id. End always has Kind ==
// KindMatch and zero outgoing edges.
func (n *NFA) End() StateID { return n.end }

// Len returns the number of states in the arena.
func (n *NFA) Len() int { return len(n.states) }

// Get returns the state at id. Panics on an out-of-range id, which indicates
// a caller bug (an id from a different NFA, or a stale id from before the
// NFA was built).
func (n *NFA) Get(id StateID) State {
	return n.states[id]
}

// stateIndex narrows a state count to a StateID, panicking on overflow
// rather than wrapping silently.
func stateIndex(n int) StateID {
	return StateID(conv.IntToUint32(n))
}
