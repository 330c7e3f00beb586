// Package dfa determinizes a Thompson NFA into a DFA via subset
// construction, and defines the DFA's own state type.
package dfa

import (
	"strconv"
	"strings"

	"github.com/relex/automaton/thompson"
)

// StateID identifies a State within one DFA, scoped to that DFA the same
// way thompson.StateID is scoped to one NFA.
type StateID uint32

// State is one DFA state: a canonical subset of NFA state ids (its "name",
// per the subset-construction literature), a deterministic transition map,
// and whether the subset contains the source NFA's designated end state.
type State struct {
	id      StateID
	subset  []thompson.StateID // sorted ascending; canonical for equality/hashing
	trans   map[rune]*State
	isFinal bool
}

// ID returns the state's DFA-scoped id.
func (s *State) ID() StateID { return s.id }

// Subset returns the sorted NFA state ids this DFA state represents. The
// returned slice must not be mutated.
func (s *State) Subset() []thompson.StateID { return s.subset }

// IsFinal reports whether this state accepts.
func (s *State) IsFinal() bool { return s.isFinal }

// Next returns the state reached on c, or nil if there is no such
// transition (the implicit dead state: rejection, not an error).
func (s *State) Next(c rune) *State { return s.trans[c] }

// DFA is the determinized automaton: a start state, every state in
// discovery order (start first), and the alphabet used to build it. A DFA
// only borrows thompson.StateIDs for display/debugging purposes; it never
// mutates the NFA it was built from.
type DFA struct {
	Start    *State
	States   []*State
	Alphabet []rune
}

// subsetKey canonicalizes a sorted id slice into a map key. Concatenating
// decimal ids with a separator that cannot appear in a decimal number gives
// structural string equality for free, avoiding a hand-rolled set-equality
// comparator over unordered NFA-state sets.
func subsetKey(sorted []thompson.StateID) string {
	var sb strings.Builder
	for i, id := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
