package dfa

import (
	"sort"

	"github.com/relex/automaton/internal/closure"
	"github.com/relex/automaton/thompson"
)

// newDFAState allocates a DFA state for a canonical subset, marking it
// final iff the subset contains the source NFA's designated end state.
func newDFAState(id StateID, subset []thompson.StateID, n *thompson.NFA) *State {
	return &State{
		id:      id,
		subset:  subset,
		trans:   make(map[rune]*State),
		isFinal: closure.ContainsFinal(n, subset),
	}
}

// Convert determinizes n via subset construction over sigma: the start
// state is the epsilon-closure of n's start; for each unmarked state and
// each symbol in sigma, move-then-close finds the target subset, reusing an
// existing DFA state if that exact subset has been seen before and
// allocating a new one (and enqueuing it) otherwise. sigma is sorted by
// rune value before use, so the discovery order — and therefore the
// resulting state ids — is fixed and reproducible across runs.
func Convert(n *thompson.NFA, sigma []rune) (*DFA, error) {
	if int(n.Start()) >= n.Len() || int(n.End()) >= n.Len() {
		return nil, &ConvertError{Err: ErrInvalidFragment}
	}

	alphabet := make([]rune, len(sigma))
	copy(alphabet, sigma)
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	bySubset := make(map[string]*State)
	var nextID StateID

	start := newDFAState(nextID, closure.Epsilon(n, []thompson.StateID{n.Start()}), n)
	bySubset[subsetKey(start.subset)] = start
	nextID++

	states := []*State{start}
	queue := []*State{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, c := range alphabet {
			moved := closure.Move(n, cur.subset, c)
			if len(moved) == 0 {
				continue
			}
			target := closure.Epsilon(n, moved)
			key := subsetKey(target)

			next, ok := bySubset[key]
			if !ok {
				next = newDFAState(nextID, target, n)
				nextID++
				bySubset[key] = next
				states = append(states, next)
				queue = append(queue, next)
			}
			cur.trans[c] = next
		}
	}

	return &DFA{Start: start, States: states, Alphabet: alphabet}, nil
}
