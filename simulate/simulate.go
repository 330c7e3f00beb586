// Package simulate runs the two acceptance walks defined over an NFA and a
// DFA: a multi-state epsilon-closure simulation, and a single-state
// deterministic walk. Neither simulator ever returns an error; an unknown
// input always resolves to a boolean, rejecting being the implicit result
// of the DFA's missing-transition dead state.
package simulate

import (
	"github.com/relex/automaton/dfa"
	"github.com/relex/automaton/internal/closure"
	"github.com/relex/automaton/thompson"
)

// NFA reports whether input is in the language of n. current starts as the
// epsilon-closure of n's start state; each input rune moves to the next
// symbol set and re-closes it. If next is ever empty before the input is
// exhausted, the string is rejected immediately — there is no path
// forward. Both the seed and every post-move set are closed: omitting
// either would silently reject patterns whose accepting path ends on an
// epsilon edge.
func NFA(n *thompson.NFA, input string) bool {
	current := closure.Epsilon(n, []thompson.StateID{n.Start()})

	for _, c := range input {
		if len(current) == 0 {
			return false
		}
		current = closure.Epsilon(n, closure.Move(n, current, c))
	}

	return closure.ContainsFinal(n, current)
}

// DFA reports whether input is in the language of d. Starting at d.Start,
// each input rune consults the current state's transition map; a missing
// transition rejects immediately (the implicit dead state, not an error).
func DFA(d *dfa.DFA, input string) bool {
	state := d.Start

	for _, c := range input {
		state = state.Next(c)
		if state == nil {
			return false
		}
	}

	return state.IsFinal()
}
