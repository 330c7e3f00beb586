// Package automaton wires the regex-to-automaton pipeline together: infix
// regular expression in, Thompson NFA out. The other public operations —
// determinizing that NFA into a DFA and simulating either automaton against
// an input string — live in the dfa and simulate subpackages; this package
// only owns the entry point callers actually reach for (Compile) and the
// one small derived quantity defined purely in terms of the NFA itself
// (Alphabet).
package automaton

import (
	"sort"

	"github.com/relex/automaton/shuntingyard"
	"github.com/relex/automaton/thompson"
)

// Compile translates an infix regular expression into a Thompson NFA: infix
// to postfix via shuntingyard.ToPostfix, then postfix to NFA via
// thompson.Build. An empty infix expression is a parse error (the postfix
// evaluator's working stack never receives an operand to push), not an NFA
// that accepts the empty string — see DESIGN.md for the reasoning.
func Compile(infix string) (*thompson.NFA, error) {
	postfix, err := shuntingyard.ToPostfix(infix)
	if err != nil {
		return nil, err
	}
	return thompson.Build(postfix)
}

// Alphabet returns the set of concrete symbols appearing on any transition
// in n, sorted by code point — the union of non-epsilon symbols a DFA built
// from n would need. Computed once here so every caller of dfa.Convert and
// simulate.NFA/DFA shares one definition of "the alphabet of this pattern"
// instead of re-deriving it.
func Alphabet(n *thompson.NFA) []rune {
	seen := make(map[rune]struct{})
	for id := thompson.StateID(0); int(id) < n.Len(); id++ {
		if s := n.Get(id); s.Kind() == thompson.KindByte {
			sym, _ := s.Byte()
			seen[sym] = struct{}{}
		}
	}

	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
