package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relex/automaton/dfa"
	"github.com/relex/automaton/shuntingyard"
	"github.com/relex/automaton/thompson"
)

func build(t *testing.T, infix string) (*thompson.NFA, []rune) {
	t.Helper()
	postfix, err := shuntingyard.ToPostfix(infix)
	require.NoError(t, err)
	n, err := thompson.Build(postfix)
	require.NoError(t, err)

	seen := make(map[rune]struct{})
	for id := thompson.StateID(0); int(id) < n.Len(); id++ {
		if s := n.Get(id); s.Kind() == thompson.KindByte {
			sym, _ := s.Byte()
			seen[sym] = struct{}{}
		}
	}
	var sigma []rune
	for r := range seen {
		sigma = append(sigma, r)
	}
	return n, sigma
}

func TestNFAAndDFAAgree(t *testing.T) {
	cases := []struct {
		regex, input string
		accept       bool
	}{
		{"(a|b)*(c)+", "ababababac", true},
		{"(a|b)*(c)+", "abc", true},
		{"(a|b)*(c)+", "ab", false},
		{"(a|b)*(c)+", "ccc", true},
		{"(a|b)*(c)+", "", false},
		{"(a*)*", "aaaa", true},
		{"(a*)*", "b", false},
		{"a?b", "b", true},
		{"a?b", "ab", true},
		{"a?b", "aab", false},
	}

	for _, tc := range cases {
		t.Run(tc.regex+"/"+tc.input, func(t *testing.T) {
			n, sigma := build(t, tc.regex)

			gotNFA := NFA(n, tc.input)
			assert.Equal(t, tc.accept, gotNFA, "NFA simulation")

			d, err := dfa.Convert(n, sigma)
			require.NoError(t, err)

			gotDFA := DFA(d, tc.input)
			assert.Equal(t, tc.accept, gotDFA, "DFA simulation")

			// Property 1: language equivalence between the two simulators.
			assert.Equal(t, gotNFA, gotDFA)
		})
	}
}

func TestDFARejectsUnknownSymbolWithoutError(t *testing.T) {
	n, sigma := build(t, "a")
	d, err := dfa.Convert(n, sigma)
	require.NoError(t, err)

	assert.False(t, DFA(d, "z"))
}
