package thompson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicShape(t *testing.T) {
	b := NewBuilder()
	f := b.Atomic('a')

	start := b.states[f.Start]
	require.Equal(t, KindByte, start.Kind())
	sym, next := start.Byte()
	assert.Equal(t, 'a', sym)
	assert.Equal(t, f.End, next)

	end := b.states[f.End]
	assert.Equal(t, KindMatch, end.Kind())
}

func TestConcatRetargetsFirstEnd(t *testing.T) {
	b := NewBuilder()
	a := b.Atomic('a')
	c := b.Atomic('b')
	f := b.Concat(a, c)

	assert.Equal(t, a.Start, f.Start)
	assert.Equal(t, c.End, f.End)

	// a.End is no longer a sink: it now points at c.Start.
	retargeted := b.states[a.End]
	require.Equal(t, KindEpsilon, retargeted.Kind())
	assert.Equal(t, c.Start, retargeted.Epsilon())
}

func TestUnionSplitsFromNewStart(t *testing.T) {
	b := NewBuilder()
	a := b.Atomic('a')
	c := b.Atomic('b')
	f := b.Union(a, c)

	start := b.states[f.Start]
	require.Equal(t, KindSplit, start.Kind())
	l, r := start.Split()
	assert.Equal(t, a.Start, l)
	assert.Equal(t, c.Start, r)

	for _, end := range []StateID{a.End, c.End} {
		retargeted := b.states[end]
		require.Equal(t, KindEpsilon, retargeted.Kind())
		assert.Equal(t, f.End, retargeted.Epsilon())
	}
}

func TestStarLoopsBack(t *testing.T) {
	b := NewBuilder()
	a := b.Atomic('a')
	f := b.Star(a)

	start := b.states[f.Start]
	require.Equal(t, KindSplit, start.Kind())
	l, r := start.Split()
	assert.ElementsMatch(t, []StateID{a.Start, f.End}, []StateID{l, r})

	end := b.states[a.End]
	require.Equal(t, KindSplit, end.Kind())
	l, r = end.Split()
	assert.ElementsMatch(t, []StateID{a.Start, f.End}, []StateID{l, r})
}

func TestPlusForcesOneTraversal(t *testing.T) {
	b := NewBuilder()
	a := b.Atomic('a')
	f := b.Plus(a)

	start := b.states[f.Start]
	require.Equal(t, KindEpsilon, start.Kind())
	assert.Equal(t, a.Start, start.Epsilon())

	end := b.states[a.End]
	require.Equal(t, KindSplit, end.Kind())
	l, r := end.Split()
	assert.ElementsMatch(t, []StateID{a.Start, f.End}, []StateID{l, r})
}

func TestOptionalSkipsOrEnters(t *testing.T) {
	b := NewBuilder()
	a := b.Atomic('a')
	f := b.Optional(a)

	start := b.states[f.Start]
	require.Equal(t, KindSplit, start.Kind())
	l, r := start.Split()
	assert.ElementsMatch(t, []StateID{a.Start, f.End}, []StateID{l, r})

	end := b.states[a.End]
	require.Equal(t, KindEpsilon, end.Kind())
	assert.Equal(t, f.End, end.Epsilon())
}

func TestFinishProducesUsableNFA(t *testing.T) {
	b := NewBuilder()
	f := b.Atomic('x')
	n := b.Finish(f)

	assert.Equal(t, f.Start, n.Start())
	assert.Equal(t, f.End, n.End())
	assert.Equal(t, 2, n.Len())
}
