package thompson

// Builder constructs an NFA incrementally, one Thompson combinator at a
// time, into its own arena. Two Builders never share state: the id counter
// that the original design kept process-global lives here instead, scoped
// to one compilation.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// Fragment is a two-terminal piece of NFA under construction: a start and an
// end state id into the owning Builder's arena. The end state has no
// outgoing edges until some outer combinator splices another fragment after
// it, at which point it is retargeted in place (see concat/union/star/
// plus/optional below) and stops being anyone's "end".
type Fragment struct {
	Start StateID
	End   StateID
}

func (b *Builder) addMatch() StateID {
	id := stateIndex(len(b.states))
	b.states = append(b.states, State{id: id, kind: KindMatch})
	return id
}

func (b *Builder) addByte(sym rune, next StateID) StateID {
	id := stateIndex(len(b.states))
	b.states = append(b.states, State{id: id, kind: KindByte, sym: sym, next: next})
	return id
}

func (b *Builder) addEpsilon(next StateID) StateID {
	id := stateIndex(len(b.states))
	b.states = append(b.states, State{id: id, kind: KindEpsilon, next: next})
	return id
}

func (b *Builder) addSplit(left, right StateID) StateID {
	id := stateIndex(len(b.states))
	b.states = append(b.states, State{id: id, kind: KindSplit, left: left, right: right})
	return id
}

// retargetEpsilon turns an existing (necessarily KindMatch, sink) state into
// a KindEpsilon pass-through. This is the flagless stand-in for "clear
// isFinal and add an outgoing edge" in the original design: the state keeps
// its id and every existing reference to it, but it is no longer a dead end.
func (b *Builder) retargetEpsilon(id, next StateID) {
	b.states[id] = State{id: id, kind: KindEpsilon, next: next}
}

// retargetSplit is retargetEpsilon's two-edge counterpart, used when an
// inner fragment's end becomes a loop-back/exit junction (star, plus).
func (b *Builder) retargetSplit(id, left, right StateID) {
	b.states[id] = State{id: id, kind: KindSplit, left: left, right: right}
}

// Atomic builds the fragment for a single alphabet symbol: new start s, new
// end e, and a transition s --sym--> e.
func (b *Builder) Atomic(sym rune) Fragment {
	end := b.addMatch()
	start := b.addByte(sym, end)
	return Fragment{Start: start, End: end}
}

// Concat sequences a then c: an epsilon edge from a.End to c.Start, reusing
// a.Start and c.End directly as the result's terminals (no new states are
// allocated).
func (b *Builder) Concat(a, c Fragment) Fragment {
	b.retargetEpsilon(a.End, c.Start)
	return Fragment{Start: a.Start, End: c.End}
}

// Union builds a|c: a new start splits to both branches' starts, a new end
// is reached from both branches' ends by epsilon edges.
func (b *Builder) Union(a, c Fragment) Fragment {
	end := b.addMatch()
	start := b.addSplit(a.Start, c.Start)
	b.retargetEpsilon(a.End, end)
	b.retargetEpsilon(c.End, end)
	return Fragment{Start: start, End: end}
}

// Star builds a*: a new start splits between entering a and skipping
// straight to the new end; a's end becomes a split back into a or out to
// the new end.
func (b *Builder) Star(a Fragment) Fragment {
	end := b.addMatch()
	start := b.addSplit(a.Start, end)
	b.retargetSplit(a.End, a.Start, end)
	return Fragment{Start: start, End: end}
}

// Plus builds a+: a single epsilon edge forces one traversal of a before
// a's end can loop back into a or exit to the new end.
func (b *Builder) Plus(a Fragment) Fragment {
	end := b.addMatch()
	start := b.addEpsilon(a.Start)
	b.retargetSplit(a.End, a.Start, end)
	return Fragment{Start: start, End: end}
}

// Optional builds a?: a new start splits between entering a and skipping to
// the new end; a's end becomes a plain epsilon edge out to the new end.
func (b *Builder) Optional(a Fragment) Fragment {
	end := b.addMatch()
	start := b.addSplit(a.Start, end)
	b.retargetEpsilon(a.End, end)
	return Fragment{Start: start, End: end}
}

// Finish freezes the Builder's arena into an NFA rooted at frag. The
// Builder must not be used to allocate further states afterward; the
// returned NFA owns a copy-free view of the same slice.
func (b *Builder) Finish(frag Fragment) *NFA {
	return &NFA{states: b.states, start: frag.Start, end: frag.End}
}
