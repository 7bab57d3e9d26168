package automaton

import "sort"

// Validated is an automaton that has passed Validate. Values of this type
// are produced only by Validate, so holding one is proof that every
// referenced state and symbol is declared and that KindDFA tables are
// deterministic.
//
// A Validated is immutable. Any number of simulations may read it
// concurrently; each run owns its private run state.
type Validated struct {
	kind     Kind
	start    State
	states   []State
	alphabet []Symbol
	finals   stateSet
	trans    map[transition][]State
	epsilon  map[State][]State
	warnings []*Error
}

// newValidated deep-copies the draft so later mutation of the builder that
// produced it cannot reach the handle.
func newValidated(d *Draft, warnings []*Error) *Validated {
	v := &Validated{
		kind:     d.kind,
		start:    d.start,
		states:   d.states.sorted(),
		alphabet: make([]Symbol, 0, len(d.alphabet)),
		finals:   make(stateSet, len(d.finals)),
		trans:    make(map[transition][]State, len(d.trans)),
		epsilon:  make(map[State][]State, len(d.epsilon)),
		warnings: warnings,
	}
	for sym := range d.alphabet {
		v.alphabet = append(v.alphabet, sym)
	}
	sort.Slice(v.alphabet, func(i, j int) bool { return v.alphabet[i] < v.alphabet[j] })
	for s := range d.finals {
		v.finals[s] = struct{}{}
	}
	for key, set := range d.trans {
		v.trans[key] = set.sorted()
	}
	for from, set := range d.epsilon {
		v.epsilon[from] = set.sorted()
	}
	return v
}

// Kind returns the automaton kind.
func (v *Validated) Kind() Kind { return v.kind }

// Start returns the initial state.
func (v *Validated) Start() State { return v.start }

// States returns the declared state space in ascending order.
func (v *Validated) States() []State {
	out := make([]State, len(v.states))
	copy(out, v.states)
	return out
}

// Alphabet returns the declared alphabet in ascending order.
func (v *Validated) Alphabet() []Symbol {
	out := make([]Symbol, len(v.alphabet))
	copy(out, v.alphabet)
	return out
}

// Finals returns the final states in ascending order.
func (v *Validated) Finals() []State {
	return v.finals.sorted()
}

// IsFinal reports whether s is an accepting state.
func (v *Validated) IsFinal(s State) bool {
	return v.finals.contains(s)
}

// Next returns the successor states for (from, on) in ascending order, or
// nil when no transition exists. The returned slice must not be modified.
func (v *Validated) Next(from State, on Symbol) []State {
	return v.trans[transition{From: from, On: on}]
}

// Step is the deterministic lookup: the unique successor for (from, on).
// ok is false when no transition exists, meaning the run is stuck. Step is
// only meaningful on KindDFA automata, where validation guarantees each
// entry has exactly one successor.
func (v *Validated) Step(from State, on Symbol) (State, bool) {
	succ := v.trans[transition{From: from, On: on}]
	if len(succ) == 0 {
		return 0, false
	}
	return succ[0], true
}

// EpsilonFrom returns the one-step epsilon successors of s in ascending
// order, or nil. The returned slice must not be modified.
func (v *Validated) EpsilonFrom(s State) []State {
	return v.epsilon[s]
}

// HasEpsilon reports whether any epsilon transitions are declared.
func (v *Validated) HasEpsilon() bool {
	return len(v.epsilon) > 0
}

// Warnings returns the advisory findings (unreachable states, unreachable
// final states) recorded when the automaton was validated.
func (v *Validated) Warnings() []*Error {
	out := make([]*Error, len(v.warnings))
	copy(out, v.warnings)
	return out
}
