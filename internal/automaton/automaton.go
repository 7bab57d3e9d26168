// Package automaton defines the finite-automaton data model: alphabets,
// state spaces, and transition tables, plus the validation step that turns
// a draft automaton into a runnable one.
//
// A Draft is assembled through a Builder and is inert until it passes
// Validate. Engines accept only the Validated handle produced by Validate,
// so a malformed table can never be simulated.
package automaton

import "sort"

// Symbol is an element of a finite, caller-declared alphabet.
type Symbol rune

// Epsilon is the reserved empty-input transition label. It is never a
// member of any alphabet and is only a legal label on KindENFA drafts.
const Epsilon Symbol = -1

// State identifies a state in the declared state space.
type State uint32

// Kind selects which execution semantics a draft is validated against.
type Kind uint8

const (
	// KindDFA requires at most one successor per (state, symbol).
	KindDFA Kind = iota
	// KindNFA allows any number of successors per (state, symbol).
	KindNFA
	// KindENFA is an NFA that additionally allows epsilon transitions.
	KindENFA
)

func (k Kind) String() string {
	switch k {
	case KindDFA:
		return "DFA"
	case KindNFA:
		return "NFA"
	case KindENFA:
		return "ε-NFA"
	default:
		return "unknown"
	}
}

// transition keys the transition table by source state and input symbol.
type transition struct {
	From State
	On   Symbol
}

type stateSet map[State]struct{}

func (s stateSet) add(states ...State) {
	for _, st := range states {
		s[st] = struct{}{}
	}
}

func (s stateSet) contains(st State) bool {
	_, ok := s[st]
	return ok
}

// sorted returns the members in ascending order.
func (s stateSet) sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Draft is an unvalidated automaton. Drafts are produced by Builder.Build
// and become runnable only through Validate.
//
// A Draft must not be shared across goroutines until it has been validated.
type Draft struct {
	kind     Kind
	states   stateSet
	alphabet map[Symbol]struct{}
	start    State
	finals   stateSet
	trans    map[transition]stateSet
	epsilon  map[State]stateSet
}

// Kind returns the automaton kind the draft will be validated as.
func (d *Draft) Kind() Kind { return d.kind }
