package engine

import (
	"fmt"

	"automata/internal/automaton"
)

// NFA executes nondeterministic automata, with or without epsilon
// transitions.
type NFA struct {
	a *automaton.Validated
}

// NewNFA wraps a validated automaton of KindNFA or KindENFA.
func NewNFA(a *automaton.Validated) (*NFA, error) {
	if a.Kind() != automaton.KindNFA && a.Kind() != automaton.KindENFA {
		return nil, fmt.Errorf("%w: have %s, want %s or %s",
			ErrKindMismatch, a.Kind(), automaton.KindNFA, automaton.KindENFA)
	}
	return &NFA{a: a}, nil
}

// Automaton returns the underlying validated automaton.
func (n *NFA) Automaton() *automaton.Validated { return n.a }

// Start returns the initial configuration: the epsilon closure of the
// start state.
func (n *NFA) Start() []automaton.State {
	return n.a.Closure([]automaton.State{n.a.Start()})
}

// Step consumes one symbol: the union of successor sets over every state
// in the configuration, epsilon-closed. A state reached on several branches
// counts once. The result is sorted; an empty result means no path
// survives.
func (n *NFA) Step(config []automaton.State, on automaton.Symbol) []automaton.State {
	next := make(map[automaton.State]struct{})
	for _, s := range config {
		for _, to := range n.a.Next(s, on) {
			next[to] = struct{}{}
		}
	}
	if len(next) == 0 {
		return nil
	}
	states := make([]automaton.State, 0, len(next))
	for s := range next {
		states = append(states, s)
	}
	return n.a.Closure(states)
}

// Run simulates every branch at once. The run short-circuits to reject as
// soon as the configuration empties; the verdict is identical to folding
// the remaining symbols over the empty set. Accepts iff the final
// configuration intersects the final states.
func (n *NFA) Run(input []automaton.Symbol) Result {
	config := n.Start()
	for _, sym := range input {
		config = n.Step(config, sym)
		if len(config) == 0 {
			return Result{}
		}
	}
	accepted := false
	for _, s := range config {
		if n.a.IsFinal(s) {
			accepted = true
			break
		}
	}
	return Result{Accepted: accepted, Final: config}
}

// Accepts reports whether the input belongs to the NFA's language.
func (n *NFA) Accepts(input []automaton.Symbol) bool {
	return n.Run(input).Accepted
}
