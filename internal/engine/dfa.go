package engine

import (
	"errors"
	"fmt"

	"automata/internal/automaton"
)

// ErrKindMismatch is returned when an automaton of the wrong kind is
// handed to an engine.
var ErrKindMismatch = errors.New("automaton kind does not match engine")

// DFA executes deterministic automata.
type DFA struct {
	a *automaton.Validated
}

// NewDFA wraps a validated automaton of KindDFA.
func NewDFA(a *automaton.Validated) (*DFA, error) {
	if a.Kind() != automaton.KindDFA {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrKindMismatch, a.Kind(), automaton.KindDFA)
	}
	return &DFA{a: a}, nil
}

// Automaton returns the underlying validated automaton.
func (d *DFA) Automaton() *automaton.Validated { return d.a }

// Start returns the initial run state.
func (d *DFA) Start() automaton.State { return d.a.Start() }

// Step consumes one symbol. ok is false when no transition exists, meaning
// the run is stuck and rejects regardless of remaining input.
func (d *DFA) Step(s automaton.State, on automaton.Symbol) (automaton.State, bool) {
	return d.a.Step(s, on)
}

// Run folds the input through the transition table: exactly one current
// state, a missing entry rejects immediately without consuming further
// symbols, and the run accepts iff the state after the last symbol is
// final. Total over any finite input.
func (d *DFA) Run(input []automaton.Symbol) Result {
	state := d.a.Start()
	for _, sym := range input {
		next, ok := d.a.Step(state, sym)
		if !ok {
			return Result{} // stuck: a valid reject, not an error
		}
		state = next
	}
	return Result{
		Accepted: d.a.IsFinal(state),
		Final:    []automaton.State{state},
	}
}

// Accepts reports whether the input belongs to the DFA's language.
func (d *DFA) Accepts(input []automaton.Symbol) bool {
	return d.Run(input).Accepted
}
