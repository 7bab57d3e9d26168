package automaton

import (
	"errors"
	"fmt"
	"strings"
)

// Validation finding kinds.
var (
	// ErrUndeclaredReference means a transition, start state, or final state
	// references a state or symbol outside the declared sets. Always fatal.
	ErrUndeclaredReference = errors.New("undeclared state or symbol reference")

	// ErrUnreachableState means a declared state cannot be reached from the
	// start state. Advisory unless Options.Strict is set.
	ErrUnreachableState = errors.New("state unreachable from start")

	// ErrNoFinalStateReachable means no final state is reachable: the
	// automaton accepts nothing. Fatal under Options.Strict.
	ErrNoFinalStateReachable = errors.New("no final state reachable from start")

	// ErrUnreachableFinalState means a final state is declared but
	// unreachable. Advisory unless Options.Strict is set.
	ErrUnreachableFinalState = errors.New("final state unreachable from start")

	// ErrNonDeterministicTransition means a (state, symbol) pair maps to
	// more than one successor on a KindDFA draft. Always fatal.
	ErrNonDeterministicTransition = errors.New("multiple successors for state and symbol")
)

// Error is a single validation finding: the kind sentinel plus the
// offending state and, when relevant, symbol.
type Error struct {
	Kind     error
	State    State
	Symbol   Symbol
	OnSymbol bool
}

func (e *Error) Error() string {
	if e.OnSymbol {
		return fmt.Sprintf("%s: state %d on %s", e.Kind, e.State, symbolString(e.Symbol))
	}
	return fmt.Sprintf("%s: state %d", e.Kind, e.State)
}

func (e *Error) Unwrap() error { return e.Kind }

// Report aggregates every finding from one validation pass, fatal and
// advisory alike, so diagnostics consumers see the full picture instead of
// only the first failure.
type Report struct {
	Findings []*Error
}

func (r *Report) Error() string {
	msgs := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the findings to errors.Is and errors.As.
func (r *Report) Unwrap() []error {
	errs := make([]error, len(r.Findings))
	for i, f := range r.Findings {
		errs[i] = f
	}
	return errs
}

func symbolString(s Symbol) string {
	if s == Epsilon {
		return "ε"
	}
	return fmt.Sprintf("symbol %q", rune(s))
}
