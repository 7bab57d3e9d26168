package engine

import "automata/internal/automaton"

// Result is the outcome of one run.
type Result struct {
	// Accepted reports whether the input sequence belongs to the
	// automaton's language.
	Accepted bool

	// Final is the run configuration after the last consumed symbol, for
	// diagnostics: one state for a DFA run, the surviving state set for an
	// NFA run. Nil when the run got stuck (DFA) or the configuration
	// emptied out (NFA).
	Final []automaton.State
}
