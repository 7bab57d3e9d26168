// Package engine executes validated automata over finite input sequences.
//
// Runs are pure: they read the transition table, never mutate it, and
// always terminate with an Accepted or Rejected verdict — never an error.
// Each run owns its private run state, so any number of runs may share one
// validated automaton concurrently.
package engine
