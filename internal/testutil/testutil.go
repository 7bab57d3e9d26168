package testutil

import (
	"testing"

	"automata/internal/automaton"
)

// Symbols converts a string into a symbol sequence, one symbol per rune.
func Symbols(s string) []automaton.Symbol {
	out := make([]automaton.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, automaton.Symbol(r))
	}
	return out
}

// MustBuild builds a draft and fails the test on error.
func MustBuild(tb testing.TB, b *automaton.Builder) *automaton.Draft {
	tb.Helper()
	d, err := b.Build()
	if err != nil {
		tb.Fatalf("Build: %v", err)
	}
	return d
}

// MustValidate validates a draft and fails the test on any fatal finding.
func MustValidate(tb testing.TB, d *automaton.Draft, opts automaton.Options) *automaton.Validated {
	tb.Helper()
	v, err := automaton.Validate(d, opts)
	if err != nil {
		tb.Fatalf("Validate: %v", err)
	}
	return v
}

// ABLoopDFA returns the validated DFA with states {0,1}, alphabet {a,b},
// start 0, final {1}, and transitions (0,a)->1, (1,b)->1. Its language is
// "a" followed by any number of "b".
func ABLoopDFA(tb testing.TB) *automaton.Validated {
	tb.Helper()
	b := automaton.NewBuilder(automaton.KindDFA).
		AddStates(0, 1).
		AddSymbols('a', 'b').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'a', 1).
		AddTransition(1, 'b', 1)
	return MustValidate(tb, MustBuild(tb, b), automaton.DefaultOptions())
}

// DoubleANFA returns the validated NFA with states {0,1,2}, alphabet {a},
// start 0, final {2}, and transitions (0,a)->{0,1}, (1,a)->{2}. Its
// language is two or more "a".
func DoubleANFA(tb testing.TB) *automaton.Validated {
	tb.Helper()
	b := automaton.NewBuilder(automaton.KindNFA).
		AddStates(0, 1, 2).
		AddSymbols('a').
		SetStart(0).
		AddFinals(2).
		AddTransition(0, 'a', 0, 1).
		AddTransition(1, 'a', 2)
	return MustValidate(tb, MustBuild(tb, b), automaton.DefaultOptions())
}

// EpsilonCycleENFA returns a validated ε-NFA whose epsilon edges form a
// cycle: states {0,1,2,3}, alphabet {a}, start 0, final {3}, epsilon
// 0→1, 1→2, 2→0, and transition (2,a)->3. Its language is exactly "a".
func EpsilonCycleENFA(tb testing.TB) *automaton.Validated {
	tb.Helper()
	b := automaton.NewBuilder(automaton.KindENFA).
		AddStates(0, 1, 2, 3).
		AddSymbols('a').
		SetStart(0).
		AddFinals(3).
		AddEpsilon(0, 1).
		AddEpsilon(1, 2).
		AddEpsilon(2, 0).
		AddTransition(2, 'a', 3)
	return MustValidate(tb, MustBuild(tb, b), automaton.DefaultOptions())
}

// ABSplitENFA returns a validated ε-NFA accepting strings of all "a" or
// all "b": an epsilon split from the start into an a-loop branch and a
// b-loop branch. States {0,1,2}, start 0, finals {1,2}.
func ABSplitENFA(tb testing.TB) *automaton.Validated {
	tb.Helper()
	b := automaton.NewBuilder(automaton.KindENFA).
		AddStates(0, 1, 2).
		AddSymbols('a', 'b').
		SetStart(0).
		AddFinals(1, 2).
		AddEpsilon(0, 1, 2).
		AddTransition(1, 'a', 1).
		AddTransition(2, 'b', 2)
	return MustValidate(tb, MustBuild(tb, b), automaton.DefaultOptions())
}
