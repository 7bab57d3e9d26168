package automaton

import (
	"errors"
	"testing"
)

func TestValidate_UndeclaredTransitionEndpoint(t *testing.T) {
	d, err := NewBuilder(KindNFA).
		AddStates(0, 1).
		AddSymbols('a').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'a', 1).
		AddTransition(1, 'a', 9). // state 9 never declared
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, DefaultOptions())
	if v != nil {
		t.Error("expected no handle for a draft with undeclared references")
	}
	if !errors.Is(err, ErrUndeclaredReference) {
		t.Errorf("Validate error = %v, want ErrUndeclaredReference", err)
	}
}

func TestValidate_UndeclaredSymbol(t *testing.T) {
	d, err := NewBuilder(KindDFA).
		AddStates(0, 1).
		AddSymbols('a').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'z', 1). // 'z' not in alphabet
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, err = Validate(d, DefaultOptions())
	if !errors.Is(err, ErrUndeclaredReference) {
		t.Errorf("Validate error = %v, want ErrUndeclaredReference", err)
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("error %v does not carry an *Error finding", err)
	}
	if !verr.OnSymbol || verr.Symbol != 'z' {
		t.Errorf("finding = %+v, want symbol 'z'", verr)
	}
}

func TestValidate_UndeclaredStartAndFinal(t *testing.T) {
	d, err := NewBuilder(KindNFA).
		AddStates(0).
		AddSymbols('a').
		SetStart(5).
		AddFinals(6).
		AddTransition(0, 'a', 0).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, err = Validate(d, DefaultOptions())
	var report *Report
	if !errors.As(err, &report) {
		t.Fatalf("Validate error = %v, want *Report", err)
	}
	if len(report.Findings) != 2 {
		t.Fatalf("findings = %d, want 2 (start and final)", len(report.Findings))
	}
	for _, f := range report.Findings {
		if !errors.Is(f, ErrUndeclaredReference) {
			t.Errorf("finding %v, want ErrUndeclaredReference", f)
		}
	}
}

func TestValidate_EpsilonOutsideENFA(t *testing.T) {
	for _, kind := range []Kind{KindDFA, KindNFA} {
		d, err := NewBuilder(kind).
			AddStates(0, 1).
			AddSymbols('a').
			SetStart(0).
			AddFinals(1).
			AddTransition(0, 'a', 1).
			AddEpsilon(0, 1).
			Build()
		if err != nil {
			t.Fatalf("%v: Build: %v", kind, err)
		}

		_, err = Validate(d, DefaultOptions())
		if !errors.Is(err, ErrUndeclaredReference) {
			t.Errorf("%v: Validate error = %v, want ErrUndeclaredReference", kind, err)
		}
	}
}

// Scenario: state 3 is declared but has no incoming path from the start.
func TestValidate_UnreachableStateIsAdvisory(t *testing.T) {
	d, err := NewBuilder(KindDFA).
		AddStates(0, 1, 3).
		AddSymbols('a', 'b').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'a', 1).
		AddTransition(1, 'b', 1).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	warnings := v.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if !errors.Is(warnings[0], ErrUnreachableState) || warnings[0].State != 3 {
		t.Errorf("warning = %v, want ErrUnreachableState for state 3", warnings[0])
	}
}

func TestValidate_StrictPromotesUnreachableState(t *testing.T) {
	d, err := NewBuilder(KindDFA).
		AddStates(0, 1, 3).
		AddSymbols('a').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'a', 1).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, Options{Strict: true})
	if v != nil {
		t.Error("expected no handle under strict validation")
	}
	if !errors.Is(err, ErrUnreachableState) {
		t.Errorf("Validate error = %v, want ErrUnreachableState", err)
	}
}

// Scenario: the only final state has no incoming path from the start.
func TestValidate_NoFinalStateReachable(t *testing.T) {
	d, err := NewBuilder(KindDFA).
		AddStates(0, 1, 2).
		AddSymbols('a').
		SetStart(0).
		AddFinals(2).
		AddTransition(0, 'a', 1).
		AddTransition(1, 'a', 0).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	var sawNoFinal, sawUnreachableFinal bool
	for _, w := range v.Warnings() {
		if errors.Is(w, ErrNoFinalStateReachable) {
			sawNoFinal = true
		}
		if errors.Is(w, ErrUnreachableFinalState) && w.State == 2 {
			sawUnreachableFinal = true
		}
	}
	if !sawNoFinal {
		t.Error("missing ErrNoFinalStateReachable warning")
	}
	if !sawUnreachableFinal {
		t.Error("missing ErrUnreachableFinalState warning for state 2")
	}

	if _, err := Validate(d, Options{Strict: true}); !errors.Is(err, ErrNoFinalStateReachable) {
		t.Errorf("strict Validate error = %v, want ErrNoFinalStateReachable", err)
	}
}

func TestValidate_SomeFinalStatesUnreachable(t *testing.T) {
	d, err := NewBuilder(KindNFA).
		AddStates(0, 1, 2).
		AddSymbols('a').
		SetStart(0).
		AddFinals(1, 2). // 1 reachable, 2 is not
		AddTransition(0, 'a', 1).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, w := range v.Warnings() {
		if errors.Is(w, ErrNoFinalStateReachable) {
			t.Error("ErrNoFinalStateReachable reported although final state 1 is live")
		}
	}

	found := false
	for _, w := range v.Warnings() {
		if errors.Is(w, ErrUnreachableFinalState) && w.State == 2 {
			found = true
		}
	}
	if !found {
		t.Error("missing ErrUnreachableFinalState warning for state 2")
	}
}

func TestValidate_NonDeterministicTransition(t *testing.T) {
	build := func(kind Kind) *Draft {
		d, err := NewBuilder(kind).
			AddStates(0, 1, 2).
			AddSymbols('a').
			SetStart(0).
			AddFinals(2).
			AddTransition(0, 'a', 1, 2). // two successors
			AddTransition(1, 'a', 2).
			Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		return d
	}

	// As a DFA the split transition is fatal.
	_, err := Validate(build(KindDFA), DefaultOptions())
	if !errors.Is(err, ErrNonDeterministicTransition) {
		t.Errorf("DFA Validate error = %v, want ErrNonDeterministicTransition", err)
	}

	// The identical table is a perfectly fine NFA.
	if _, err := Validate(build(KindNFA), DefaultOptions()); err != nil {
		t.Errorf("NFA Validate error = %v, want nil", err)
	}
}

func TestValidate_EpsilonEdgesCountForReachability(t *testing.T) {
	d, err := NewBuilder(KindENFA).
		AddStates(0, 1, 2).
		AddSymbols('a').
		SetStart(0).
		AddFinals(2).
		AddEpsilon(0, 1).
		AddTransition(1, 'a', 2).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	v, err := Validate(d, Options{Strict: true})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(v.Warnings()) != 0 {
		t.Errorf("warnings = %v, want none (all states live via epsilon)", v.Warnings())
	}
}

func TestValidate_ReportListsEveryFinding(t *testing.T) {
	d, err := NewBuilder(KindDFA).
		AddStates(0).
		AddSymbols('a').
		SetStart(0).
		AddFinals(0).
		AddTransition(0, 'a', 8).
		AddTransition(0, 'x', 0).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, err = Validate(d, DefaultOptions())
	var report *Report
	if !errors.As(err, &report) {
		t.Fatalf("Validate error = %v, want *Report", err)
	}
	if len(report.Findings) < 2 {
		t.Errorf("findings = %d, want at least 2 (undeclared state and symbol)", len(report.Findings))
	}
}
