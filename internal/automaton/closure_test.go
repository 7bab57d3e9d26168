package automaton

import (
	"reflect"
	"testing"
)

func buildEpsilonCycle(t *testing.T) *Validated {
	t.Helper()
	d, err := NewBuilder(KindENFA).
		AddStates(0, 1, 2, 3).
		AddSymbols('a').
		SetStart(0).
		AddFinals(3).
		AddEpsilon(0, 1).
		AddEpsilon(1, 2).
		AddEpsilon(2, 0). // cycle back to the start
		AddTransition(2, 'a', 3).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, err := Validate(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return v
}

func TestClosure_IdentityWithoutEpsilon(t *testing.T) {
	d, err := NewBuilder(KindNFA).
		AddStates(0, 1).
		AddSymbols('a').
		SetStart(0).
		AddFinals(1).
		AddTransition(0, 'a', 1).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, err := Validate(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	got := v.Closure([]State{0})
	if !reflect.DeepEqual(got, []State{0}) {
		t.Errorf("Closure({0}) = %v, want [0]", got)
	}
}

func TestClosure_TerminatesOnCycle(t *testing.T) {
	v := buildEpsilonCycle(t)

	got := v.Closure([]State{0})
	want := []State{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Closure({0}) = %v, want %v", got, want)
	}
}

func TestClosure_Idempotent(t *testing.T) {
	v := buildEpsilonCycle(t)

	inputs := [][]State{
		{0},
		{1},
		{3},
		{0, 3},
		{0, 1, 2, 3},
		{},
	}
	for _, in := range inputs {
		once := v.Closure(in)
		twice := v.Closure(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Closure not idempotent for %v: %v vs %v", in, once, twice)
		}
	}
}

func TestClosure_DedupesInput(t *testing.T) {
	v := buildEpsilonCycle(t)

	got := v.Closure([]State{3, 3, 3})
	if !reflect.DeepEqual(got, []State{3}) {
		t.Errorf("Closure({3,3,3}) = %v, want [3]", got)
	}
}

func TestClosure_EmptySet(t *testing.T) {
	v := buildEpsilonCycle(t)

	if got := v.Closure(nil); len(got) != 0 {
		t.Errorf("Closure(nil) = %v, want empty", got)
	}
}
