package automaton

import "sort"

// Options configures validation.
type Options struct {
	// Strict promotes reachability findings (unreachable states, unreachable
	// final states, no reachable final state) from advisory to fatal.
	Strict bool
}

// DefaultOptions returns Options with sensible defaults: reachability
// findings are advisory and attached to the handle as warnings.
func DefaultOptions() Options {
	return Options{}
}

// Validate checks a draft's structural invariants and, on success, returns
// the immutable Validated handle the engines require. Validate is pure: the
// draft is never modified and may be revalidated under different options.
//
// Checks run in order: domain (undeclared states/symbols, epsilon labels
// outside KindENFA), forward reachability from the start state, final-state
// reachability, and the determinism check for KindDFA drafts. Fatal findings
// yield a *Report error carrying every finding; advisory findings ride on
// the handle via Warnings.
func Validate(d *Draft, opts Options) (*Validated, error) {
	fatal := checkDomain(d)

	var advisory []*Error

	// Reachability and determinism are only meaningful over a table whose
	// references all resolve.
	if len(fatal) == 0 {
		live := reachable(d)

		for _, s := range d.states.sorted() {
			if !live.contains(s) {
				advisory = append(advisory, &Error{Kind: ErrUnreachableState, State: s})
			}
		}

		liveFinals := 0
		for _, s := range d.finals.sorted() {
			if live.contains(s) {
				liveFinals++
			} else {
				advisory = append(advisory, &Error{Kind: ErrUnreachableFinalState, State: s})
			}
		}
		if liveFinals == 0 {
			advisory = append(advisory, &Error{Kind: ErrNoFinalStateReachable, State: d.start})
		}

		if d.kind == KindDFA {
			fatal = append(fatal, checkDeterminism(d)...)
		}

		if opts.Strict {
			fatal = append(fatal, advisory...)
			advisory = nil
		}
	}

	if len(fatal) > 0 {
		return nil, &Report{Findings: append(fatal, advisory...)}
	}
	return newValidated(d, advisory), nil
}

// checkDomain verifies that every referenced state and symbol belongs to
// the declared sets, and that epsilon labels only appear on KindENFA drafts.
// Iteration is in sorted key order so findings are reproducible.
func checkDomain(d *Draft) []*Error {
	var errs []*Error

	if !d.states.contains(d.start) {
		errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: d.start})
	}
	for _, s := range d.finals.sorted() {
		if !d.states.contains(s) {
			errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: s})
		}
	}

	for _, key := range sortedTransitionKeys(d.trans) {
		if !d.states.contains(key.From) {
			errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: key.From, Symbol: key.On, OnSymbol: true})
		}
		if _, ok := d.alphabet[key.On]; !ok {
			errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: key.From, Symbol: key.On, OnSymbol: true})
		}
		for _, to := range d.trans[key].sorted() {
			if !d.states.contains(to) {
				errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: to, Symbol: key.On, OnSymbol: true})
			}
		}
	}

	for _, from := range sortedStateKeys(d.epsilon) {
		if d.kind != KindENFA {
			// Epsilon is a reserved non-member of every alphabet.
			errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: from, Symbol: Epsilon, OnSymbol: true})
			continue
		}
		if !d.states.contains(from) {
			errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: from, Symbol: Epsilon, OnSymbol: true})
		}
		for _, to := range d.epsilon[from].sorted() {
			if !d.states.contains(to) {
				errs = append(errs, &Error{Kind: ErrUndeclaredReference, State: to, Symbol: Epsilon, OnSymbol: true})
			}
		}
	}

	return errs
}

// reachable computes the live set: states reachable from the start state
// over symbol and epsilon edges. Explicit worklist, no recursion.
func reachable(d *Draft) stateSet {
	adj := make(map[State][]State, len(d.states))
	for key, set := range d.trans {
		for to := range set {
			adj[key.From] = append(adj[key.From], to)
		}
	}
	for from, set := range d.epsilon {
		for to := range set {
			adj[from] = append(adj[from], to)
		}
	}

	live := make(stateSet)
	live.add(d.start)
	work := []State{d.start}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range adj[s] {
			if !live.contains(to) {
				live.add(to)
				work = append(work, to)
			}
		}
	}
	return live
}

// checkDeterminism flags every (state, symbol) entry with more than one
// successor. Only called for KindDFA drafts.
func checkDeterminism(d *Draft) []*Error {
	var errs []*Error
	for _, key := range sortedTransitionKeys(d.trans) {
		if len(d.trans[key]) > 1 {
			errs = append(errs, &Error{Kind: ErrNonDeterministicTransition, State: key.From, Symbol: key.On, OnSymbol: true})
		}
	}
	return errs
}

func sortedTransitionKeys(m map[transition]stateSet) []transition {
	keys := make([]transition, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].On < keys[j].On
	})
	return keys
}

func sortedStateKeys(m map[State]stateSet) []State {
	keys := make([]State, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
