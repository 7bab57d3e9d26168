package automaton

// Closure returns the epsilon closure of the given states: the fixed point
// of following epsilon edges until no new state is added. An explicit
// worklist with a visited set guarantees termination on cyclic epsilon
// graphs. The result is deduplicated and sorted.
//
// On automata without epsilon transitions the closure is the identity
// (modulo deduplication and ordering), and Closure is idempotent on all
// automata: Closure(Closure(S)) == Closure(S).
func (v *Validated) Closure(states []State) []State {
	seen := make(stateSet, len(states))
	work := make([]State, 0, len(states))
	for _, s := range states {
		if !seen.contains(s) {
			seen.add(s)
			work = append(work, s)
		}
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range v.epsilon[s] {
			if !seen.contains(to) {
				seen.add(to)
				work = append(work, to)
			}
		}
	}
	return seen.sorted()
}
