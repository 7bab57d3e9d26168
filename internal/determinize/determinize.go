// Package determinize converts validated NFAs into equivalent DFAs using
// the subset (powerset) construction.
package determinize

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"automata/internal/automaton"
)

// DefaultMaxStates bounds the number of DFA states the construction may
// discover. The theoretical bound is 2^n for an n-state NFA.
const DefaultMaxStates = 1 << 16

// ErrStateLimitExceeded is returned when subset construction discovers
// more DFA states than Options.MaxStates allows.
var ErrStateLimitExceeded = errors.New("subset construction exceeded state limit")

// Options configures determinization.
type Options struct {
	// MaxStates caps the number of DFA states discovered before the
	// construction aborts. Zero or negative means DefaultMaxStates.
	MaxStates int

	// Logger for construction progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{MaxStates: DefaultMaxStates}
}

// Determinize converts a validated NFA or ε-NFA into an equivalent DFA.
// Each reachable subset of NFA states becomes one DFA state, starting from
// the epsilon closure of the start state; DFA states are numbered in
// discovery order over the sorted alphabet, so the output is reproducible.
// A DFA state is final iff its subset intersects the NFA's final states.
// The result is rebuilt through the Builder and revalidated as a DFA
// before it is returned, so it carries the same invariants as any other
// validated automaton.
//
// A KindDFA input is already deterministic and is returned unchanged.
// Determinizing an NFA whose language is empty (no reachable final state)
// fails with ErrMissingFinalStates from the rebuild step.
func Determinize(nfa *automaton.Validated, opts Options) (*automaton.Validated, error) {
	if nfa.Kind() == automaton.KindDFA {
		return nfa, nil
	}
	if opts.MaxStates <= 0 {
		opts.MaxStates = DefaultMaxStates
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := newConstruction(nfa)

	start := c.closure(c.setOf(nfa.Start()))

	b := automaton.NewBuilder(automaton.KindDFA)
	b.AddSymbols(c.alphabet...)
	b.AddStates(0).SetStart(0)
	if c.accepting(start) {
		b.AddFinals(0)
	}

	ids := map[string]automaton.State{c.key(start): 0}
	queue := []*bitset.BitSet{start}
	queueIDs := []automaton.State{0}

	for len(queue) > 0 {
		subset := queue[0]
		id := queueIDs[0]
		queue = queue[1:]
		queueIDs = queueIDs[1:]

		for _, sym := range c.alphabet {
			next := c.successors(subset, sym)
			if next.None() {
				continue // no entry: the DFA rejects by getting stuck
			}
			next = c.closure(next)
			key := c.key(next)

			nextID, ok := ids[key]
			if !ok {
				if len(ids) >= opts.MaxStates {
					return nil, fmt.Errorf("%w: %d states (max %d)",
						ErrStateLimitExceeded, len(ids)+1, opts.MaxStates)
				}
				nextID = automaton.State(len(ids))
				ids[key] = nextID
				b.AddStates(nextID)
				if c.accepting(next) {
					b.AddFinals(nextID)
				}
				queue = append(queue, next)
				queueIDs = append(queueIDs, nextID)
			}
			b.AddTransition(id, sym, nextID)
		}
	}

	draft, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("assemble determinized automaton: %w", err)
	}
	dfa, err := automaton.Validate(draft, automaton.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("validate determinized automaton: %w", err)
	}

	logger.Debug("determinized automaton",
		"kind", nfa.Kind().String(),
		"nfa_states", len(c.states),
		"dfa_states", len(ids),
	)
	return dfa, nil
}

// construction holds the NFA-side indexes for one determinization pass.
// NFA states map to dense bit positions so subsets can be encoded as
// bitsets with a canonical, order-independent key.
type construction struct {
	nfa      *automaton.Validated
	states   []automaton.State        // bit position -> NFA state
	index    map[automaton.State]uint // NFA state -> bit position
	alphabet []automaton.Symbol
}

func newConstruction(nfa *automaton.Validated) *construction {
	states := nfa.States()
	index := make(map[automaton.State]uint, len(states))
	for i, s := range states {
		index[s] = uint(i)
	}
	return &construction{
		nfa:      nfa,
		states:   states,
		index:    index,
		alphabet: nfa.Alphabet(),
	}
}

func (c *construction) setOf(states ...automaton.State) *bitset.BitSet {
	bs := bitset.New(uint(len(c.states)))
	for _, s := range states {
		bs.Set(c.index[s])
	}
	return bs
}

// closure expands the subset in place with everything reachable over
// epsilon edges and returns it.
func (c *construction) closure(bs *bitset.BitSet) *bitset.BitSet {
	if !c.nfa.HasEpsilon() {
		return bs
	}
	var work []uint
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		work = append(work, i)
	}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range c.nfa.EpsilonFrom(c.states[i]) {
			j := c.index[to]
			if !bs.Test(j) {
				bs.Set(j)
				work = append(work, j)
			}
		}
	}
	return bs
}

// successors is the union of NFA successor sets for the symbol over every
// member of the subset.
func (c *construction) successors(bs *bitset.BitSet, on automaton.Symbol) *bitset.BitSet {
	next := bitset.New(uint(len(c.states)))
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		for _, to := range c.nfa.Next(c.states[i], on) {
			next.Set(c.index[to])
		}
	}
	return next
}

func (c *construction) accepting(bs *bitset.BitSet) bool {
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if c.nfa.IsFinal(c.states[i]) {
			return true
		}
	}
	return false
}

// key is the canonical encoding of a subset: member state IDs in ascending
// order. Canonical keys make "already discovered" lookups deterministic.
func (c *construction) key(bs *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(c.states[i]), 10))
	}
	return sb.String()
}
