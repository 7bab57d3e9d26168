package automaton

import "errors"

// Builder construction errors.
var (
	ErrMissingStartState  = errors.New("no start state specified")
	ErrMissingFinalStates = errors.New("no final states specified")
	ErrUnknownKind        = errors.New("unknown automaton kind")
)

// Builder assembles a Draft automaton. Calls chain; Build reports the first
// structural omission. A Builder is not safe for concurrent use.
type Builder struct {
	kind     Kind
	states   stateSet
	alphabet map[Symbol]struct{}
	start    State
	hasStart bool
	finals   stateSet
	trans    map[transition]stateSet
	epsilon  map[State]stateSet
}

// NewBuilder creates a Builder for an automaton of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{
		kind:     kind,
		states:   make(stateSet),
		alphabet: make(map[Symbol]struct{}),
		finals:   make(stateSet),
		trans:    make(map[transition]stateSet),
		epsilon:  make(map[State]stateSet),
	}
}

// AddStates declares states in the state space.
func (b *Builder) AddStates(states ...State) *Builder {
	b.states.add(states...)
	return b
}

// AddSymbols declares alphabet symbols. Epsilon is reserved and is never
// an alphabet member; it is silently skipped.
func (b *Builder) AddSymbols(symbols ...Symbol) *Builder {
	for _, sym := range symbols {
		if sym == Epsilon {
			continue
		}
		b.alphabet[sym] = struct{}{}
	}
	return b
}

// SetStart sets the initial state. A later call replaces an earlier one.
func (b *Builder) SetStart(s State) *Builder {
	b.start = s
	b.hasStart = true
	return b
}

// AddFinals marks states as accepting.
func (b *Builder) AddFinals(states ...State) *Builder {
	b.finals.add(states...)
	return b
}

// AddTransition maps (from, on) to the given successor states. Successive
// calls for the same pair union their successor sets. Passing Epsilon as
// the symbol records an epsilon transition instead.
func (b *Builder) AddTransition(from State, on Symbol, to ...State) *Builder {
	if on == Epsilon {
		return b.AddEpsilon(from, to...)
	}
	key := transition{From: from, On: on}
	set, ok := b.trans[key]
	if !ok {
		set = make(stateSet)
		b.trans[key] = set
	}
	set.add(to...)
	return b
}

// AddEpsilon records epsilon transitions from a state. Only KindENFA drafts
// validate with epsilon edges present.
func (b *Builder) AddEpsilon(from State, to ...State) *Builder {
	set, ok := b.epsilon[from]
	if !ok {
		set = make(stateSet)
		b.epsilon[from] = set
	}
	set.add(to...)
	return b
}

// Build produces the Draft. It fails if the start state or the final states
// were never specified. The Builder can keep being mutated afterwards; the
// Draft holds its own copy of everything.
func (b *Builder) Build() (*Draft, error) {
	if b.kind > KindENFA {
		return nil, ErrUnknownKind
	}
	if !b.hasStart {
		return nil, ErrMissingStartState
	}
	if len(b.finals) == 0 {
		return nil, ErrMissingFinalStates
	}

	d := &Draft{
		kind:     b.kind,
		states:   make(stateSet, len(b.states)),
		alphabet: make(map[Symbol]struct{}, len(b.alphabet)),
		start:    b.start,
		finals:   make(stateSet, len(b.finals)),
		trans:    make(map[transition]stateSet, len(b.trans)),
		epsilon:  make(map[State]stateSet, len(b.epsilon)),
	}
	for s := range b.states {
		d.states[s] = struct{}{}
	}
	for sym := range b.alphabet {
		d.alphabet[sym] = struct{}{}
	}
	for s := range b.finals {
		d.finals[s] = struct{}{}
	}
	for key, set := range b.trans {
		if len(set) == 0 {
			continue // absent entries mean "no transition"
		}
		cp := make(stateSet, len(set))
		for s := range set {
			cp[s] = struct{}{}
		}
		d.trans[key] = cp
	}
	for from, set := range b.epsilon {
		if len(set) == 0 {
			continue
		}
		cp := make(stateSet, len(set))
		for s := range set {
			cp[s] = struct{}{}
		}
		d.epsilon[from] = cp
	}
	return d, nil
}
