package engine

import (
	"math/rand"

	"github.com/lvlath-sim/dispatchgrid/broker"
	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/itemfactory"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// Proposer is anything that can propose one intention per tick on an
// agent's behalf. *reactive.Agent is the only production implementation;
// Engine depends on the interface, not the concrete type, so tests can
// substitute a fixed-intention stub (this module's accept-interfaces
// convention, matching core.View over core.Graph).
type Proposer interface {
	AgentID() world.AgentID
	MakeIntention(g *world.Grid, hasBroker bool) (intention.Intention, error)
}

// Option configures an Engine at construction, following this module's
// functional-option convention (core.GraphOption, dijkstra.Option).
type Option func(*Engine)

// WithSinglePass selects the single-pass tick contract (apply once, drop
// inconsistent intentions for the tick) instead of the default fixed-point
// loop (spec.md §4.7 Phase 7, §9 Open Question (a)).
func WithSinglePass() Option {
	return func(e *Engine) { e.singlePass = true }
}

// Engine drives the simulation one tick at a time.
type Engine struct {
	Grid    *world.Grid
	Factory itemfactory.Factory // may be nil: no item generation
	Broker  *broker.Broker      // may be nil: reactive-only run, no auction

	// Agents is every agent's intention proposer, in fleet order.
	// Auction-mode agents still propose intentions through the reactive
	// policy (spec.md §4.5: "in addition to the reactive policy") for
	// items the Broker has already assigned them; with a Broker present,
	// an agent holding nothing this tick proposes nothing, rather than
	// falling back to the no-broker wildcard pickup (spec.md §4.4 rule 5).
	Agents []Proposer

	RNG *rand.Rand

	singlePass bool
}

// New constructs an Engine. rng must be non-nil; it is the single
// pseudo-random source spec.md §5 requires for reproducibility.
func New(g *world.Grid, factory itemfactory.Factory, brk *broker.Broker, agents []Proposer, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{Grid: g, Factory: factory, Broker: brk, Agents: agents, RNG: rng}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tick runs one full tick: generate, assign, propose/validate/arbitrate/
// enact to a fixed point (or once, under WithSinglePass), then advances the
// clock (spec.md §4.7).
func (e *Engine) Tick() error {
	if e.Factory != nil {
		if err := e.Factory.AddItems(e.Grid, e.Grid.Tick, e.RNG); err != nil {
			return err
		}
	}
	if e.Broker != nil {
		if err := e.Broker.Run(e.Grid); err != nil {
			return err
		}
	}
	if err := e.processIntentions(); err != nil {
		return err
	}
	e.Grid.Tick++
	return nil
}

func (e *Engine) processIntentions() error {
	pending := make(map[world.AgentID]bool, len(e.Agents))
	for _, ag := range e.Agents {
		pending[ag.AgentID()] = true
	}

	maxIter := len(e.Agents)
	if maxIter == 0 {
		return nil
	}
	for iter := 0; iter < maxIter; iter++ {
		if len(pending) == 0 {
			return nil
		}

		var proposed []intention.Intention
		for _, ag := range e.Agents {
			if !pending[ag.AgentID()] {
				continue
			}
			in, err := ag.MakeIntention(e.Grid, e.Broker != nil)
			if err != nil {
				return err
			}
			if in == nil {
				delete(pending, ag.AgentID()) // nothing to do; won't self-resolve by retrying
				continue
			}
			proposed = append(proposed, in)
		}
		if len(proposed) == 0 {
			return nil
		}

		if err := validateIllegal(e.Grid, proposed); err != nil {
			return err
		}
		consistent, inconsistent := arbitrate(e.Grid, proposed, e.RNG)
		if err := enact(e.Grid, consistent, e.Grid.Tick); err != nil {
			return err
		}
		if e.singlePass {
			return nil
		}

		pending = make(map[world.AgentID]bool, len(inconsistent))
		for _, in := range inconsistent {
			pending[in.AgentID()] = true
		}
	}
	return nil
}
