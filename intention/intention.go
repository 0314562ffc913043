// Package intention defines the sum type of atomic action proposals an
// agent can make for a single tick: Move, Pickup, Deliver. Intentions are
// value objects — equality is structural, not by pointer identity — and
// each carries the id of the agent that proposed it (spec.md §4.2).
package intention

import (
	"errors"
	"fmt"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// ErrInvalidDirection indicates a Move was constructed with a vector other
// than one of the four unit directions.
var ErrInvalidDirection = errors.New("intention: direction must be one of (-1,0),(1,0),(0,-1),(0,1)")

// Direction is a unit movement vector.
type Direction struct {
	DX, DY int
}

var (
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
)

func (d Direction) valid() bool {
	return d == Left || d == Right || d == Up || d == Down
}

// Intention is the sum type implemented by Move, Pickup and Deliver.
type Intention interface {
	// AgentID is the agent that proposed this intention.
	AgentID() world.AgentID
	// isIntention restricts implementers to this package's variants.
	isIntention()
}

// Move proposes stepping one cell in Direction.
type Move struct {
	Agent     world.AgentID
	Direction Direction
}

// NewMove validates dir against the four unit vectors before constructing
// the intention, following this module's constructor-validates convention
// (world.Grid.AddObstacle and friends validate bounds the same way).
func NewMove(agent world.AgentID, dir Direction) (Move, error) {
	if !dir.valid() {
		return Move{}, fmt.Errorf("intention: move by %s: %w", agent, ErrInvalidDirection)
	}
	return Move{Agent: agent, Direction: dir}, nil
}

func (m Move) AgentID() world.AgentID { return m.Agent }
func (Move) isIntention()             {}

// Pickup proposes picking up an item from the pickup station the agent is
// standing on. Item == nil means "any item present".
type Pickup struct {
	Agent world.AgentID
	Item  *world.ItemID
}

func (p Pickup) AgentID() world.AgentID { return p.Agent }
func (Pickup) isIntention()             {}

// Deliver proposes delivering a carried item at the delivery station the
// agent is standing on. Item == nil means "any IN_TRANSIT item".
type Deliver struct {
	Agent world.AgentID
	Item  *world.ItemID
}

func (d Deliver) AgentID() world.AgentID { return d.Agent }
func (Deliver) isIntention()             {}
