package auction

import "github.com/lvlath-sim/dispatchgrid/world"

// Bid is a single priced bundle offer from one agent.
type Bid struct {
	Agent  world.AgentID
	Bundle []world.ItemID // execution order, nearest-insertion
	Cost   int64
}
