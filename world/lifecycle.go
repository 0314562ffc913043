package world

import "fmt"

// NewItem creates a new item awaiting pickup at the given source station and
// appends it to that station's queue. It is the only way items enter a run.
// Complexity: O(1) amortized (queue append), plus an index insert.
func (g *Grid) NewItem(tick int, source, destination StationID) (*Item, error) {
	if _, ok := g.pickupIndex[source]; !ok {
		return nil, fmt.Errorf("world: source station %d: %w", source, ErrStationNotFound)
	}
	if _, ok := g.deliverIndex[destination]; !ok {
		return nil, fmt.Errorf("world: destination station %d: %w", destination, ErrStationNotFound)
	}
	it := &Item{
		ID:          newItemID(),
		CreatedTick: tick,
		Source:      source,
		Destination: destination,
		Status:      AwaitingPickup,
	}
	g.pickupIndex[source].Queue = append(g.pickupIndex[source].Queue, it)
	g.itemIndex[it.ID] = it
	return it, nil
}

// AssignBundle awards an ordered bundle of AWAITING_PICKUP items to an
// agent, removing them from their pickup stations' queues, setting
// Priority = index+1, AssignedAgent, status ASSIGNED_TO_AGENT, and charging
// cost to the agent's TotalCost and History (spec.md §4.6 step 4).
//
// Every item in bundle must currently be AWAITING_PICKUP and the agent must
// have enough remaining capacity, or the assignment is rejected atomically.
func (g *Grid) AssignBundle(agentID AgentID, bundle []ItemID, cost int64) error {
	agent, ok := g.AgentByID(agentID)
	if !ok {
		return fmt.Errorf("world: assign bundle: %w", ErrAgentNotFound)
	}
	if len(bundle) > agent.RemainingCapacity() {
		return fmt.Errorf("world: assign bundle of %d to agent %s: %w", len(bundle), agentID, ErrCapacityExceeded)
	}
	items := make([]*Item, 0, len(bundle))
	for _, id := range bundle {
		it, ok := g.ItemByID(id)
		if !ok {
			return fmt.Errorf("world: assign bundle: item %s: %w", id, ErrItemNotFound)
		}
		if it.Status != AwaitingPickup {
			return fmt.Errorf("world: assign bundle: item %s is not AWAITING_PICKUP", id)
		}
		items = append(items, it)
	}

	for i, it := range items {
		g.removeFromPickupQueue(it)
		it.Priority = i + 1
		a := agentID
		it.AssignedAgent = &a
		it.Status = AssignedToAgent
		agent.Items = append(agent.Items, it)
	}
	agent.TotalCost += cost
	agent.History = append(agent.History, WinningBid{Items: bundle, Cost: cost})
	return nil
}

func (g *Grid) removeFromPickupQueue(it *Item) {
	s, ok := g.pickupIndex[it.Source]
	if !ok {
		return
	}
	for i, queued := range s.Queue {
		if queued.ID == it.ID {
			s.Queue = append(s.Queue[:i], s.Queue[i+1:]...)
			return
		}
	}
}

// MoveAgent relocates an agent to dest. Validated by the engine beforehand
// (bounds, obstacles); this method only performs the relocation.
func (g *Grid) MoveAgent(agentID AgentID, dest Position) error {
	agent, ok := g.AgentByID(agentID)
	if !ok {
		return fmt.Errorf("world: move agent: %w", ErrAgentNotFound)
	}
	agent.Position = dest
	return nil
}

// PickupItem enacts a Pickup intention. Two items can satisfy it: a
// concretely named item the agent already holds as ASSIGNED_TO_AGENT (the
// broker put it there at auction time, before the agent ever reached the
// station), or an item still sitting in the pickup station's queue
// (AWAITING_PICKUP — the reactive, no-broker path). If itemID is nil, any
// queued item is taken (wildcard pickup). Either way the item transitions
// to IN_TRANSIT and PickupTick is stamped.
func (g *Grid) PickupItem(agentID AgentID, itemID *ItemID, tick int) (*Item, error) {
	agent, ok := g.AgentByID(agentID)
	if !ok {
		return nil, fmt.Errorf("world: pickup: %w", ErrAgentNotFound)
	}
	station, ok := g.PickupStationAt(agent.Position)
	if !ok {
		return nil, fmt.Errorf("world: pickup by agent %s: %w", agentID, ErrPickupOffStation)
	}

	if itemID != nil {
		for _, it := range agent.Items {
			if it.ID == *itemID && it.Status == AssignedToAgent {
				return g.finishPickup(agent, it, tick), nil
			}
		}
	}

	if len(station.Queue) == 0 {
		return nil, fmt.Errorf("world: pickup by agent %s: %w", agentID, ErrStationEmpty)
	}
	idx := 0
	if itemID != nil {
		idx = -1
		for i, it := range station.Queue {
			if it.ID == *itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("world: pickup: item %s not in station %d: %w", *itemID, station.ID, ErrItemNotFound)
		}
	}

	it := station.Queue[idx]
	station.Queue = append(station.Queue[:idx], station.Queue[idx+1:]...)
	agent.Items = append(agent.Items, it)
	return g.finishPickup(agent, it, tick), nil
}

// finishPickup stamps the IN_TRANSIT transition shared by both pickup paths.
func (g *Grid) finishPickup(agent *Agent, it *Item, tick int) *Item {
	t := tick
	it.PickupTick = &t
	it.Status = InTransit
	a := agent.ID
	it.AssignedAgent = &a
	return it
}

// DeliverItem enacts a Deliver intention: it finds a carried (IN_TRANSIT)
// item on the agent (by id, or any if itemID is nil) and marks it DELIVERED.
// The item is not added to the destination station — delivered items are
// only retained on the agent's list for analytics.
func (g *Grid) DeliverItem(agentID AgentID, itemID *ItemID, tick int) (*Item, error) {
	agent, ok := g.AgentByID(agentID)
	if !ok {
		return nil, fmt.Errorf("world: deliver: %w", ErrAgentNotFound)
	}
	if _, ok := g.DeliveryStationAt(agent.Position); !ok {
		return nil, fmt.Errorf("world: deliver by agent %s: %w", agentID, ErrDeliverOffStation)
	}

	var it *Item
	for _, candidate := range agent.Items {
		if candidate.Status != InTransit {
			continue
		}
		if itemID != nil && candidate.ID != *itemID {
			continue
		}
		it = candidate
		break
	}
	if it == nil {
		return nil, fmt.Errorf("world: deliver by agent %s: %w", agentID, ErrNoItemCarried)
	}

	t := tick
	it.DeliveredTick = &t
	it.Status = Delivered
	return it, nil
}
