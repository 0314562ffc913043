package world

import "github.com/google/uuid"

// Position is an integer board coordinate. The zero value is the origin.
type Position struct {
	X, Y int
}

// Add returns the position offset by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ItemID uniquely identifies an Item for the lifetime of a run.
type ItemID string

// AgentID uniquely identifies an Agent for the lifetime of a run.
type AgentID string

// StationID is a 1-based index into a station list (pickup stations and
// delivery stations are indexed independently, matching the config format's
// "pickup_<n>" / "delivery_<n>" addressing).
type StationID int

// ObjectKind tags the variant of a BoardObject. Matched instead of using an
// open type hierarchy — the only type-conditional sites in this module are
// cell rendering, obstacle checks and station lookups.
type ObjectKind int

const (
	KindObstacle ObjectKind = iota
	KindPickupStation
	KindDeliveryStation
	KindAgent
)

// BoardObject is the sum type over everything that can occupy a cell.
type BoardObject interface {
	Kind() ObjectKind
	Pos() Position
}

// ItemStatus is the lifecycle stage of an Item. It only ever advances
// forward: AwaitingPickup -> AssignedToAgent -> InTransit -> Delivered.
type ItemStatus int

const (
	AwaitingPickup ItemStatus = iota
	AssignedToAgent
	InTransit
	Delivered
)

// String renders the status the way analytics and logs print it.
func (s ItemStatus) String() string {
	switch s {
	case AwaitingPickup:
		return "AWAITING_PICKUP"
	case AssignedToAgent:
		return "ASSIGNED_TO_AGENT"
	case InTransit:
		return "IN_TRANSIT"
	case Delivered:
		return "DELIVERED"
	default:
		return "UNKNOWN"
	}
}

// Item is a unit of cargo moving from a PickupStation to a DeliveryStation.
type Item struct {
	ID            ItemID
	CreatedTick   int
	PickupTick    *int
	DeliveredTick *int
	Source        StationID // pickup station id
	Destination   StationID // delivery station id
	AssignedAgent *AgentID
	Priority      int // 1-based position within the owning agent's bundle; 0 = unset
	Status        ItemStatus
}

// WinningBid is the record an Agent keeps of an auction round it won.
// Cost is the bid's priced routing cost (see the auction package); Items is
// the bundle in the execution order the agent committed to.
type WinningBid struct {
	Items []ItemID
	Cost  int64
}

// Agent is a courier: it carries items from pickup stations to delivery
// stations, bounded by Capacity simultaneous (ASSIGNED_TO_AGENT | IN_TRANSIT)
// items.
type Agent struct {
	ID         AgentID
	Position   Position
	Capacity   int
	Items      []*Item
	TotalCost  int64
	History    []WinningBid
	Selfish    bool // never set by this module; the --selfishness flag is stored on auction.Agent
}

func (a *Agent) Kind() ObjectKind { return KindAgent }
func (a *Agent) Pos() Position    { return a.Position }

// InTransitItems returns the agent's currently carried (IN_TRANSIT) items,
// in bundle priority order.
func (a *Agent) InTransitItems() []*Item {
	return a.itemsWithStatus(InTransit)
}

// AssignedItems returns the agent's ASSIGNED_TO_AGENT items not yet picked
// up, in bundle priority order.
func (a *Agent) AssignedItems() []*Item {
	return a.itemsWithStatus(AssignedToAgent)
}

func (a *Agent) itemsWithStatus(status ItemStatus) []*Item {
	out := make([]*Item, 0, len(a.Items))
	for _, it := range a.Items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	sortByPriorityThenCreation(out)
	return out
}

// RemainingCapacity is Capacity minus the number of items currently held in
// ASSIGNED_TO_AGENT or IN_TRANSIT status.
func (a *Agent) RemainingCapacity() int {
	held := 0
	for _, it := range a.Items {
		if it.Status == AssignedToAgent || it.Status == InTransit {
			held++
		}
	}
	return a.Capacity - held
}

// sortByPriorityThenCreation orders items by ascending Priority, breaking
// ties (Priority == 0, i.e. unset) by creation tick, the tie-break rule
// spec.md §4.4 mandates ("Ties in priority are broken by item creation
// order").
func sortByPriorityThenCreation(items []*Item) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && lessItem(items[j], items[j-1]) {
			items[j], items[j-1] = items[j-1], items[j]
			j--
		}
	}
}

func lessItem(a, b *Item) bool {
	ap, bp := a.Priority, b.Priority
	if ap == 0 {
		ap = 1 << 30
	}
	if bp == 0 {
		bp = 1 << 30
	}
	if ap != bp {
		return ap < bp
	}
	return a.CreatedTick < b.CreatedTick
}

// PickupStation holds an ordered queue of items awaiting pickup.
type PickupStation struct {
	ID       StationID
	Position Position
	Queue    []*Item
}

func (s *PickupStation) Kind() ObjectKind { return KindPickupStation }
func (s *PickupStation) Pos() Position    { return s.Position }

// DeliveryStation is a bare position; items are consumed logically on
// delivery, never stored here.
type DeliveryStation struct {
	ID       StationID
	Position Position
}

func (s *DeliveryStation) Kind() ObjectKind { return KindDeliveryStation }
func (s *DeliveryStation) Pos() Position    { return s.Position }

// Obstacle blocks movement and pathfinding.
type Obstacle struct {
	ID       int
	Position Position
}

func (o *Obstacle) Kind() ObjectKind { return KindObstacle }
func (o *Obstacle) Pos() Position    { return o.Position }

// newItemID mints a fresh globally unique item identity.
func newItemID() ItemID { return ItemID(uuid.NewString()) }

// newAgentID mints a fresh globally unique agent identity.
func newAgentID() AgentID { return AgentID(uuid.NewString()) }
