package world

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrOutOfBounds indicates a position lies outside the board.
	ErrOutOfBounds = errors.New("world: position out of bounds")

	// ErrObstacleCollision indicates a position is occupied by an Obstacle.
	ErrObstacleCollision = errors.New("world: position occupied by obstacle")

	// ErrAgentNotFound indicates an operation referenced an unknown agent.
	ErrAgentNotFound = errors.New("world: agent not found")

	// ErrItemNotFound indicates an operation referenced an unknown item.
	ErrItemNotFound = errors.New("world: item not found")

	// ErrStationNotFound indicates an operation referenced an unknown station.
	ErrStationNotFound = errors.New("world: station not found")

	// ErrPickupOffStation indicates an agent tried to pick up an item while
	// not standing on a PickupStation.
	ErrPickupOffStation = errors.New("world: agent is not on a pickup station")

	// ErrDeliverOffStation indicates an agent tried to deliver an item while
	// not standing on a DeliveryStation.
	ErrDeliverOffStation = errors.New("world: agent is not on a delivery station")

	// ErrStationEmpty indicates a pickup was attempted against an empty queue.
	ErrStationEmpty = errors.New("world: pickup station has no items to collect")

	// ErrNoItemCarried indicates a deliver was attempted by an agent with no
	// IN_TRANSIT item.
	ErrNoItemCarried = errors.New("world: agent is not carrying an item")

	// ErrCapacityExceeded indicates an assignment would push an agent past
	// its capacity.
	ErrCapacityExceeded = errors.New("world: agent capacity exceeded")
)
