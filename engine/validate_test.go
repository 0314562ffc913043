package engine

import (
	"errors"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/world"
)

func TestValidateMove_OutOfBounds(t *testing.T) {
	g := world.NewGrid(3, 3)
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := intention.Move{Agent: agent.ID, Direction: intention.Left}

	if err := validateMove(g, mv); !errors.Is(err, ErrOutOfBoundsMove) {
		t.Fatalf("expected ErrOutOfBoundsMove, got %v", err)
	}
}

func TestValidateMove_ObstacleCollision(t *testing.T) {
	g := world.NewGrid(3, 3)
	if _, err := g.AddObstacle(world.Position{X: 1, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv := intention.Move{Agent: agent.ID, Direction: intention.Right}

	if err := validateMove(g, mv); !errors.Is(err, ErrObstacleCollision) {
		t.Fatalf("expected ErrObstacleCollision, got %v", err)
	}
}

func TestValidatePickup_OffStation(t *testing.T) {
	g := world.NewGrid(3, 3)
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := intention.Pickup{Agent: agent.ID}

	if err := validatePickup(g, p); !errors.Is(err, ErrPickupOffStation) {
		t.Fatalf("expected ErrPickupOffStation, got %v", err)
	}
}

func TestValidateDeliver_OffStation(t *testing.T) {
	g := world.NewGrid(3, 3)
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := intention.Deliver{Agent: agent.ID}

	if err := validateDeliver(g, d); !errors.Is(err, ErrDeliverOffStation) {
		t.Fatalf("expected ErrDeliverOffStation, got %v", err)
	}
}

func TestValidateIllegal_DuplicateOrigin(t *testing.T) {
	g := world.NewGrid(3, 3)
	agent, err := g.AddAgent(world.Position{X: 1, Y: 1}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	batch := []intention.Intention{
		intention.Move{Agent: agent.ID, Direction: intention.Up},
		intention.Move{Agent: agent.ID, Direction: intention.Down},
	}

	if err := validateIllegal(g, batch); !errors.Is(err, ErrDuplicateOrigin) {
		t.Fatalf("expected ErrDuplicateOrigin, got %v", err)
	}
}

