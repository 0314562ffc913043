package itemfactory_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/itemfactory"
	"github.com/lvlath-sim/dispatchgrid/world"
)

func TestWeightedDistribution_UnknownPickupStation(t *testing.T) {
	g, _, dst := buildFactoryGrid(t)
	d := &itemfactory.WeightedDistribution{
		PickupProbability: map[world.StationID]float64{99: 1.0},
		DeliveryWeights:    map[world.StationID]float64{dst: 1.0},
		StepsPerTick:       1,
	}
	if err := d.AddItems(g, 0, rand.New(rand.NewSource(1))); !errors.Is(err, itemfactory.ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}

func TestWeightedDistribution_UnknownDeliveryWeight(t *testing.T) {
	g, src, _ := buildFactoryGrid(t)
	d := &itemfactory.WeightedDistribution{
		PickupProbability: map[world.StationID]float64{src: 1.0},
		DeliveryWeights:    map[world.StationID]float64{99: 1.0},
		StepsPerTick:       1,
	}
	if err := d.AddItems(g, 0, rand.New(rand.NewSource(1))); !errors.Is(err, itemfactory.ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}

func TestWeightedDistribution_ProbabilityOneAlwaysDraws(t *testing.T) {
	g, src, dst := buildFactoryGrid(t)
	d := &itemfactory.WeightedDistribution{
		PickupProbability: map[world.StationID]float64{src: 1.0},
		DeliveryWeights:    map[world.StationID]float64{dst: 1.0},
		StepsPerTick:       3,
	}
	if err := d.AddItems(g, 0, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	station, _ := g.PickupByID(src)
	if len(station.Queue) != 3 {
		t.Fatalf("expected 3 items drawn with p=1, got %d", len(station.Queue))
	}
}

func TestWeightedDistribution_ProbabilityZeroNeverDraws(t *testing.T) {
	g, src, dst := buildFactoryGrid(t)
	d := &itemfactory.WeightedDistribution{
		PickupProbability: map[world.StationID]float64{src: 0.0},
		DeliveryWeights:    map[world.StationID]float64{dst: 1.0},
		StepsPerTick:       10,
	}
	if err := d.AddItems(g, 0, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	station, _ := g.PickupByID(src)
	if len(station.Queue) != 0 {
		t.Fatalf("expected no items drawn with p=0, got %d", len(station.Queue))
	}
}

func TestWeightedDistribution_RunsEveryTick(t *testing.T) {
	g, src, dst := buildFactoryGrid(t)
	d := &itemfactory.WeightedDistribution{
		PickupProbability: map[world.StationID]float64{src: 1.0},
		DeliveryWeights:    map[world.StationID]float64{dst: 1.0},
		StepsPerTick:       1,
	}
	rng := rand.New(rand.NewSource(1))
	if err := d.AddItems(g, 0, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.AddItems(g, 1, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	station, _ := g.PickupByID(src)
	if len(station.Queue) != 2 {
		t.Fatalf("expected 2 items across 2 ticks, got %d", len(station.Queue))
	}
}
