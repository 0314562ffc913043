package metrics_test

import (
	"strings"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/metrics"
	"github.com/lvlath-sim/dispatchgrid/world"
)

func TestCollect_LeftBehindOrderedDescending(t *testing.T) {
	g := world.NewGrid(5, 5)
	s1, err := g.AddPickupStation(world.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := g.AddPickupStation(world.Position{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := g.AddDeliveryStation(world.Position{X: 4, Y: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.NewItem(0, s1.ID, d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.NewItem(0, s2.ID, d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.NewItem(0, s2.ID, d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := metrics.Collect(g)
	if len(report.LeftBehindByStation) != 2 {
		t.Fatalf("expected 2 backlog entries, got %d", len(report.LeftBehindByStation))
	}
	if report.LeftBehindByStation[0].Station != s2.ID {
		t.Fatalf("expected s2 first (2 items), got %d", report.LeftBehindByStation[0].Station)
	}
}

func TestCollect_DeliveredByAgentAndAverageDeliveryTime(t *testing.T) {
	g := world.NewGrid(5, 5)
	src, err := g.AddPickupStation(world.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst, err := g.AddDeliveryStation(world.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it, err := g.NewItem(0, src.ID, dst.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.PickupItem(agent.ID, &it.ID, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.DeliverItem(agent.ID, &it.ID, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := metrics.Collect(g)
	if len(report.DeliveredByAgent) != 1 || report.DeliveredByAgent[0].Count != 1 {
		t.Fatalf("expected 1 delivery for the agent, got %+v", report.DeliveredByAgent)
	}
	if report.AverageDeliveryTime != 4 {
		t.Fatalf("expected average delivery time 4 (delivered tick 4 - created tick 0), got %v", report.AverageDeliveryTime)
	}
	if report.StatusTotals[world.Delivered] != 1 {
		t.Fatalf("expected 1 DELIVERED total, got %d", report.StatusTotals[world.Delivered])
	}
}

func TestReport_WriteProducesNonEmptyTable(t *testing.T) {
	g := world.NewGrid(3, 3)
	report := metrics.Collect(g)
	var sb strings.Builder
	if err := report.Write(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "AVERAGE DELIVERY TIME") {
		t.Fatal("expected the rendered report to include the average delivery time row")
	}
}
