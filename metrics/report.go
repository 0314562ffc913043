// Package metrics aggregates end-of-run analytics over a Grid and renders
// them as an aligned stdout table (spec.md §6.3). Rendered with the
// standard library's text/tabwriter — no table-writer library appears
// anywhere in the pack, so this ambient concern stays on the standard
// library (see DESIGN.md).
package metrics

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// StationBacklog is the left-behind count for one pickup station.
type StationBacklog struct {
	Station world.StationID
	Count   int
}

// AgentDeliveries is the delivered-item count for one agent.
type AgentDeliveries struct {
	Agent world.AgentID
	Count int
}

// OldestAwaiting is the longest-waiting item at one pickup station.
type OldestAwaiting struct {
	Station     world.StationID
	CreatedTick int
}

// AgentCost is one agent's accumulated auction spend.
type AgentCost struct {
	Agent world.AgentID
	Cost  int64
}

// AgentBundles is the count of an agent's winning-bid history entries that
// were fully delivered (every item in that bundle reached DELIVERED).
type AgentBundles struct {
	Agent   world.AgentID
	Bundles int
}

// Report is the full end-of-run analytics snapshot.
type Report struct {
	LeftBehindByStation []StationBacklog  // descending by Count
	DeliveredByAgent    []AgentDeliveries // descending by Count
	OldestAwaiting      []OldestAwaiting  // ascending by CreatedTick
	AverageDeliveryTime float64
	StatusTotals        map[world.ItemStatus]int
	CostByAgent         []AgentCost
	BundlesByAgent      []AgentBundles
}

// Collect walks every item reachable from g (pickup queues plus every
// agent's item list) and builds a Report.
func Collect(g *world.Grid) *Report {
	r := &Report{StatusTotals: make(map[world.ItemStatus]int)}

	for _, station := range g.PickupStations {
		if len(station.Queue) > 0 {
			r.LeftBehindByStation = append(r.LeftBehindByStation, StationBacklog{Station: station.ID, Count: len(station.Queue)})
		}
		oldest := -1
		for _, it := range station.Queue {
			r.StatusTotals[it.Status]++
			if oldest == -1 || it.CreatedTick < oldest {
				oldest = it.CreatedTick
			}
		}
		if oldest != -1 {
			r.OldestAwaiting = append(r.OldestAwaiting, OldestAwaiting{Station: station.ID, CreatedTick: oldest})
		}
	}

	var deliveryTimeSum, deliveryCount int
	for _, agent := range g.Agents {
		delivered := 0
		for _, it := range agent.Items {
			r.StatusTotals[it.Status]++
			if it.Status == world.Delivered {
				delivered++
				if it.DeliveredTick != nil {
					deliveryTimeSum += *it.DeliveredTick - it.CreatedTick
					deliveryCount++
				}
			}
		}
		if delivered > 0 {
			r.DeliveredByAgent = append(r.DeliveredByAgent, AgentDeliveries{Agent: agent.ID, Count: delivered})
		}
		if agent.TotalCost != 0 {
			r.CostByAgent = append(r.CostByAgent, AgentCost{Agent: agent.ID, Cost: agent.TotalCost})
		}
		if fullBundles := countFullyDeliveredBundles(agent); fullBundles > 0 {
			r.BundlesByAgent = append(r.BundlesByAgent, AgentBundles{Agent: agent.ID, Bundles: fullBundles})
		}
	}
	if deliveryCount > 0 {
		r.AverageDeliveryTime = float64(deliveryTimeSum) / float64(deliveryCount)
	}

	sort.Slice(r.LeftBehindByStation, func(i, j int) bool { return r.LeftBehindByStation[i].Count > r.LeftBehindByStation[j].Count })
	sort.Slice(r.DeliveredByAgent, func(i, j int) bool { return r.DeliveredByAgent[i].Count > r.DeliveredByAgent[j].Count })
	sort.Slice(r.OldestAwaiting, func(i, j int) bool { return r.OldestAwaiting[i].CreatedTick < r.OldestAwaiting[j].CreatedTick })

	return r
}

// countFullyDeliveredBundles counts winning-bid history entries whose every
// item reached DELIVERED.
func countFullyDeliveredBundles(agent *world.Agent) int {
	delivered := make(map[world.ItemID]bool)
	for _, it := range agent.Items {
		if it.Status == world.Delivered {
			delivered[it.ID] = true
		}
	}
	full := 0
bundleLoop:
	for _, bid := range agent.History {
		for _, id := range bid.Items {
			if !delivered[id] {
				continue bundleLoop
			}
		}
		full++
	}
	return full
}

// Write renders the report as an aligned table to w.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "STATION\tLEFT BEHIND")
	for _, s := range r.LeftBehindByStation {
		fmt.Fprintf(tw, "%d\t%d\n", s.Station, s.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "AGENT\tDELIVERED")
	for _, a := range r.DeliveredByAgent {
		fmt.Fprintf(tw, "%s\t%d\n", a.Agent, a.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "STATION\tOLDEST CREATED TICK")
	for _, o := range r.OldestAwaiting {
		fmt.Fprintf(tw, "%d\t%d\n", o.Station, o.CreatedTick)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "AVERAGE DELIVERY TIME\t%.2f\n", r.AverageDeliveryTime)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "STATUS\tTOTAL")
	for _, status := range []world.ItemStatus{world.AwaitingPickup, world.AssignedToAgent, world.InTransit, world.Delivered} {
		fmt.Fprintf(tw, "%s\t%d\n", status, r.StatusTotals[status])
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "AGENT\tTOTAL COST\tBUNDLES DELIVERED")
	costs := make(map[world.AgentID]int64, len(r.CostByAgent))
	for _, c := range r.CostByAgent {
		costs[c.Agent] = c.Cost
	}
	bundles := make(map[world.AgentID]int, len(r.BundlesByAgent))
	for _, b := range r.BundlesByAgent {
		bundles[b.Agent] = b.Bundles
	}
	seen := make(map[world.AgentID]bool)
	for _, c := range r.CostByAgent {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.Agent, costs[c.Agent], bundles[c.Agent])
		seen[c.Agent] = true
	}
	for _, b := range r.BundlesByAgent {
		if seen[b.Agent] {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", b.Agent, costs[b.Agent], bundles[b.Agent])
	}

	return tw.Flush()
}
