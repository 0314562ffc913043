package broker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-sim/dispatchgrid/auction"
	"github.com/lvlath-sim/dispatchgrid/broker"
	"github.com/lvlath-sim/dispatchgrid/world"
)

func TestBroker_Run_NoAuctionableItemsIsNoop(t *testing.T) {
	g := world.NewGrid(5, 5)
	_, err := g.AddPickupStation(world.Position{X: 0, Y: 0})
	require.NoError(t, err)
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 2)
	require.NoError(t, err)

	b := broker.New([]*auction.Agent{auction.NewAgent(agent.ID, false)})
	require.NoError(t, b.Run(g))
	assert.Empty(t, agent.Items)
}

func TestBroker_Run_AssignsSingleItemToSoleAgent(t *testing.T) {
	g := world.NewGrid(5, 5)
	src, err := g.AddPickupStation(world.Position{X: 0, Y: 0})
	require.NoError(t, err)
	dst, err := g.AddDeliveryStation(world.Position{X: 4, Y: 4})
	require.NoError(t, err)
	_, err = g.NewItem(0, src.ID, dst.ID)
	require.NoError(t, err)
	agent, err := g.AddAgent(world.Position{X: 0, Y: 0}, 2)
	require.NoError(t, err)

	b := broker.New([]*auction.Agent{auction.NewAgent(agent.ID, false)})
	require.NoError(t, b.Run(g))
	assert.Len(t, agent.Items, 1)
	assert.Equal(t, world.AssignedToAgent, agent.Items[0].Status)
	assert.Empty(t, src.Queue)
}

func TestBroker_Run_ExactCoverAcrossThreeAgents(t *testing.T) {
	g := world.NewGrid(10, 10)
	var sources []world.StationID
	for i := 0; i < 3; i++ {
		s, err := g.AddPickupStation(world.Position{X: i * 3, Y: 0})
		require.NoError(t, err)
		sources = append(sources, s.ID)
	}
	dst, err := g.AddDeliveryStation(world.Position{X: 9, Y: 9})
	require.NoError(t, err)
	for _, src := range sources {
		_, err := g.NewItem(0, src, dst.ID)
		require.NoError(t, err)
	}

	var agents []*auction.Agent
	for i := 0; i < 3; i++ {
		a, err := g.AddAgent(world.Position{X: i * 3, Y: 0}, 2)
		require.NoError(t, err)
		agents = append(agents, auction.NewAgent(a.ID, false))
	}

	b := broker.New(agents)
	require.NoError(t, b.Run(g))

	delivered := 0
	for _, a := range g.Agents {
		delivered += len(a.AssignedItems()) + len(a.InTransitItems())
	}
	assert.Equal(t, 3, delivered, "every item must be claimed by exactly one agent")

	for _, s := range g.PickupStations {
		assert.Empty(t, s.Queue)
	}
}
