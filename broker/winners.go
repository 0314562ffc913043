package broker

import (
	"github.com/lvlath-sim/dispatchgrid/auction"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// selectWinners returns the minimum-cost set of bids (at most one per
// agent) whose bundles union to exactly auctionable, with no item
// repeated (spec.md §4.6 step 3). Ties are broken by stable enumeration
// order: agents in fleet order, each agent's own bids in the order
// auction.Agent.Bids returned them, with "skip this agent" tried after
// all of its bids, so the first-found minimum-cost valid combination wins
// ties deterministically; of two equal-cost bids for the same items, the
// earlier agent's bid wins.
func selectWinners(auctionable []world.ItemID, bidsByAgent [][]auction.Bid) []auction.Bid {
	itemIndex := make(map[world.ItemID]int, len(auctionable))
	for i, id := range auctionable {
		itemIndex[id] = i
	}
	fullMask := uint64(0)
	for i := range auctionable {
		fullMask |= 1 << uint(i)
	}

	s := &search{
		itemIndex:   itemIndex,
		fullMask:    fullMask,
		bidsByAgent: bidsByAgent,
		bestCost:    -1,
	}
	s.walk(0, 0, nil, 0)
	return s.best
}

type search struct {
	itemIndex   map[world.ItemID]int
	fullMask    uint64
	bidsByAgent [][]auction.Bid

	bestCost int64
	best     []auction.Bid
}

// walk explores, agent by agent, every choice of "skip" or "take one of
// this agent's bids compatible with the items already claimed". At a leaf
// (all agents decided), a selection is valid iff usedMask == fullMask.
func (s *search) walk(agentIdx int, usedMask uint64, selection []auction.Bid, cost int64) {
	if s.bestCost >= 0 && cost >= s.bestCost {
		return // no valid completion can beat the incumbent from here
	}
	if agentIdx == len(s.bidsByAgent) {
		if usedMask == s.fullMask {
			s.bestCost = cost
			s.best = append([]auction.Bid(nil), selection...)
		}
		return
	}

	for _, bid := range s.bidsByAgent[agentIdx] {
		mask, ok := s.bidMask(bid)
		if !ok || mask&usedMask != 0 {
			continue // overlaps an already-claimed item, or references an unknown item
		}
		s.walk(agentIdx+1, usedMask|mask, append(selection, bid), cost+bid.Cost)
	}

	// Try skipping this agent last, so on equal cost a selection that uses
	// this agent's bid, found first, is kept (stable enumeration order).
	s.walk(agentIdx+1, usedMask, selection, cost)
}

func (s *search) bidMask(bid auction.Bid) (uint64, bool) {
	var mask uint64
	for _, id := range bid.Bundle {
		idx, ok := s.itemIndex[id]
		if !ok {
			return 0, false
		}
		mask |= 1 << uint(idx)
	}
	return mask, true
}
