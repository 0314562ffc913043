package render

import "github.com/lvlath-sim/dispatchgrid/world"

// GridBoard adapts a world.Grid to the Board interface for Write.
type GridBoard struct {
	Grid *world.Grid
}

func (b GridBoard) Width() int  { return b.Grid.Width }
func (b GridBoard) Height() int { return b.Grid.Height }

// CellAt returns the single character used to draw the cell at (x, y):
// '#' obstacle, 'P' pickup station, 'D' delivery station, an agent's fleet
// index (mod 36, 0-9 then A-Z) if one or more agents stand there, else '.'.
// Precedence when a cell holds more than one kind of object: agent, then
// obstacle, then station — an agent standing on a station is the
// common case worth seeing at a glance.
func (b GridBoard) CellAt(x, y int) rune {
	pos := world.Position{X: x, Y: y}
	for i, a := range b.Grid.Agents {
		if a.Position == pos {
			return agentGlyph(i)
		}
	}
	if b.Grid.HasObstacle(pos) {
		return '#'
	}
	if _, ok := b.Grid.PickupStationAt(pos); ok {
		return 'P'
	}
	if _, ok := b.Grid.DeliveryStationAt(pos); ok {
		return 'D'
	}
	return '.'
}

func agentGlyph(fleetIndex int) rune {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return rune(alphabet[fleetIndex%len(alphabet)])
}
