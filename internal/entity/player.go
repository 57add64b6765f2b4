// Package entity provides the player-controlled bomber.
package entity

import "github.com/samdwyer/blastgrid/internal/grid"

// Player is the bomber moving around the arena.
type Player struct {
	Pos    grid.Vec // Continuous position; bombs snap to the nearest cell
	Symbol rune     // Display symbol
}

// NewPlayer creates a player standing on the given cell.
func NewPlayer(cell grid.Cell) *Player {
	return &Player{
		Pos:    cell.Vec(),
		Symbol: '@',
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy float64) {
	p.Pos = p.Pos.Add(grid.Vec{X: dx, Y: dy})
}

// Position returns the current world position.
func (p *Player) Position() grid.Vec {
	return p.Pos
}

// Cell returns the cell the player is standing in.
func (p *Player) Cell() grid.Cell {
	return p.Pos.Round()
}
