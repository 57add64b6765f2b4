// Package world provides arena generation and the solid-obstacle map.
package world

// Tile represents a single solid-map tile.
type Tile rune

const (
	// TileWall represents an indestructible wall that stops blasts.
	TileWall Tile = '#'
	// TileFloor represents open ground.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsSolid returns true if the tile stops a blast.
func (t Tile) IsSolid() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
