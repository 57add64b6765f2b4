package grid

import "math"

// TileID identifies the visual tile stored in a cell.
// The empty TileID means the cell holds no tile.
type TileID string

// NoTile is the empty tile.
const NoTile TileID = ""

// TileMap is a sparse tile layer with its own origin and cell size.
type TileMap struct {
	Origin   Vec     // World position of the lower-left corner of cell (0,0)
	CellSize float64 // World units per cell
	tiles    map[Cell]TileID
}

// NewTileMap creates an empty tile layer.
// A non-positive cell size falls back to 1.
func NewTileMap(origin Vec, cellSize float64) *TileMap {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &TileMap{
		Origin:   origin,
		CellSize: cellSize,
		tiles:    make(map[Cell]TileID),
	}
}

// NewCenteredTileMap creates a unit tile layer whose cell centers sit on
// integer world coordinates, so cell (x,y) covers [x-0.5, x+0.5).
func NewCenteredTileMap() *TileMap {
	return NewTileMap(Vec{X: -0.5, Y: -0.5}, 1)
}

// WorldToCell converts a world position to the layer's cell coordinate.
func (m *TileMap) WorldToCell(pos Vec) Cell {
	return Cell{
		X: int(math.Floor((pos.X - m.Origin.X) / m.CellSize)),
		Y: int(math.Floor((pos.Y - m.Origin.Y) / m.CellSize)),
	}
}

// CellCenterWorld returns the world position of the center of a cell.
func (m *TileMap) CellCenterWorld(cell Cell) Vec {
	return Vec{
		X: m.Origin.X + (float64(cell.X)+0.5)*m.CellSize,
		Y: m.Origin.Y + (float64(cell.Y)+0.5)*m.CellSize,
	}
}

// GetTile returns the tile at the cell, or NoTile.
func (m *TileMap) GetTile(cell Cell) TileID {
	return m.tiles[cell]
}

// SetTile places a tile in the cell. Setting NoTile clears the cell.
func (m *TileMap) SetTile(cell Cell, tile TileID) {
	if tile == NoTile {
		delete(m.tiles, cell)
		return
	}
	m.tiles[cell] = tile
}

// HasTile returns true if the cell holds a tile.
func (m *TileMap) HasTile(cell Cell) bool {
	_, ok := m.tiles[cell]
	return ok
}

// Count returns the number of occupied cells.
func (m *TileMap) Count() int {
	return len(m.tiles)
}

// Each calls fn for every occupied cell. Iteration order is unspecified.
func (m *TileMap) Each(fn func(Cell, TileID)) {
	for cell, tile := range m.tiles {
		fn(cell, tile)
	}
}

// Clear removes every tile.
func (m *TileMap) Clear() {
	clear(m.tiles)
}
