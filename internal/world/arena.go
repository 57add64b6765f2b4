package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/telemetry"
)

const (
	// Default arena dimensions, odd so the pillar lattice closes on both edges
	DefaultWidth  = 31
	DefaultHeight = 15

	minSize = 5 // Smallest arena that leaves room for the spawn corner
)

// Fill places one kind of destructible tile during generation.
type Fill struct {
	Layer   *grid.TileMap
	Tile    grid.TileID // Tile to place, normally the layer's full-health stage
	Density float64     // Chance in [0,1] that an eligible floor cell gets this tile
}

// Arena is the bomb-game map: an indestructible wall border, a lattice of
// pillars, and floor. Cell (0,0) is the lower-left corner; Y grows upward.
type Arena struct {
	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]
	Spawn  grid.Cell
	rng    *rand.Rand
}

// NewArena creates an arena filled with floor. Even dimensions are grown by
// one so the pillar lattice meets the border. A nil rng seeds one from the clock.
func NewArena(width, height int, rng *rand.Rand) *Arena {
	width = max(width, minSize) | 1
	height = max(height, minSize) | 1
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileFloor
		}
	}

	return &Arena{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Spawn:  grid.Cell{X: 1, Y: height - 2},
		rng:    rng,
	}
}

// Generate lays out walls and pillars, then scatters destructible tiles into
// the fill layers. Fills are tried in order; a cell receives at most one
// destructible tile. The spawn corner is always left clear.
func (a *Arena) Generate(ctx context.Context, fills []Fill) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "arena.generate")
	defer span.End()

	startTime := time.Now()

	a.buildWalls()
	placed := a.scatter(fills)

	span.SetAttributes(
		attribute.Int("arena.width", a.Width),
		attribute.Int("arena.height", a.Height),
		attribute.Int("arena.destructibles", placed),
		attribute.Int64("arena.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// buildWalls sets the border and the even/even pillar lattice.
func (a *Arena) buildWalls() {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			border := x == 0 || y == 0 || x == a.Width-1 || y == a.Height-1
			pillar := x%2 == 0 && y%2 == 0
			if border || pillar {
				a.Tiles[y][x] = TileWall
			} else {
				a.Tiles[y][x] = TileFloor
			}
		}
	}
}

// scatter fills eligible floor cells with destructible tiles.
// Returns the number of tiles placed.
func (a *Arena) scatter(fills []Fill) int {
	placed := 0
	for y := 1; y < a.Height-1; y++ {
		for x := 1; x < a.Width-1; x++ {
			cell := grid.Cell{X: x, Y: y}
			if !a.Tiles[y][x].IsPassable() || a.InSpawnZone(cell) {
				continue
			}
			for _, f := range fills {
				if f.Layer == nil || f.Tile == grid.NoTile {
					continue
				}
				if a.rng.Float64() < f.Density {
					f.Layer.SetTile(cell, f.Tile)
					placed++
					break
				}
			}
		}
	}
	return placed
}

// InSpawnZone returns true for the spawn cell and its two open neighbours,
// which are kept clear so the first bomb can be escaped.
func (a *Arena) InSpawnZone(cell grid.Cell) bool {
	s := a.Spawn
	return cell == s ||
		cell == grid.Cell{X: s.X + 1, Y: s.Y} ||
		cell == grid.Cell{X: s.X, Y: s.Y - 1}
}

// InBounds returns true if the cell lies inside the arena.
func (a *Arena) InBounds(cell grid.Cell) bool {
	return cell.X >= 0 && cell.X < a.Width && cell.Y >= 0 && cell.Y < a.Height
}

// IsBlocked returns true if the cell stops a blast. Cells outside the arena are blocked.
func (a *Arena) IsBlocked(cell grid.Cell) bool {
	return a.GetTile(cell).IsSolid()
}

// IsPassable returns true if the given cell can be walked on.
func (a *Arena) IsPassable(cell grid.Cell) bool {
	return a.GetTile(cell).IsPassable()
}

// GetTile returns the tile at the given cell.
func (a *Arena) GetTile(cell grid.Cell) Tile {
	if !a.InBounds(cell) {
		return TileWall
	}
	return a.Tiles[cell.Y][cell.X]
}
