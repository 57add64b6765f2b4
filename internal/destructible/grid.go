package destructible

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/telemetry"
)

// Grid owns the per-cell hit points of every destructible layer.
// It is not safe for concurrent use; callers serialize damage on the game tick.
type Grid struct {
	layers  []Layer
	health  []map[grid.Cell]int // Parallel to layers
	spawner Spawner
	rng     *rand.Rand
}

// New creates a grid over the given layers.
// A nil spawner disables break effects and loot.
func New(layers []Layer, spawner Spawner, rng *rand.Rand) *Grid {
	g := &Grid{
		layers:  make([]Layer, len(layers)),
		health:  make([]map[grid.Cell]int, len(layers)),
		spawner: spawner,
		rng:     rng,
	}
	copy(g.layers, layers)
	for i := range g.layers {
		g.layers[i].normalize()
		g.health[i] = make(map[grid.Cell]int)
	}
	return g
}

// ApplyDamage deals damage to whatever destructible tiles occupy pos, one
// layer at a time. Damage below 1 is raised to 1.
// Returns true if at least one layer had its tile destroyed.
func (g *Grid) ApplyDamage(ctx context.Context, pos grid.Vec, amount int) bool {
	tracer := telemetry.Tracer("destructible")
	_, span := tracer.Start(ctx, "destructible.damage")
	defer span.End()

	damage := max(1, amount)
	destroyedAny := false
	destroyed := 0
	damaged := 0

	for i := range g.layers {
		layer := &g.layers[i]
		if !layer.hasTiles() {
			continue
		}

		cell := layer.Tiles.WorldToCell(pos)
		if layer.Tiles.GetTile(cell) == grid.NoTile {
			continue
		}

		hp, ok := g.health[i][cell]
		if !ok {
			hp = layer.MaxHealth
		}
		hp -= damage
		damaged++

		if hp <= 0 {
			layer.Tiles.SetTile(cell, grid.NoTile)
			delete(g.health[i], cell)
			destroyedAny = true
			destroyed++

			g.spawnDrops(layer, layer.Tiles.CellCenterWorld(cell))
			continue
		}

		g.health[i][cell] = hp
		if tile, ok := layer.stageTile(hp); ok {
			layer.Tiles.SetTile(cell, tile)
		}
	}

	span.SetAttributes(
		attribute.Float64("pos.x", pos.X),
		attribute.Float64("pos.y", pos.Y),
		attribute.Int("damage", damage),
		attribute.Int("layers.damaged", damaged),
		attribute.Int("layers.destroyed", destroyed),
	)

	return destroyedAny
}

// spawnDrops spawns the short-lived break effect and rolls for loot.
// The two are independent; loot stays until collected.
func (g *Grid) spawnDrops(layer *Layer, at grid.Vec) {
	if g.spawner == nil {
		return
	}

	if layer.BreakEffect != "" {
		h := g.spawner.Spawn(layer.BreakEffect, at, 0)
		g.spawner.DestroyAfter(h, layer.BreakEffectDuration)
	}

	if layer.dropsLoot() && g.rng != nil {
		// Roll is in [0,1); <= makes a chance of 1 always drop.
		roll := g.rng.Float64()
		if roll <= layer.SpawnChance {
			item := layer.Loot[g.rng.Intn(len(layer.Loot))]
			g.spawner.Spawn(item, at, 0)
		}
	}
}

// Health returns the tracked hp of a cell in the named layer.
// tracked is false when the cell is undamaged or has no tile.
func (g *Grid) Health(layerID string, cell grid.Cell) (hp int, tracked bool) {
	i := g.indexOf(layerID)
	if i < 0 {
		return 0, false
	}
	hp, tracked = g.health[i][cell]
	return hp, tracked
}

// Tracked returns the number of damaged cells in the named layer.
func (g *Grid) Tracked(layerID string) int {
	i := g.indexOf(layerID)
	if i < 0 {
		return 0
	}
	return len(g.health[i])
}

// Reset forgets every damaged cell. Tiles are left as they are.
func (g *Grid) Reset() {
	for i := range g.health {
		clear(g.health[i])
	}
}

// Layers returns the configured layers.
func (g *Grid) Layers() []Layer {
	return g.layers
}

// Layer returns the named layer, or nil.
func (g *Grid) Layer(id string) *Layer {
	i := g.indexOf(id)
	if i < 0 {
		return nil
	}
	return &g.layers[i]
}

func (g *Grid) indexOf(layerID string) int {
	for i := range g.layers {
		if g.layers[i].ID == layerID {
			return i
		}
	}
	return -1
}
