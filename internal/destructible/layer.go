// Package destructible tracks hit points of breakable terrain tiles across
// one or more tile layers.
package destructible

import (
	"time"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/spawn"
)

// TileLayer is the tile-grid store backing one destructible layer.
type TileLayer interface {
	WorldToCell(pos grid.Vec) grid.Cell
	GetTile(cell grid.Cell) grid.TileID
	SetTile(cell grid.Cell, tile grid.TileID)
	CellCenterWorld(cell grid.Cell) grid.Vec
}

// DefaultBreakEffectDuration is used when a layer has a break effect but no lifetime.
const DefaultBreakEffectDuration = 500 * time.Millisecond

// Spawner creates break effects and loot.
type Spawner interface {
	Spawn(prefab spawn.Prefab, pos grid.Vec, rotation float64) spawn.Handle
	DestroyAfter(h spawn.Handle, d time.Duration)
}

// Layer configures one destructible tile type.
type Layer struct {
	ID        string
	Tiles     TileLayer // Nil layers are skipped
	MaxHealth int       // Hit points of an undamaged tile, at least 1

	// StageTiles[hp-1] is shown while the tile has hp remaining.
	StageTiles []grid.TileID

	BreakEffect         spawn.Prefab  // Spawned on destruction when set
	BreakEffectDuration time.Duration // Lifetime of the break effect

	Loot        []spawn.Prefab // One entry is picked uniformly on a successful roll
	SpawnChance float64        // Probability in [0,1] of dropping loot
}

// hasTiles returns true if the layer has a usable backing store.
func (l *Layer) hasTiles() bool {
	if l.Tiles == nil {
		return false
	}
	if m, ok := l.Tiles.(*grid.TileMap); ok && m == nil {
		return false
	}
	return true
}

// stageTile returns the visual for the given remaining hp.
// The index is clamped so a short StageTiles list still yields a tile.
func (l *Layer) stageTile(hp int) (grid.TileID, bool) {
	if len(l.StageTiles) == 0 {
		return grid.NoTile, false
	}
	idx := min(max(hp-1, 0), len(l.StageTiles)-1)
	return l.StageTiles[idx], true
}

// dropsLoot returns true if the layer can ever spawn loot.
func (l *Layer) dropsLoot() bool {
	return len(l.Loot) > 0 && l.SpawnChance > 0
}

// normalize fixes out-of-range configuration values in place.
func (l *Layer) normalize() {
	if l.MaxHealth < 1 {
		l.MaxHealth = 1
	}
	l.SpawnChance = min(max(l.SpawnChance, 0), 1)
	if l.BreakEffect != "" && l.BreakEffectDuration <= 0 {
		l.BreakEffectDuration = DefaultBreakEffectDuration
	}
}
