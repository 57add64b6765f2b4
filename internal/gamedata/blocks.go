package gamedata

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// BombDef holds the starting bomb tuning.
type BombDef struct {
	Capacity    int `json:"capacity"`    // Simultaneous bombs at start
	FuseMs      int `json:"fuseMs"`      // Fuse length in milliseconds
	BlastRadius int `json:"blastRadius"` // Cells per direction
	ExplosionMs int `json:"explosionMs"` // Lifetime of blast visuals in milliseconds
}

// Fuse returns the fuse length.
func (b BombDef) Fuse() time.Duration {
	return time.Duration(b.FuseMs) * time.Millisecond
}

// ExplosionDuration returns the lifetime of blast visuals.
func (b BombDef) ExplosionDuration() time.Duration {
	return time.Duration(b.ExplosionMs) * time.Millisecond
}

// TileDef describes how a tile is drawn.
type TileDef struct {
	ID    string `json:"id"`    // Tile identifier stored in tile layers
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code (e.g., "#C08040")
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	return firstRune(t.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	return colorOr(t.Color, tcell.ColorWhite)
}

// LayerDef defines one destructible block type.
type LayerDef struct {
	ID            string   `json:"id"`
	MaxHealth     int      `json:"maxHealth"`     // Hits needed to break an undamaged block
	StageTiles    []string `json:"stageTiles"`    // StageTiles[hp-1] is shown at hp
	BreakEffect   string   `json:"breakEffect"`   // Prefab spawned on break, optional
	BreakEffectMs int      `json:"breakEffectMs"` // Lifetime of the break effect in milliseconds
	SpawnChance   float64  `json:"spawnChance"`   // Loot probability in [0,1]
	Loot          []string `json:"loot"`          // Loot prefabs, one picked uniformly
	Density       float64  `json:"density"`       // Arena fill probability per floor cell
}

// BreakEffectDuration returns the lifetime of the break effect.
func (l *LayerDef) BreakEffectDuration() time.Duration {
	return time.Duration(l.BreakEffectMs) * time.Millisecond
}

// FullTile returns the tile shown at full health.
func (l *LayerDef) FullTile() string {
	if len(l.StageTiles) == 0 {
		return l.ID
	}
	idx := min(max(l.MaxHealth-1, 0), len(l.StageTiles)-1)
	return l.StageTiles[idx]
}

// PrefabDef describes how a spawned entity is drawn.
type PrefabDef struct {
	ID            string `json:"id"`
	Glyph         string `json:"glyph"`
	GlyphVertical string `json:"glyphVertical"` // Used instead of Glyph when rotated onto the Y axis
	Color         string `json:"color"`
}

// GlyphRune returns the glyph for the given orientation.
func (p *PrefabDef) GlyphRune(vertical bool) rune {
	if vertical && p.GlyphVertical != "" {
		return firstRune(p.GlyphVertical)
	}
	return firstRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PrefabDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorWhite)
}

// BlocksFile represents the structure of blocks.json.
type BlocksFile struct {
	Bomb    BombDef     `json:"bomb"`
	Tiles   []TileDef   `json:"tiles"`
	Layers  []LayerDef  `json:"layers"`
	Prefabs []PrefabDef `json:"prefabs"`
}

// LoadBlocks loads definitions from the embedded blocks.json file.
func LoadBlocks() (BlocksFile, error) {
	return Load[BlocksFile]("blocks.json")
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
