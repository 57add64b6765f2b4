package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blastgrid/internal/entity"
	"github.com/samdwyer/blastgrid/internal/gamedata"
	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/spawn"
	"github.com/samdwyer/blastgrid/internal/world"
)

// Frame is everything drawn in one refresh.
type Frame struct {
	Arena    *world.Arena
	Tiles    map[string]*grid.TileMap // Destructible layers by ID, drawn in catalog order
	Entities []spawn.Entity           // Drawn in order, later on top
	Player   *entity.Player
	Status   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	catalog *gamedata.Catalog
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, catalog *gamedata.Catalog) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

// Render draws the arena, blocks, entities and player, then the status line.
// World Y grows upward, so rows are flipped onto the screen.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	if f.Arena == nil {
		r.screen.Show()
		return
	}

	// Draw solid map
	for y := 0; y < f.Arena.Height; y++ {
		for x := 0; x < f.Arena.Width; x++ {
			tile := f.Arena.GetTile(grid.Cell{X: x, Y: y})
			r.set(f.Arena, grid.Cell{X: x, Y: y}, r.arenaGlyph(tile), r.arenaStyle(tile))
		}
	}

	// Draw destructible blocks, later layers on top
	for _, def := range r.catalog.Layers() {
		tm := f.Tiles[def.ID]
		if tm == nil {
			continue
		}
		tm.Each(func(cell grid.Cell, id grid.TileID) {
			glyph, style := '?', tcell.StyleDefault.Foreground(tcell.ColorWhite)
			if def := r.catalog.Tile(string(id)); def != nil {
				glyph, style = def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
			}
			r.set(f.Arena, cell, glyph, style)
		})
	}

	for _, e := range f.Entities {
		r.drawEntity(f.Arena, e)
	}

	// Draw player on top
	if f.Player != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.set(f.Arena, f.Player.Cell(), f.Player.Symbol, playerStyle)
	}

	r.RenderMessage(f.Status, f.Arena.Height+1)
	r.screen.Show()
}

// drawEntity draws one spawned entity using its prefab definition.
func (r *Renderer) drawEntity(arena *world.Arena, e spawn.Entity) {
	def := r.catalog.Prefab(string(e.Prefab))
	if def == nil {
		r.set(arena, e.Cell(), '?', tcell.StyleDefault)
		return
	}
	style := tcell.StyleDefault.Foreground(def.TCellColor())
	if e.Prefab.IsLoot() {
		style = style.Bold(true)
	}
	r.set(arena, e.Cell(), def.GlyphRune(isVertical(e.Rotation)), style)
}

// isVertical returns true if the rotation points along the Y axis.
func isVertical(rotation float64) bool {
	return math.Abs(math.Sin(rotation)) > math.Sqrt2/2
}

// set draws at a world cell, skipping cells outside the arena.
func (r *Renderer) set(arena *world.Arena, cell grid.Cell, glyph rune, style tcell.Style) {
	if !arena.InBounds(cell) {
		return
	}
	r.screen.SetContent(cell.X, arena.Height-1-cell.Y, glyph, style)
}

// arenaGlyph returns the display rune for a solid-map tile.
func (r *Renderer) arenaGlyph(tile world.Tile) rune {
	if def := r.catalog.Tile(r.arenaTileID(tile)); def != nil {
		return def.GlyphRune()
	}
	return tile.Rune()
}

// arenaStyle returns the appropriate style for a tile type.
func (r *Renderer) arenaStyle(tile world.Tile) tcell.Style {
	if def := r.catalog.Tile(r.arenaTileID(tile)); def != nil {
		return tcell.StyleDefault.Foreground(def.TCellColor())
	}
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) arenaTileID(tile world.Tile) string {
	switch tile {
	case world.TileWall:
		return "wall"
	case world.TileFloor:
		return "floor"
	default:
		return ""
	}
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
