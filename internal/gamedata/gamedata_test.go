package gamedata

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestLoadBlocks(t *testing.T) {
	file, err := LoadBlocks()
	if err != nil {
		t.Fatalf("Failed to load blocks: %v", err)
	}

	if len(file.Layers) != 2 {
		t.Errorf("Expected 2 layers, got %d", len(file.Layers))
	}

	expectedIDs := map[string]bool{"crate": false, "brick": false}
	for _, l := range file.Layers {
		if _, ok := expectedIDs[l.ID]; ok {
			expectedIDs[l.ID] = true
		}
		if l.BreakEffect != "" && l.BreakEffectDuration() <= 0 {
			t.Errorf("layer %q has a break effect without a lifetime", l.ID)
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected layer %q not found", id)
		}
	}

	if file.Bomb.Fuse() != 3*time.Second {
		t.Errorf("Fuse() = %v, want 3s", file.Bomb.Fuse())
	}
	if file.Bomb.ExplosionDuration() != time.Second {
		t.Errorf("ExplosionDuration() = %v, want 1s", file.Bomb.ExplosionDuration())
	}
}

func TestLoadCatalogValidates(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("embedded catalog should be valid: %v", err)
	}

	brick := c.Tile("brick")
	if brick == nil {
		t.Fatal("brick tile not found")
	}
	if brick.GlyphRune() != '%' {
		t.Errorf("brick glyph = %c, want %%", brick.GlyphRune())
	}
	if c.Prefab("loot.bomb_up") == nil {
		t.Error("loot.bomb_up prefab not found")
	}
	if c.Tile("missing") != nil || c.Prefab("missing") != nil {
		t.Error("unknown IDs should return nil")
	}
}

func TestCatalogValidateReportsAllProblems(t *testing.T) {
	c := NewCatalog(BlocksFile{
		Bomb: BombDef{FuseMs: 0, Capacity: -1},
		Layers: []LayerDef{
			{ID: "a", MaxHealth: 0, SpawnChance: 2, StageTiles: []string{"nope"}, Loot: []string{"loot.x"}, BreakEffect: "vfx.x"},
			{ID: "a", MaxHealth: 1},
		},
	})

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, want := range []string{"fuse", "negative", "defined twice", "maxHealth", "spawnChance", "stage tile", "break effect", "unknown loot"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	if err := NewCatalog(BlocksFile{Bomb: BombDef{FuseMs: 1}}).Validate(); err == nil {
		t.Error("catalog without layers should be invalid")
	}
}

func TestLayerFullTile(t *testing.T) {
	tests := []struct {
		def      LayerDef
		expected string
	}{
		{LayerDef{ID: "brick", MaxHealth: 3, StageTiles: []string{"c", "b", "a"}}, "a"},
		{LayerDef{ID: "brick", MaxHealth: 5, StageTiles: []string{"c", "b"}}, "b"},
		{LayerDef{ID: "crate", MaxHealth: 1}, "crate"},
	}

	for _, tt := range tests {
		if got := tt.def.FullTile(); got != tt.expected {
			t.Errorf("FullTile(%v) = %q, want %q", tt.def.StageTiles, got, tt.expected)
		}
	}
}

func TestPrefabGlyphOrientation(t *testing.T) {
	p := PrefabDef{ID: "explosion.middle", Glyph: "-", GlyphVertical: "|"}
	if p.GlyphRune(false) != '-' || p.GlyphRune(true) != '|' {
		t.Error("orientation-specific glyphs not honoured")
	}

	plain := PrefabDef{ID: "bomb", Glyph: "o"}
	if plain.GlyphRune(true) != 'o' {
		t.Error("missing vertical glyph should fall back to Glyph")
	}

	empty := PrefabDef{}
	if empty.GlyphRune(false) != '?' {
		t.Error("empty glyph should render as '?'")
	}
}

func TestParse(t *testing.T) {
	type small struct {
		N int `json:"n"`
	}

	got, err := Parse[small]("inline", []byte(`{"n": 4}`))
	if err != nil || got.N != 4 {
		t.Errorf("Parse() = %v, %v", got, err)
	}

	if _, err := Parse[small]("broken", []byte(`{`)); err == nil || !strings.Contains(err.Error(), "broken") {
		t.Errorf("Parse() error should name the source, got %v", err)
	}

	if _, err := Load[small]("missing.json"); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	def := TileDef{ID: "x", Color: "bogus"}
	if def.TCellColor() != tcell.ColorWhite {
		t.Error("malformed color should fall back to white")
	}
}
