package game

import (
	"context"
	"testing"
	"time"

	"github.com/samdwyer/blastgrid/internal/gamedata"
	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/spawn"
	"github.com/samdwyer/blastgrid/internal/world"
)

func testConfig() Config {
	return Config{
		Seed:         7,
		TickInterval: 50 * time.Millisecond,
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
	}
}

// emptyCatalog returns a catalog whose layers generate no blocks, so tests
// can place exactly the blocks they need.
func emptyCatalog() *gamedata.Catalog {
	return gamedata.NewCatalog(gamedata.BlocksFile{
		Bomb: gamedata.BombDef{Capacity: 1, FuseMs: 3000, BlastRadius: 2, ExplosionMs: 1000},
		Tiles: []gamedata.TileDef{
			{ID: "crate", Glyph: "="},
			{ID: "brick", Glyph: "%"},
			{ID: "brick_cracked", Glyph: ":"},
		},
		Layers: []gamedata.LayerDef{
			{ID: "crate", MaxHealth: 1, StageTiles: []string{"crate"}, SpawnChance: 1, Loot: []string{"loot.bomb_up"}},
			{ID: "brick", MaxHealth: 2, StageTiles: []string{"brick_cracked", "brick"}},
		},
		Prefabs: []gamedata.PrefabDef{{ID: "loot.bomb_up", Glyph: "B"}},
	})
}

// lootAt ignores blast visuals that may still be alive on the cell.
func lootAt(m *Match, cell grid.Cell) []spawn.Entity {
	var loot []spawn.Entity
	for _, e := range m.Entities.At(cell) {
		if e.Prefab.IsLoot() {
			loot = append(loot, e)
		}
	}
	return loot
}

func TestNewMatchWithEmbeddedData(t *testing.T) {
	m := NewMatch(context.Background(), testConfig(), gamedata.MustLoadCatalog(), nil)

	if m.Player.Cell() != m.Arena.Spawn {
		t.Errorf("player at %v, want spawn %v", m.Player.Cell(), m.Arena.Spawn)
	}
	if m.Remaining() == 0 {
		t.Error("embedded densities should generate blocks")
	}
	if m.State() != StatePlaying {
		t.Errorf("State() = %v, want playing", m.State())
	}
	if m.Agent.Capacity() != 1 || m.Agent.BlastRadius() != 2 {
		t.Errorf("agent capacity=%d radius=%d, want 1/2", m.Agent.Capacity(), m.Agent.BlastRadius())
	}
	if m.Terrain.Layer("brick") == nil || m.Terrain.Layer("crate") == nil {
		t.Error("both embedded layers should be configured")
	}
}

func TestNewMatchReproducible(t *testing.T) {
	ctx := context.Background()
	a := NewMatch(ctx, testConfig(), gamedata.MustLoadCatalog(), nil)
	b := NewMatch(ctx, testConfig(), gamedata.MustLoadCatalog(), nil)

	for id, tm := range a.Tiles {
		other := b.Tiles[id]
		if tm.Count() != other.Count() {
			t.Fatalf("layer %s: %d != %d blocks", id, tm.Count(), other.Count())
		}
		tm.Each(func(cell grid.Cell, tile grid.TileID) {
			if other.GetTile(cell) != tile {
				t.Errorf("layer %s differs at %v", id, cell)
			}
		})
	}
}

func TestMovementBlockedByWallsAndBlocks(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)
	start := m.Player.Cell()

	// Spawn is in the top-left corner; up and left are border walls.
	m.Step(ctx, Input{DY: 1}, 0)
	m.Step(ctx, Input{DX: -1}, 0)
	if m.Player.Cell() != start {
		t.Fatalf("player walked into a wall: %v", m.Player.Cell())
	}

	m.Tiles["crate"].SetTile(grid.Cell{X: start.X + 1, Y: start.Y}, "crate")
	m.Step(ctx, Input{DX: 1}, 0)
	if m.Player.Cell() != start {
		t.Errorf("player walked into a crate: %v", m.Player.Cell())
	}

	m.Step(ctx, Input{DY: -1}, 0)
	if m.Player.Cell() != (grid.Cell{X: start.X, Y: start.Y - 1}) {
		t.Errorf("player should move down onto open floor, at %v", m.Player.Cell())
	}
}

func TestPlayerCanLeaveButNotReenterBomb(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)
	start := m.Player.Cell()

	m.Step(ctx, Input{PlaceBomb: true}, 0)
	if m.Entities.Count(spawn.PrefabBomb) != 1 {
		t.Fatal("bomb not placed")
	}

	m.Step(ctx, Input{DX: 1}, 0)
	if m.Player.Cell() != (grid.Cell{X: start.X + 1, Y: start.Y}) {
		t.Fatalf("player should walk off the bomb, at %v", m.Player.Cell())
	}

	m.Step(ctx, Input{DX: -1}, 0)
	if m.Player.Cell() == start {
		t.Error("player walked back onto a bomb")
	}
}

func TestBlastBreaksCrateDropsLootAndClearsArena(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)
	start := m.Player.Cell()
	crate := grid.Cell{X: start.X + 2, Y: start.Y}
	m.Tiles["crate"].SetTile(crate, "crate")

	m.Step(ctx, Input{PlaceBomb: true}, 0)
	if m.Agent.Available() != 0 {
		t.Fatalf("Available() = %d after placing", m.Agent.Available())
	}

	m.Step(ctx, Input{}, 3*time.Second)
	if m.Tiles["crate"].HasTile(crate) {
		t.Fatal("crate inside blast radius should break")
	}
	if m.Agent.Available() != 1 {
		t.Errorf("Available() = %d after detonation, want 1", m.Agent.Available())
	}
	if m.State() != StateCleared {
		t.Errorf("State() = %v, want cleared", m.State())
	}

	loot := lootAt(m, crate)
	if len(loot) != 1 || loot[0].Prefab != LootBombUp {
		t.Fatalf("loot at crate = %v, want one bomb_up", loot)
	}

	m.Step(ctx, Input{DX: 1}, 0)
	m.Step(ctx, Input{DX: 1}, 0)
	if m.Player.Cell() != crate {
		t.Fatalf("player at %v, want %v", m.Player.Cell(), crate)
	}
	if m.Agent.Capacity() != 2 || m.Agent.Available() != 2 {
		t.Errorf("pickup should grant capacity: capacity=%d available=%d", m.Agent.Capacity(), m.Agent.Available())
	}
	if len(lootAt(m, crate)) != 0 {
		t.Error("collected loot should be removed")
	}
}

func TestBrickTakesTwoBlasts(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)
	start := m.Player.Cell()
	brick := grid.Cell{X: start.X, Y: start.Y - 2}
	m.Tiles["brick"].SetTile(brick, "brick")

	m.Step(ctx, Input{PlaceBomb: true}, 3*time.Second)
	if got := m.Tiles["brick"].GetTile(brick); got != "brick_cracked" {
		t.Fatalf("brick after one blast = %q, want brick_cracked", got)
	}
	if hp, ok := m.Terrain.Health("brick", brick); !ok || hp != 1 {
		t.Errorf("brick hp = %d, %v; want 1", hp, ok)
	}

	m.Step(ctx, Input{PlaceBomb: true}, 3*time.Second)
	if m.Tiles["brick"].HasTile(brick) {
		t.Error("brick should break on the second blast")
	}
}

func TestBlastRadiusPickup(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)
	next := grid.Cell{X: m.Player.Cell().X + 1, Y: m.Player.Cell().Y}
	m.Entities.Spawn(LootBlastUp, next.Vec(), 0)
	m.Entities.Spawn(spawn.Prefab("loot.mystery"), next.Vec(), 0)

	m.Step(ctx, Input{DX: 1}, 0)

	if m.Agent.BlastRadius() != 3 {
		t.Errorf("BlastRadius() = %d, want 3", m.Agent.BlastRadius())
	}
	if m.Entities.Len() != 0 {
		t.Errorf("%d entities left, want all loot collected", m.Entities.Len())
	}
}

func TestStatusLine(t *testing.T) {
	m := NewMatch(context.Background(), testConfig(), emptyCatalog(), nil)

	got := statusLine(m)
	want := "Bombs 1/1  Blast 2  Blocks 0"
	if got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}
}

func TestRestartStartsFreshRound(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), gamedata.MustLoadCatalog(), nil)
	start := m.Player.Cell()

	m.Agent.AddBombCapacity()
	m.Step(ctx, Input{PlaceBomb: true}, 0)
	m.Step(ctx, Input{DY: -1}, 0)
	if len(m.Agent.Pending()) != 1 || m.Entities.Count(spawn.PrefabBomb) != 1 {
		t.Fatal("expected one lit bomb before restart")
	}

	m.Step(ctx, Input{Restart: true}, 0)

	if m.Round() != 2 {
		t.Errorf("Round() = %d, want 2", m.Round())
	}
	if m.Player.Cell() != start {
		t.Errorf("player at %v, want spawn %v", m.Player.Cell(), start)
	}
	if len(m.Agent.Pending()) != 0 || m.Entities.Len() != 0 {
		t.Errorf("pending=%d entities=%d, want a clean arena", len(m.Agent.Pending()), m.Entities.Len())
	}
	if m.Agent.Available() != 2 || m.Agent.Capacity() != 2 {
		t.Errorf("available=%d capacity=%d, want a full inventory of 2",
			m.Agent.Available(), m.Agent.Capacity())
	}
	if m.Remaining() == 0 {
		t.Error("new round should generate blocks")
	}
	for id := range m.Tiles {
		if n := m.Terrain.Tracked(id); n != 0 {
			t.Errorf("layer %s tracks %d damaged cells after restart", id, n)
		}
	}

	// The old fuse must not fire into the new round.
	m.Step(ctx, Input{}, time.Hour)
	if m.Agent.Available() != 2 {
		t.Errorf("Available() = %d after the old fuse time, want 2", m.Agent.Available())
	}
}

func TestRestartAfterClearResumesPlay(t *testing.T) {
	ctx := context.Background()
	m := NewMatch(ctx, testConfig(), emptyCatalog(), nil)

	m.Step(ctx, Input{}, 0)
	if m.State() != StateCleared {
		t.Fatalf("State() = %v, want cleared for an empty arena", m.State())
	}

	m.Tiles["crate"].SetTile(grid.Cell{X: 5, Y: 5}, "crate")
	m.NewRound(ctx)
	if m.State() != StatePlaying {
		t.Errorf("State() = %v after NewRound, want playing", m.State())
	}
	if m.Tiles["crate"].HasTile(grid.Cell{X: 5, Y: 5}) {
		t.Error("tiles from the previous round should be cleared")
	}
}
