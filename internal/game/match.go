package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/samdwyer/blastgrid/internal/bomb"
	"github.com/samdwyer/blastgrid/internal/destructible"
	"github.com/samdwyer/blastgrid/internal/entity"
	"github.com/samdwyer/blastgrid/internal/gamedata"
	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/schedule"
	"github.com/samdwyer/blastgrid/internal/spawn"
	"github.com/samdwyer/blastgrid/internal/world"
)

// Input is the player's intent for one tick.
type Input struct {
	DX, DY    int  // Movement in cells; Y grows upward
	PlaceBomb bool // The place-bomb trigger for this tick
	Restart   bool // Start a new round on a fresh arena
}

// Match holds all rule state for one arena. It is driven one tick at a time
// and never touches the terminal.
type Match struct {
	Arena    *world.Arena
	Terrain  *destructible.Grid
	Tiles    map[string]*grid.TileMap // Destructible tile layers by layer ID
	Entities *spawn.Registry
	Player   *entity.Player
	Agent    *bomb.Agent

	sched  *schedule.Scheduler
	fills  []world.Fill
	state  State
	round  int
	logger *slog.Logger
}

// NewMatch generates an arena from the catalog and places the player on its spawn cell.
func NewMatch(ctx context.Context, cfg Config, catalog *gamedata.Catalog, logger *slog.Logger) *Match {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := schedule.New()
	registry := spawn.NewRegistry(sched)
	arena := world.NewArena(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))

	defs := catalog.Layers()
	tiles := make(map[string]*grid.TileMap, len(defs))
	layers := make([]destructible.Layer, 0, len(defs))
	fills := make([]world.Fill, 0, len(defs))

	for _, def := range defs {
		tm := grid.NewCenteredTileMap()
		tiles[def.ID] = tm
		layers = append(layers, layerFromDef(def, tm))
		fills = append(fills, world.Fill{
			Layer:   tm,
			Tile:    grid.TileID(def.FullTile()),
			Density: def.Density,
		})
	}

	arena.Generate(ctx, fills)

	// Loot rolls draw from their own stream so arena layout and drops stay
	// independently reproducible.
	terrain := destructible.New(layers, registry, rand.New(rand.NewSource(seed+1)))
	player := entity.NewPlayer(arena.Spawn)

	b := catalog.Bomb()
	agent := bomb.New(bomb.Config{
		Capacity:          b.Capacity,
		Fuse:              b.Fuse(),
		BlastRadius:       b.BlastRadius,
		ExplosionDuration: b.ExplosionDuration(),
	}, bomb.Deps{
		Owner:     player,
		Blocker:   arena,
		Damager:   terrain,
		Spawner:   registry,
		Scheduler: sched,
		Logger:    logger,
	})

	logger.Info("match started",
		"seed", seed,
		"width", arena.Width,
		"height", arena.Height,
		"destructibles", countTiles(tiles),
	)

	return &Match{
		Arena:    arena,
		Terrain:  terrain,
		Tiles:    tiles,
		Entities: registry,
		Player:   player,
		Agent:    agent,
		sched:    sched,
		fills:    fills,
		state:    StatePlaying,
		round:    1,
		logger:   logger,
	}
}

// layerFromDef converts a data definition into a destructible layer backed by tm.
func layerFromDef(def gamedata.LayerDef, tm *grid.TileMap) destructible.Layer {
	stages := make([]grid.TileID, len(def.StageTiles))
	for i, s := range def.StageTiles {
		stages[i] = grid.TileID(s)
	}
	loot := make([]spawn.Prefab, len(def.Loot))
	for i, s := range def.Loot {
		loot[i] = spawn.Prefab(s)
	}
	return destructible.Layer{
		ID:                  def.ID,
		Tiles:               tm,
		MaxHealth:           def.MaxHealth,
		StageTiles:          stages,
		BreakEffect:         spawn.Prefab(def.BreakEffect),
		BreakEffectDuration: def.BreakEffectDuration(),
		Loot:                loot,
		SpawnChance:         def.SpawnChance,
	}
}

// Step advances the match by one tick of length dt.
func (m *Match) Step(ctx context.Context, in Input, dt time.Duration) {
	if in.Restart {
		m.NewRound(ctx)
	}
	if in.DX != 0 || in.DY != 0 {
		m.tryMove(in.DX, in.DY)
	}
	m.Agent.Tick(ctx, in.PlaceBomb)
	m.collectPickups()
	m.sched.Advance(ctx, dt)

	if m.state == StatePlaying && m.Remaining() == 0 {
		m.state = StateCleared
		m.logger.Info("arena cleared", "elapsed", m.sched.Now())
	}
}

// NewRound regenerates the arena and puts the player back on the spawn cell
// with a full bomb inventory. Upgrades collected so far are kept.
func (m *Match) NewRound(ctx context.Context) {
	m.Agent.Reset()
	for _, e := range m.Entities.Entities() {
		m.Entities.Destroy(e.Handle)
	}
	for _, tm := range m.Tiles {
		tm.Clear()
	}
	m.Terrain.Reset()

	m.Arena.Generate(ctx, m.fills)
	m.Player.Pos = m.Arena.Spawn.Vec()
	m.state = StatePlaying
	m.round++

	m.logger.Info("round started",
		"round", m.round,
		"destructibles", m.Remaining(),
		"capacity", m.Agent.Capacity(),
		"radius", m.Agent.BlastRadius(),
	)
}

// Round returns the current round number, starting at 1.
func (m *Match) Round() int {
	return m.round
}

// tryMove attempts to move the player by the given delta in cells.
func (m *Match) tryMove(dx, dy int) {
	from := m.Player.Cell()
	to := from.Add(grid.Cell{X: dx, Y: dy})

	if !m.CanEnter(from, to) {
		return
	}
	m.Player.Move(float64(dx), float64(dy))
}

// CanEnter returns true if the player may step from one cell into another.
// Walls, destructible blocks and bombs are obstacles, except that a player
// may always walk off the bomb they are standing on.
func (m *Match) CanEnter(from, to grid.Cell) bool {
	if !m.Arena.IsPassable(to) {
		return false
	}
	for _, tm := range m.Tiles {
		if tm.HasTile(to) {
			return false
		}
	}
	if to != from && m.bombAt(to) {
		return false
	}
	return true
}

func (m *Match) bombAt(cell grid.Cell) bool {
	for _, e := range m.Entities.At(cell) {
		if e.Prefab == spawn.PrefabBomb {
			return true
		}
	}
	return false
}

// Remaining returns the number of destructible blocks left in the arena.
func (m *Match) Remaining() int {
	return countTiles(m.Tiles)
}

// State returns the current game state.
func (m *Match) State() State {
	return m.state
}

// Now returns the elapsed game time.
func (m *Match) Now() time.Duration {
	return m.sched.Now()
}

func countTiles(tiles map[string]*grid.TileMap) int {
	total := 0
	for _, tm := range tiles {
		total += tm.Count()
	}
	return total
}
