// Package bomb implements bomb placement, fuses and cross-shaped blast
// propagation.
package bomb

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/schedule"
	"github.com/samdwyer/blastgrid/internal/spawn"
	"github.com/samdwyer/blastgrid/internal/telemetry"
)

// Default tuning, matching a classic single-bomb start.
const (
	DefaultCapacity          = 1
	DefaultFuse              = 3 * time.Second
	DefaultBlastRadius       = 1
	DefaultExplosionDuration = time.Second
)

// Config holds the agent's starting inventory and blast tuning.
type Config struct {
	Capacity          int           // Maximum simultaneous bombs
	Fuse              time.Duration // Delay between placement and detonation
	BlastRadius       int           // Cells travelled per direction
	ExplosionDuration time.Duration // Lifetime of blast visuals
}

// DefaultConfig returns the default agent configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:          DefaultCapacity,
		Fuse:              DefaultFuse,
		BlastRadius:       DefaultBlastRadius,
		ExplosionDuration: DefaultExplosionDuration,
	}
}

// Deps are the collaborators an Agent drives.
// Damager and Blocker may be nil: damage is skipped and nothing blocks.
type Deps struct {
	Owner     Positioner
	Blocker   Blocker
	Damager   Damager
	Spawner   Spawner
	Scheduler *schedule.Scheduler
	Logger    *slog.Logger
}

// Bomb is one placed, not yet detonated bomb.
type Bomb struct {
	Handle spawn.Handle // Spawned bomb entity
	Origin grid.Cell    // Cell the bomb was placed on
	fuse   schedule.Token
}

// Agent owns a bomb inventory and detonates the bombs it places.
// All methods must be called from the game tick.
type Agent struct {
	capacity          int
	available         int
	fuse              time.Duration
	radius            int
	explosionDuration time.Duration

	owner   Positioner
	blocker Blocker
	damager Damager
	spawner Spawner
	fuses   *schedule.Group
	logger  *slog.Logger

	pending   map[spawn.Handle]*Bomb
	order     []spawn.Handle // Placement order of pending bombs
	destroyed bool
}

// New creates an agent with a full inventory.
func New(cfg Config, deps Deps) *Agent {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = schedule.New()
	}
	capacity := max(cfg.Capacity, 0)

	return &Agent{
		capacity:          capacity,
		available:         capacity,
		fuse:              cfg.Fuse,
		radius:            max(cfg.BlastRadius, 0),
		explosionDuration: cfg.ExplosionDuration,
		owner:             deps.Owner,
		blocker:           deps.Blocker,
		damager:           deps.Damager,
		spawner:           deps.Spawner,
		fuses:             schedule.NewGroup(sched),
		logger:            logger,
		pending:           make(map[spawn.Handle]*Bomb),
	}
}

// Tick polls the place-bomb trigger for this tick.
func (a *Agent) Tick(ctx context.Context, triggered bool) {
	if triggered {
		a.PlaceBomb(ctx)
	}
}

// PlaceBomb drops a bomb on the owner's nearest cell and lights its fuse.
// Returns false, changing nothing, when no bomb is available.
func (a *Agent) PlaceBomb(ctx context.Context) bool {
	if a.destroyed || a.owner == nil || a.spawner == nil || a.available <= 0 {
		return false
	}

	tracer := telemetry.Tracer("bomb")
	_, span := tracer.Start(ctx, "bomb.place")
	defer span.End()

	cell := a.owner.Position().Round()
	b := &Bomb{
		Handle: a.spawner.Spawn(spawn.PrefabBomb, cell.Vec(), 0),
		Origin: cell,
	}
	a.available--

	b.fuse = a.fuses.After(a.fuse, func(ctx context.Context) {
		a.Detonate(ctx, b)
	})
	a.pending[b.Handle] = b
	a.order = append(a.order, b.Handle)

	span.SetAttributes(
		attribute.Int("cell.x", cell.X),
		attribute.Int("cell.y", cell.Y),
		attribute.Int("bombs.available", a.available),
	)
	a.logger.Debug("bomb placed", "cell", cell, "available", a.available)
	return true
}

// Detonate explodes a pending bomb: a centre blast, four blast lines, then the
// bomb is removed and returned to the inventory. A bomb detonates at most once;
// detonating it early cancels its fuse.
func (a *Agent) Detonate(ctx context.Context, b *Bomb) {
	if a.destroyed || b == nil {
		return
	}
	if _, ok := a.pending[b.Handle]; !ok {
		return
	}
	a.forget(b)

	tracer := telemetry.Tracer("bomb")
	ctx, span := tracer.Start(ctx, "bomb.detonate")
	defer span.End()

	// The bomb entity may have been moved since placement.
	origin := b.Origin
	if pos, ok := a.spawner.Position(b.Handle); ok {
		origin = pos.Round()
	}

	a.spawnVisual(spawn.PrefabExplosionStart, origin, 0)

	reached := 0
	for _, dir := range grid.Directions {
		reached += len(a.ExplodeLine(ctx, origin, dir, a.radius))
	}

	a.spawner.Destroy(b.Handle)
	a.restore()

	span.SetAttributes(
		attribute.Int("cell.x", origin.X),
		attribute.Int("cell.y", origin.Y),
		attribute.Int("blast.radius", a.radius),
		attribute.Int("blast.cells", reached),
		attribute.Int("bombs.available", a.available),
	)
	a.logger.Debug("bomb detonated", "cell", origin, "cells", reached, "available", a.available)
}

// ExplodeLine walks length cells from origin in dir, spawning blast segments
// and damaging each cell, and stops at the first blocked cell. The blocked cell
// itself is untouched. Returns the cells the blast reached.
func (a *Agent) ExplodeLine(ctx context.Context, origin grid.Cell, dir grid.Direction, length int) []grid.Cell {
	var reached []grid.Cell
	step := dir.Delta()

	for i := 1; i <= length; i++ {
		cell := origin.Add(step.Scale(i))

		if a.blocker != nil && a.blocker.IsBlocked(cell) {
			break
		}

		prefab := spawn.PrefabExplosionMiddle
		if i == length {
			prefab = spawn.PrefabExplosionEnd
		}
		a.spawnVisual(prefab, cell, dir.Angle())

		// Destructible tiles take damage but never stop the blast.
		if a.damager != nil {
			a.damager.ApplyDamage(ctx, cell.Vec(), 1)
		}
		reached = append(reached, cell)
	}
	return reached
}

// AddBombCapacity grants one more simultaneous bomb.
func (a *Agent) AddBombCapacity() {
	if a.destroyed {
		return
	}
	a.capacity++
	a.available++
}

// AddBlastRadius extends the blast by one cell per direction.
func (a *Agent) AddBlastRadius() {
	if a.destroyed {
		return
	}
	a.radius++
}

// SetBlastRadius sets the blast length. Negative values become zero.
func (a *Agent) SetBlastRadius(n int) {
	a.radius = max(n, 0)
}

// Reset cancels every lit fuse, removes the unexploded bombs and refills the
// inventory to capacity.
func (a *Agent) Reset() {
	if a.destroyed {
		return
	}
	a.clearPending()
	a.available = a.capacity
}

// Destroy invalidates the agent. Pending fuses are cancelled and never fire;
// every later call is a no-op.
func (a *Agent) Destroy() {
	if a.destroyed {
		return
	}
	a.clearPending()
	a.destroyed = true
}

// Pending returns the unexploded bombs in placement order.
func (a *Agent) Pending() []*Bomb {
	result := make([]*Bomb, 0, len(a.order))
	for _, h := range a.order {
		result = append(result, a.pending[h])
	}
	return result
}

// Available returns the number of bombs that can be placed now.
func (a *Agent) Available() int { return a.available }

// Capacity returns the maximum number of simultaneous bombs.
func (a *Agent) Capacity() int { return a.capacity }

// BlastRadius returns the current blast length.
func (a *Agent) BlastRadius() int { return a.radius }

// Destroyed returns true once Destroy has been called.
func (a *Agent) Destroyed() bool { return a.destroyed }

// restore returns a detonated bomb to the inventory, never above capacity.
func (a *Agent) restore() {
	a.available = min(a.available+1, a.capacity)
}

// forget drops a bomb from the pending set and cancels its fuse.
func (a *Agent) forget(b *Bomb) {
	a.fuses.Cancel(b.fuse)
	delete(a.pending, b.Handle)
	for i, h := range a.order {
		if h == b.Handle {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *Agent) clearPending() {
	a.fuses.Invalidate()
	if a.spawner != nil {
		for _, h := range a.order {
			a.spawner.Destroy(h)
		}
	}
	clear(a.pending)
	a.order = a.order[:0]
}

// spawnVisual spawns a short-lived blast entity centred on cell.
func (a *Agent) spawnVisual(prefab spawn.Prefab, cell grid.Cell, rotation float64) {
	if a.spawner == nil {
		return
	}
	h := a.spawner.Spawn(prefab, cell.Vec(), rotation)
	a.spawner.DestroyAfter(h, a.explosionDuration)
}
