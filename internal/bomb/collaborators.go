package bomb

//go:generate go tool mockgen -source=collaborators.go -destination=./mocks/collaborators_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/spawn"
)

// Blocker answers whether a cell stops a blast.
type Blocker interface {
	IsBlocked(cell grid.Cell) bool
}

// Damager applies blast damage to destructible terrain.
type Damager interface {
	ApplyDamage(ctx context.Context, pos grid.Vec, amount int) bool
}

// Spawner creates and removes bomb and blast entities.
type Spawner interface {
	Spawn(prefab spawn.Prefab, pos grid.Vec, rotation float64) spawn.Handle
	DestroyAfter(h spawn.Handle, d time.Duration)
	Destroy(h spawn.Handle) bool
	Position(h spawn.Handle) (grid.Vec, bool)
}

// Positioner is whatever carries the agent around, usually the player.
type Positioner interface {
	Position() grid.Vec
}
