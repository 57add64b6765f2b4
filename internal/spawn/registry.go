package spawn

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/blastgrid/internal/grid"
	"github.com/samdwyer/blastgrid/internal/schedule"
)

// Handle identifies a spawned entity.
type Handle uuid.UUID

// NilHandle never refers to a live entity.
var NilHandle = Handle(uuid.Nil)

// String returns the handle's UUID text.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Entity is a live spawned instance.
type Entity struct {
	Handle   Handle
	Prefab   Prefab
	Position grid.Vec
	Rotation float64       // Radians
	Spawned  time.Duration // Scheduler time at spawn
	seq      uint64
}

// Cell returns the entity's position rounded to the nearest cell.
func (e Entity) Cell() grid.Cell {
	return e.Position.Round()
}

// Registry is the spawn facility. It owns every live entity and removes
// entities whose lifetime was bounded with DestroyAfter.
type Registry struct {
	sched    *schedule.Scheduler
	entities map[Handle]*Entity
	expiries map[Handle]schedule.Token
	seq      uint64
}

// NewRegistry creates an empty registry using sched for timed removal.
func NewRegistry(sched *schedule.Scheduler) *Registry {
	return &Registry{
		sched:    sched,
		entities: make(map[Handle]*Entity),
		expiries: make(map[Handle]schedule.Token),
	}
}

// Spawn creates an entity of the given prefab and returns its handle.
func (r *Registry) Spawn(prefab Prefab, pos grid.Vec, rotation float64) Handle {
	h := Handle(uuid.New())
	r.seq++
	r.entities[h] = &Entity{
		Handle:   h,
		Prefab:   prefab,
		Position: pos,
		Rotation: rotation,
		Spawned:  r.sched.Now(),
		seq:      r.seq,
	}
	return h
}

// DestroyAfter removes the entity once d has elapsed on the scheduler.
// A later call replaces an earlier one. Unknown handles are ignored.
func (r *Registry) DestroyAfter(h Handle, d time.Duration) {
	if _, ok := r.entities[h]; !ok {
		return
	}
	if prev, ok := r.expiries[h]; ok {
		r.sched.Cancel(prev)
	}
	r.expiries[h] = r.sched.After(d, func(context.Context) {
		delete(r.expiries, h)
		delete(r.entities, h)
	})
}

// Destroy removes the entity immediately. Returns false if it was not live.
func (r *Registry) Destroy(h Handle) bool {
	if _, ok := r.entities[h]; !ok {
		return false
	}
	if token, ok := r.expiries[h]; ok {
		r.sched.Cancel(token)
		delete(r.expiries, h)
	}
	delete(r.entities, h)
	return true
}

// Get returns a copy of the entity.
func (r *Registry) Get(h Handle) (Entity, bool) {
	e, ok := r.entities[h]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Position returns the entity's current position.
func (r *Registry) Position(h Handle) (grid.Vec, bool) {
	e, ok := r.entities[h]
	if !ok {
		return grid.Vec{}, false
	}
	return e.Position, true
}

// Move relocates a live entity. Returns false if it was not live.
func (r *Registry) Move(h Handle, pos grid.Vec) bool {
	e, ok := r.entities[h]
	if !ok {
		return false
	}
	e.Position = pos
	return true
}

// Alive returns true if the handle refers to a live entity.
func (r *Registry) Alive(h Handle) bool {
	_, ok := r.entities[h]
	return ok
}

// Entities returns all live entities in spawn order.
func (r *Registry) Entities() []Entity {
	result := make([]Entity, 0, len(r.entities))
	for _, e := range r.entities {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].seq < result[j].seq })
	return result
}

// At returns the live entities whose rounded position is the given cell, in spawn order.
func (r *Registry) At(cell grid.Cell) []Entity {
	var result []Entity
	for _, e := range r.Entities() {
		if e.Cell() == cell {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of live entities of the given prefab.
func (r *Registry) Count(prefab Prefab) int {
	count := 0
	for _, e := range r.entities {
		if e.Prefab == prefab {
			count++
		}
	}
	return count
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}
