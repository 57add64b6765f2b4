package schedule

import (
	"context"
	"time"
)

// Group tracks the tasks one owner has scheduled so they can be invalidated
// together when the owner goes away.
//
// Every task scheduled through a Group is stamped with the group's current
// generation. Invalidate bumps the generation and cancels everything
// outstanding; a stale task that still reaches the queue head is skipped.
type Group struct {
	sched      *Scheduler
	generation uint64
	tokens     map[Token]struct{}
}

// NewGroup creates a group bound to a scheduler.
func NewGroup(s *Scheduler) *Group {
	return &Group{
		sched:  s,
		tokens: make(map[Token]struct{}),
	}
}

// After schedules fn on the underlying scheduler under the current generation.
func (g *Group) After(delay time.Duration, fn Task) Token {
	gen := g.generation
	var token Token
	token = g.sched.After(delay, func(ctx context.Context) {
		delete(g.tokens, token)
		if gen != g.generation {
			return
		}
		fn(ctx)
	})
	g.tokens[token] = struct{}{}
	return token
}

// Cancel cancels a single task scheduled through this group.
func (g *Group) Cancel(token Token) bool {
	if _, ok := g.tokens[token]; !ok {
		return false
	}
	delete(g.tokens, token)
	return g.sched.Cancel(token)
}

// Invalidate cancels every outstanding task and starts a new generation.
// Returns the number of tasks cancelled.
func (g *Group) Invalidate() int {
	g.generation++
	cancelled := 0
	for token := range g.tokens {
		if g.sched.Cancel(token) {
			cancelled++
		}
	}
	clear(g.tokens)
	return cancelled
}

// Pending returns the number of outstanding tasks in the group.
func (g *Group) Pending() int {
	return len(g.tokens)
}

// Generation returns the current generation counter.
func (g *Group) Generation() uint64 {
	return g.generation
}
