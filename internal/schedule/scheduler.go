// Package schedule provides a single-threaded cooperative task scheduler
// driven by a virtual game clock.
//
// Tasks never run on their own goroutine. The owner advances the clock once
// per tick and every task whose deadline has passed runs inline, ordered by
// deadline and then by the order it was scheduled in.
package schedule

import (
	"container/heap"
	"context"
	"time"
)

// Task is a deferred unit of work.
type Task func(ctx context.Context)

// Token identifies a scheduled task so it can be cancelled.
// The zero Token never refers to a task.
type Token struct {
	id uint64
}

// Valid returns true if the token was issued by a scheduler.
func (t Token) Valid() bool {
	return t.id != 0
}

// Scheduler runs tasks against a virtual clock.
type Scheduler struct {
	now     time.Duration
	nextID  uint64
	queue   taskQueue
	pending map[uint64]*entry
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{
		pending: make(map[uint64]*entry),
	}
}

// Now returns the elapsed virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed.
// A non-positive delay runs fn on the next Advance.
func (s *Scheduler) After(delay time.Duration, fn Task) Token {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	e := &entry{
		id:       s.nextID,
		deadline: s.now + delay,
		fn:       fn,
	}
	heap.Push(&s.queue, e)
	s.pending[e.id] = e
	return Token{id: e.id}
}

// Cancel removes a pending task. Returns false if the task already ran,
// was already cancelled, or the token is invalid.
func (s *Scheduler) Cancel(token Token) bool {
	e, ok := s.pending[token.id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, e.index)
	delete(s.pending, token.id)
	return true
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by dt and runs every task that became due,
// including tasks scheduled by other tasks during this call.
// Returns the number of tasks run.
func (s *Scheduler) Advance(ctx context.Context, dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.deadline > s.now {
			break
		}
		heap.Pop(&s.queue)
		delete(s.pending, next.id)

		next.fn(ctx)
		ran++
	}
	return ran
}

// entry is a queued task.
type entry struct {
	id       uint64
	deadline time.Duration
	fn       Task
	index    int
}

// taskQueue orders entries by deadline, then by scheduling order.
type taskQueue []*entry

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].id < q[j].id
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
