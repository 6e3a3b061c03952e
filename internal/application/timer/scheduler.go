// Package timer runs deferred gameplay actions against a logical clock.
//
// Actions are keyed by (entity, kind). Scheduling a key that is already
// pending replaces it, and any pending key can be cancelled. Due actions run
// only when the owner calls Advance, so the order relative to the frame
// update is fixed and tests never wait on a wall clock.
package timer

import (
	"time"

	"github.com/younwookim/arcade/internal/domain/entity"
)

// Kind names what a deferred action does.
type Kind string

// Key identifies a pending action.
type Key struct {
	Entity entity.EntityID
	Kind   Kind
}

// Func is the body of a deferred action. now is the clock value passed to
// Advance, which may be later than the due time.
type Func func(now time.Duration)

type task struct {
	key Key
	at  time.Duration
	seq uint64
	fn  Func
}

// Scheduler holds pending actions
type Scheduler struct {
	tasks []task
	seq   uint64
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{}
}

// At schedules fn to run once the clock reaches at, replacing any pending
// action with the same key.
func (s *Scheduler) At(key Key, at time.Duration, fn Func) {
	s.Cancel(key)
	s.seq++
	s.tasks = append(s.tasks, task{key: key, at: at, seq: s.seq, fn: fn})
}

// After schedules fn to run delay after now.
func (s *Scheduler) After(key Key, now, delay time.Duration, fn Func) {
	s.At(key, now+delay, fn)
}

// Cancel drops the pending action for key. It reports whether one existed.
func (s *Scheduler) Cancel(key Key) bool {
	for i, t := range s.tasks {
		if t.key == key {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelEntity drops every pending action owned by id.
func (s *Scheduler) CancelEntity(id entity.EntityID) int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.key.Entity == id {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed
}

// Pending reports whether an action is scheduled for key.
func (s *Scheduler) Pending(key Key) bool {
	for _, t := range s.tasks {
		if t.key == key {
			return true
		}
	}
	return false
}

// DueAt returns the due time of key's pending action.
func (s *Scheduler) DueAt(key Key) (time.Duration, bool) {
	for _, t := range s.tasks {
		if t.key == key {
			return t.at, true
		}
	}
	return 0, false
}

// Len returns the number of pending actions
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Clear drops every pending action
func (s *Scheduler) Clear() {
	s.tasks = nil
}

// Advance runs every action due at or before now, earliest first; ties run
// in scheduling order. Actions scheduled by a running action are eligible in
// the same call if they are already due. It returns how many actions ran.
func (s *Scheduler) Advance(now time.Duration) int {
	ran := 0
	for {
		i := s.nextDue(now)
		if i < 0 {
			return ran
		}
		t := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		t.fn(now)
		ran++
	}
}

func (s *Scheduler) nextDue(now time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.at > now {
			continue
		}
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}
