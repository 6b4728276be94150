package core

import (
	"sort"
	"time"
)

// FrameClock is a monotonic clock advanced explicitly by the simulation.
// It never reads wall time, so runs are reproducible.
type FrameClock struct {
	now   time.Duration
	frame uint64
}

// Advance moves the clock forward by one frame of length dt.
func (c *FrameClock) Advance(dt time.Duration) {
	c.now += dt
	c.frame++
}

// Now returns the elapsed simulated time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Frame returns the number of frames advanced so far.
func (c *FrameClock) Frame() uint64 {
	return c.frame
}

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Duration
	fn       func()
}

// Scheduler runs deferred callbacks against a FrameClock.
// Callbacks run from Run, on the tick whose time has reached their deadline,
// in deadline order (ties in scheduling order).
type Scheduler struct {
	clock  *FrameClock
	nextID TimerID
	timers []timer
	due    []timer // batch being fired by Run
}

// NewScheduler creates a scheduler bound to the given clock.
func NewScheduler(clock *FrameClock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed on the clock.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{
		id:       s.nextID,
		deadline: s.clock.Now() + d,
		fn:       fn,
	})
	return s.nextID
}

// Cancel removes a pending timer. Returns false if it already fired or was
// cancelled.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	// A callback may cancel a sibling that is due in the same batch.
	for i, t := range s.due {
		if t.id == id && t.fn != nil {
			s.due[i].fn = nil
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
	for i := range s.due {
		s.due[i].fn = nil
	}
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Run fires every timer whose deadline has passed. Timers scheduled by a
// callback are not run until the next call.
func (s *Scheduler) Run() int {
	now := s.clock.Now()

	s.due = s.due[:0]
	rest := s.timers[:0]
	for _, t := range s.timers {
		if t.deadline <= now {
			s.due = append(s.due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.timers = rest

	sort.SliceStable(s.due, func(i, j int) bool {
		return s.due[i].deadline < s.due[j].deadline
	})
	fired := 0
	for i := range s.due {
		fn := s.due[i].fn
		if fn == nil {
			continue
		}
		s.due[i].fn = nil
		fn()
		fired++
	}
	s.due = s.due[:0]
	return fired
}
