package core

import (
	"sort"
	"time"
)

// Scheduler is a deterministic timer queue advanced by simulation time.
// It replaces host-framework callbacks (e.g. "run this in 100ms") so that
// delayed events fire on an exact tick regardless of wall-clock jitter.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	events []scheduled
}

type scheduled struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// After schedules fn to run once the simulation clock has advanced by d.
// Events due at the same instant fire in scheduling order.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	ev := scheduled{at: s.now + d, seq: s.seq, fn: fn}

	i := sort.Search(len(s.events), func(i int) bool {
		e := s.events[i]
		return e.at > ev.at || (e.at == ev.at && e.seq > ev.seq)
	})
	s.events = append(s.events, scheduled{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// Advance moves the clock forward by dt and runs every event that became due.
// Events scheduled by a running callback wait for the next call, even when
// they are already due. Returns the number of events fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	last := s.seq
	fired := 0
	for len(s.events) > 0 && s.events[0].at <= s.now && s.events[0].seq <= last {
		ev := s.events[0]
		s.events = s.events[1:]
		ev.fn()
		fired++
	}
	return fired
}

// Now returns the current simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of events waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.events)
}

// Cancel drops every pending event without running it.
func (s *Scheduler) Cancel() {
	s.events = nil
}

// Reset cancels all events and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.Cancel()
	s.now = 0
	s.seq = 0
}
