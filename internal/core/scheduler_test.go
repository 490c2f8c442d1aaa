package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresWhenDue(t *testing.T) {
	var s Scheduler
	fired := 0
	s.After(100*time.Millisecond, func() { fired++ })

	tick := 20 * time.Millisecond
	ticks := 0
	for fired == 0 && ticks < 100 {
		s.Advance(tick)
		ticks++
	}

	if ticks != 5 {
		t.Errorf("event fired after %d ticks, expected 5", ticks)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}

	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("event fired %d times, expected exactly once", fired)
	}
}

func TestSchedulerOrdering(t *testing.T) {
	var s Scheduler
	var order []string

	s.After(20*time.Millisecond, func() { order = append(order, "late") })
	s.After(10*time.Millisecond, func() { order = append(order, "first") })
	s.After(10*time.Millisecond, func() { order = append(order, "second") })

	if n := s.Advance(50 * time.Millisecond); n != 3 {
		t.Errorf("Advance() fired %d events, expected 3", n)
	}

	expected := []string{"first", "second", "late"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestSchedulerRearmFromCallback(t *testing.T) {
	var s Scheduler
	count := 0
	var fire func()
	fire = func() {
		count++
		s.After(10*time.Millisecond, fire)
	}
	s.After(10*time.Millisecond, fire)

	for i := 0; i < 5; i++ {
		s.Advance(10 * time.Millisecond)
	}

	if count != 5 {
		t.Errorf("re-armed event fired %d times, expected 5", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}
}

func TestSchedulerDefersEventsArmedWhileAdvancing(t *testing.T) {
	var s Scheduler
	count := 0
	var fire func()
	fire = func() {
		count++
		s.After(0, fire)
	}
	s.After(0, fire)

	for i := 0; i < 3; i++ {
		if n := s.Advance(10 * time.Millisecond); n != 1 {
			t.Fatalf("Advance() fired %d events, expected 1", n)
		}
	}
	if count != 3 {
		t.Errorf("zero-delay event fired %d times, expected 3", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}
}

func TestSchedulerCancelAndReset(t *testing.T) {
	var s Scheduler
	fired := false
	s.After(time.Millisecond, func() { fired = true })

	s.Cancel()
	s.Advance(time.Second)
	if fired {
		t.Error("cancelled event should not fire")
	}

	s.Reset()
	if s.Now() != 0 {
		t.Errorf("Now() after Reset = %v, expected 0", s.Now())
	}
}
