package core

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func TestSchedulerFiresAfterDeadline(t *testing.T) {
	var clock FrameClock
	s := NewScheduler(&clock)

	fired := 0
	s.After(50*time.Millisecond, func() { fired++ })

	for i := 0; i < 3; i++ {
		clock.Advance(frame)
		s.Run()
	}
	if fired != 0 {
		t.Fatalf("timer fired early at %v", clock.Now())
	}

	clock.Advance(frame) // 64ms
	s.Run()
	if fired != 1 {
		t.Fatalf("timer should fire once deadline passed, fired=%d", fired)
	}

	clock.Advance(frame)
	s.Run()
	if fired != 1 {
		t.Errorf("timer should fire only once, fired=%d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var clock FrameClock
	s := NewScheduler(&clock)

	fired := false
	id := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel of a pending timer should succeed")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}

	clock.Advance(frame)
	s.Run()
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCancelSiblingInSameBatch(t *testing.T) {
	var clock FrameClock
	s := NewScheduler(&clock)

	var second TimerID
	secondFired := false
	s.After(5*time.Millisecond, func() { s.Cancel(second) })
	second = s.After(10*time.Millisecond, func() { secondFired = true })

	clock.Advance(frame)
	if n := s.Run(); n != 1 {
		t.Errorf("Run() fired %d timers, expected 1", n)
	}
	if secondFired {
		t.Error("timer cancelled by an earlier callback in the same batch still fired")
	}
}

func TestSchedulerOrderAndCancelAll(t *testing.T) {
	var clock FrameClock
	s := NewScheduler(&clock)

	var order []int
	s.After(30*time.Millisecond, func() { order = append(order, 3) })
	s.After(10*time.Millisecond, func() { order = append(order, 1) })
	s.After(20*time.Millisecond, func() { order = append(order, 2) })

	clock.Advance(40 * time.Millisecond)
	s.Run()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("callbacks ran in order %v, expected [1 2 3]", order)
	}

	s.After(time.Millisecond, func() { t.Error("CancelAll should drop pending timers") })
	s.CancelAll()
	clock.Advance(frame)
	s.Run()
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	c.Advance(frame)
	c.Advance(frame)

	if c.Now() != 2*frame || c.Frame() != 2 {
		t.Errorf("clock = (%v, %d), expected (%v, 2)", c.Now(), c.Frame(), 2*frame)
	}
}
