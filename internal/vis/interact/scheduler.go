package interact

import (
	"sort"
	"time"
)

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Cancel prevents the callback from running. It reports whether the task
	// was still pending.
	Cancel() bool
}

// Scheduler is the timer capability the engine runs on. Callbacks must be
// invoked on the same thread that feeds pointer events and draws frames.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Task
}

// FrameScheduler is a Scheduler drained explicitly by the UI loop. Each frame
// calls Advance with the frame time; due callbacks run in due order (ties in
// posting order). Tests drive it with simulated time.
type FrameScheduler struct {
	now     time.Time
	seq     uint64
	pending []*frameTask
}

type frameTask struct {
	due       time.Time
	seq       uint64
	f         func()
	cancelled bool
	done      bool
}

func (t *frameTask) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// NewFrameScheduler creates a scheduler whose clock starts at start.
func NewFrameScheduler(start time.Time) *FrameScheduler {
	return &FrameScheduler{now: start}
}

// Now returns the time of the last Advance.
func (s *FrameScheduler) Now() time.Time {
	return s.now
}

// AfterFunc posts f to run once the clock reaches Now()+d.
func (s *FrameScheduler) AfterFunc(d time.Duration, f func()) Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &frameTask{due: s.now.Add(d), seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// SetNow moves the clock to now (never backwards) without running tasks.
// Input arriving in a frame must see the frame time, not the last Advance.
func (s *FrameScheduler) SetNow(now time.Time) {
	if now.After(s.now) {
		s.now = now
	}
}

// Advance moves the clock to now (never backwards) and runs every due task.
// Tasks posted by a running task run in the same Advance if already due.
func (s *FrameScheduler) Advance(now time.Time) {
	s.SetNow(now)
	for {
		t := s.popDue()
		if t == nil {
			return
		}
		t.done = true
		t.f()
	}
}

// Step advances the clock by d.
func (s *FrameScheduler) Step(d time.Duration) {
	s.Advance(s.now.Add(d))
}

// Next returns the due time of the earliest pending task.
func (s *FrameScheduler) Next() (time.Time, bool) {
	s.compact()
	if len(s.pending) == 0 {
		return time.Time{}, false
	}
	next := s.pending[0].due
	for _, t := range s.pending[1:] {
		if t.due.Before(next) {
			next = t.due
		}
	}
	return next, true
}

// Pending returns the number of live tasks.
func (s *FrameScheduler) Pending() int {
	s.compact()
	return len(s.pending)
}

func (s *FrameScheduler) popDue() *frameTask {
	s.compact()
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	if len(s.pending) == 0 || s.pending[0].due.After(s.now) {
		return nil
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	return t
}

func (s *FrameScheduler) compact() {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = live
}
