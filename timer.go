package flamerush

import "time"

// Scheduler runs periodic and one-shot callbacks against a logical clock
// advanced by the game loop. Callbacks run synchronously inside Advance, so
// they never race with the loop. Pausing freezes the clock.
type Scheduler struct {
	now    time.Duration
	timers []timer
	nextID uint32
	paused bool
}

type timer struct {
	id     uint32
	due    time.Duration
	period time.Duration // zero for one-shot
	fn     func()
}

// TimerHandle cancels a scheduled callback. The zero value is inert.
type TimerHandle struct {
	id uint32
	s  *Scheduler
}

// NewScheduler returns a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every calls fn every period, first at now+period.
func (s *Scheduler) Every(period time.Duration, fn func()) TimerHandle {
	if period <= 0 {
		panic("flamerush: timer period must be positive")
	}
	return s.add(period, period, fn)
}

// After calls fn once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerHandle {
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) TimerHandle {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + delay, period: period, fn: fn})
	return TimerHandle{id: s.nextID, s: s}
}

// Advance moves the clock forward by dt and fires every callback that came
// due, earliest first. A periodic timer that fell behind fires once per
// missed period. No-op while paused.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused {
		return
	}
	s.now += dt
	for {
		i := s.nextDue()
		if i < 0 {
			return
		}
		t := s.timers[i]
		if t.period > 0 {
			s.timers[i].due += t.period
		} else {
			s.removeAt(i)
		}
		t.fn()
		if s.paused {
			return
		}
	}
}

// nextDue returns the index of the earliest timer due at or before now, or -1.
func (s *Scheduler) nextDue() int {
	best := -1
	for i := range s.timers {
		if s.timers[i].due > s.now {
			continue
		}
		if best < 0 || s.timers[i].due < s.timers[best].due {
			best = i
		}
	}
	return best
}

func (s *Scheduler) removeAt(i int) {
	s.timers = append(s.timers[:i], s.timers[i+1:]...)
}

// Now returns the logical time elapsed while unpaused.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pause stops the clock; Advance becomes a no-op.
func (s *Scheduler) Pause() { s.paused = true }

// Resume restarts the clock.
func (s *Scheduler) Resume() { s.paused = false }

// Paused reports whether the clock is stopped.
func (s *Scheduler) Paused() bool { return s.paused }

// Len returns the number of pending timers.
func (s *Scheduler) Len() int { return len(s.timers) }

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
}

// Cancel stops the timer. Cancelling a fired one-shot or an already
// cancelled timer does nothing.
func (h TimerHandle) Cancel() {
	if h.s == nil {
		return
	}
	for i := range h.s.timers {
		if h.s.timers[i].id == h.id {
			h.s.removeAt(i)
			return
		}
	}
}

// Active reports whether the timer is still pending.
func (h TimerHandle) Active() bool {
	if h.s == nil {
		return false
	}
	for i := range h.s.timers {
		if h.s.timers[i].id == h.id {
			return true
		}
	}
	return false
}

// Remaining returns the time until the timer next fires, or zero when it is
// not pending.
func (h TimerHandle) Remaining() time.Duration {
	if h.s == nil {
		return 0
	}
	for i := range h.s.timers {
		if h.s.timers[i].id == h.id {
			return h.s.timers[i].due - h.s.now
		}
	}
	return 0
}
