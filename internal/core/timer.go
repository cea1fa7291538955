package core

import "time"

// RepeatTimer paces key-repeat growth while a command key is held. The first
// press always fires immediately via the caller; the timer only governs the
// follow-up repeats.
type RepeatTimer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewRepeatTimer constructs a timer firing at the given repeats-per-second.
func NewRepeatTimer(rps int) *RepeatTimer {
	if rps <= 0 {
		rps = 12
	}
	return &RepeatTimer{step: time.Second / time.Duration(rps)}
}

// ShouldFire reports whether another repeat is due. Call once per frame
// while the key is held.
func (t *RepeatTimer) ShouldFire() bool {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.step {
		t.accumulator -= t.step
		return true
	}
	return false
}

// Rewind clears accumulated time. Call when the key is released so the next
// hold starts from a full interval.
func (t *RepeatTimer) Rewind() {
	t.accumulator = 0
	t.last = time.Time{}
}
