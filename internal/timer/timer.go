// Package timer implements the rest timer as a clock-driven countdown state
// machine. The core never spawns goroutines or sleeps; callers read the
// remaining time whenever they need it and the timer derives it from the
// injected clock, so it stays correct without ticking.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// maxDuration is the longest settable countdown, 99:59 on the clock face.
const maxDuration = 99*time.Minute + 59*time.Second

// Timer is a pausable countdown.
type Timer struct {
	mu        sync.Mutex
	now       func() time.Time
	duration  time.Duration // as originally set, for progress
	remaining time.Duration // at the last pause/set
	startedAt time.Time
	running   bool
}

// New creates a stopped timer using the real clock.
func New() *Timer {
	return NewWithClock(time.Now)
}

// NewWithClock creates a stopped timer with an injected clock.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Set stops the timer and arms it with a new duration, clamped to 99:59.
// Non-positive durations zero the timer.
func (t *Timer) Set(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d < 0 {
		d = 0
	}
	if d > maxDuration {
		d = maxDuration
	}
	t.duration = d
	t.remaining = d
	t.running = false
}

// Preset arms the timer with a whole-minute preset.
func (t *Timer) Preset(minutes int) {
	t.Set(time.Duration(minutes) * time.Minute)
}

// Start begins (or resumes) the countdown. Starting an expired or running
// timer is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.remaining <= 0 {
		return
	}
	t.startedAt = t.now()
	t.running = true
}

// Pause freezes the countdown at its current remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settle()
}

// settle folds elapsed running time into remaining. Callers hold the lock.
func (t *Timer) settle() {
	if !t.running {
		return
	}
	t.remaining -= t.now().Sub(t.startedAt)
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.running = false
}

// Toggle starts a paused timer or pauses a running one.
func (t *Timer) Toggle() {
	t.mu.Lock()
	running := t.running
	t.mu.Unlock()
	if running {
		t.Pause()
	} else {
		t.Start()
	}
}

// Reset stops the countdown and restores the originally set duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.remaining = t.duration
	t.running = false
}

// Stop clears the timer entirely.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.duration = 0
	t.remaining = 0
	t.running = false
}

// Remaining returns the time left, zero once expired.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	rem := t.remaining
	if t.running {
		rem -= t.now().Sub(t.startedAt)
	}
	if rem < 0 {
		rem = 0
	}
	return rem
}

// Running reports whether the countdown is active and not yet expired.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return false
	}
	return t.remaining-t.now().Sub(t.startedAt) > 0
}

// Expired reports whether a set timer has counted down to zero.
func (t *Timer) Expired() bool {
	t.mu.Lock()
	d := t.duration
	t.mu.Unlock()
	return d > 0 && t.Remaining() == 0
}

// Progress returns the elapsed fraction of the set duration in [0, 1].
// An unset timer reports zero progress.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	d := t.duration
	t.mu.Unlock()
	if d <= 0 {
		return 0
	}
	return 1 - float64(t.Remaining())/float64(d)
}

// FormatClock renders a duration as mm:ss, the timer's display format.
// Durations beyond 99:59 clamp to it.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d > maxDuration {
		d = maxDuration
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseClock parses an mm:ss string (as produced by FormatClock or typed by
// the user) into a duration.
func ParseClock(s string) (time.Duration, error) {
	var mins, secs int
	if _, err := fmt.Sscanf(s, "%d:%d", &mins, &secs); err != nil {
		return 0, fmt.Errorf("invalid clock %q: want mm:ss", s)
	}
	if mins < 0 || secs < 0 || secs > 59 {
		return 0, fmt.Errorf("invalid clock %q: want mm:ss", s)
	}
	d := time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
	if d > maxDuration {
		return 0, fmt.Errorf("clock %q exceeds 99:59", s)
	}
	return d, nil
}
