// Package timer provides a cancellable one-second countdown used to
// enforce quiz time limits.
package timer

import (
	"sync"
	"time"
)

// Timer runs a single countdown at a time. Start begins a countdown that
// invokes onTick once per elapsed second with the remaining seconds, and
// onExpire exactly once when the countdown reaches zero. Starting a new
// countdown implicitly cancels the prior one.
//
// Callbacks are dispatched while holding the timer's lock, and Cancel
// acquires the same lock: once Cancel returns, no further callbacks fire,
// including ticks already scheduled. Each Start bumps a generation
// counter; a goroutine from a superseded generation finds the mismatch
// and exits without firing. The one consequence of dispatching under the
// lock is that callbacks must not call Cancel; there is never a reason
// to: by the time onExpire runs the countdown is already finished.
type Timer struct {
	mu       sync.Mutex
	gen      uint64
	interval time.Duration
}

// New creates a Timer with the standard one-second tick.
func New() *Timer {
	return &Timer{interval: time.Second}
}

// NewWithInterval creates a Timer whose tick interval differs from one
// second. Tests use it to run countdowns at full speed.
func NewWithInterval(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Start begins a countdown of the given number of seconds. Any countdown
// already running is cancelled first. If seconds is zero or negative,
// onExpire fires on the first tick.
func (t *Timer) Start(seconds int, onTick func(remaining int), onExpire func()) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	go t.run(gen, seconds, onTick, onExpire)
}

// Cancel stops the active countdown. It is idempotent and safe to call
// when no countdown is running. After Cancel returns, no callback from
// any prior Start will fire.
func (t *Timer) Cancel() {
	t.mu.Lock()
	t.gen++
	t.mu.Unlock()
}

func (t *Timer) run(gen uint64, seconds int, onTick func(int), onExpire func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	remaining := seconds
	for range ticker.C {
		remaining--
		expired := remaining <= 0
		if !t.fire(gen, remaining, expired, onTick, onExpire) {
			return
		}
		if expired {
			return
		}
	}
}

// fire dispatches one callback under the lock, provided the countdown has
// not been superseded. Returns false when this generation is stale.
func (t *Timer) fire(gen uint64, remaining int, expired bool, onTick func(int), onExpire func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen {
		return false
	}
	if expired {
		// The countdown is done; mark it so a later Cancel is a no-op
		// and a racing Start sees a fresh generation.
		t.gen++
		if onExpire != nil {
			onExpire()
		}
		return true
	}
	if onTick != nil {
		onTick(remaining)
	}
	return true
}
