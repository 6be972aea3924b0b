package timer

import (
	"sync"
	"testing"
	"time"
)

const testInterval = 2 * time.Millisecond

// recorder collects callback invocations for assertions.
type recorder struct {
	mu      sync.Mutex
	ticks   []int
	expires int
}

func (r *recorder) onTick(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
}

func (r *recorder) onExpire() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expires++
}

func (r *recorder) snapshot() ([]int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticks := make([]int, len(r.ticks))
	copy(ticks, r.ticks)
	return ticks, r.expires
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestCountdownTicksThenExpires(t *testing.T) {
	tm := NewWithInterval(testInterval)
	rec := &recorder{}

	tm.Start(3, rec.onTick, rec.onExpire)

	waitFor(t, func() bool {
		_, expires := rec.snapshot()
		return expires == 1
	})

	ticks, expires := rec.snapshot()
	if expires != 1 {
		t.Fatalf("expires = %d, want 1", expires)
	}
	// 3-second countdown: ticks at 2 and 1, then expire at 0.
	want := []int{2, 1}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks = %v, want %v", ticks, want)
		}
	}
}

func TestCancelStopsCallbacks(t *testing.T) {
	tm := NewWithInterval(testInterval)
	rec := &recorder{}

	tm.Start(1000, rec.onTick, rec.onExpire)
	waitFor(t, func() bool {
		ticks, _ := rec.snapshot()
		return len(ticks) >= 2
	})

	tm.Cancel()
	ticksAtCancel, _ := rec.snapshot()

	// Cancel holds the dispatch lock, so nothing may fire afterwards.
	time.Sleep(20 * testInterval)
	ticks, expires := rec.snapshot()
	if len(ticks) != len(ticksAtCancel) {
		t.Errorf("ticks after cancel: %d, want %d", len(ticks), len(ticksAtCancel))
	}
	if expires != 0 {
		t.Errorf("expires = %d, want 0", expires)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	tm := NewWithInterval(testInterval)
	tm.Cancel()
	tm.Cancel()

	rec := &recorder{}
	tm.Start(2, rec.onTick, rec.onExpire)
	tm.Cancel()
	tm.Cancel()

	time.Sleep(10 * testInterval)
	_, expires := rec.snapshot()
	if expires != 0 {
		t.Errorf("expires = %d, want 0", expires)
	}
}

func TestStartSupersedesPriorCountdown(t *testing.T) {
	tm := NewWithInterval(testInterval)
	old := &recorder{}
	tm.Start(1000, old.onTick, old.onExpire)
	waitFor(t, func() bool {
		ticks, _ := old.snapshot()
		return len(ticks) >= 1
	})

	fresh := &recorder{}
	tm.Start(3, fresh.onTick, fresh.onExpire)
	oldTicks, _ := old.snapshot()

	waitFor(t, func() bool {
		_, expires := fresh.snapshot()
		return expires == 1
	})

	// The superseded countdown must not have advanced.
	ticks, expires := old.snapshot()
	if expires != 0 {
		t.Errorf("old expires = %d, want 0", expires)
	}
	if len(ticks) > len(oldTicks)+1 {
		t.Errorf("old countdown kept ticking: %d ticks", len(ticks))
	}
}

func TestExpireFiresExactlyOnce(t *testing.T) {
	tm := NewWithInterval(testInterval)
	rec := &recorder{}

	tm.Start(1, rec.onTick, rec.onExpire)
	waitFor(t, func() bool {
		_, expires := rec.snapshot()
		return expires >= 1
	})

	time.Sleep(10 * testInterval)
	_, expires := rec.snapshot()
	if expires != 1 {
		t.Errorf("expires = %d, want exactly 1", expires)
	}

	// Cancel after natural expiry is a no-op.
	tm.Cancel()
}
