// Package schedule runs deferred callbacks for the UI loop: one-shot
// tasks, debouncing and throttling. Callbacks run on their own goroutine;
// the TUI turns them into messages for its update loop.
package schedule

import (
	"sync"
	"time"
)

// Task is a pending callback.
type Task struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
	fired     bool
}

// After runs fn once d has elapsed.
func After(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.cancelled {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Cancel stops the task. It reports whether the callback was prevented;
// once Cancel returns true the callback never runs.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	t.timer.Stop()
	return true
}

// Done reports whether the callback has started.
func (t *Task) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Debouncer runs only the last callback of a burst, d after the burst ends.
type Debouncer struct {
	d    time.Duration
	mu   sync.Mutex
	task *Task
}

func Debounce(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Do replaces the pending callback with fn and restarts the delay.
func (b *Debouncer) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.task != nil {
		b.task.Cancel()
	}
	b.task = After(b.d, fn)
}

func (b *Debouncer) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.task != nil {
		b.task.Cancel()
		b.task = nil
	}
}

// Throttler runs at most one callback per window. The first call opens the
// window and the last callback given before it closes is the one run.
type Throttler struct {
	d      time.Duration
	mu     sync.Mutex
	latest func()
	task   *Task
}

func Throttle(d time.Duration) *Throttler {
	return &Throttler{d: d}
}

func (t *Throttler) Do(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = fn
	if t.task != nil {
		return
	}
	t.task = After(t.d, t.flush)
}

func (t *Throttler) flush() {
	t.mu.Lock()
	fn := t.latest
	t.latest = nil
	t.task = nil
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (t *Throttler) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.task != nil {
		t.task.Cancel()
		t.task = nil
	}
	t.latest = nil
}
