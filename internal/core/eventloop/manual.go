package eventloop

import (
	"sync"
	"time"
)

type manualTimer struct {
	due       time.Time
	interval  time.Duration
	repeating bool
	fn        func()
}

// Manual is a Loop driven by virtual time. Nothing happens until Drain or
// Advance is called; timers due at the same instant fire in scheduling order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	queue  []func()
	timers map[Handle]*manualTimer
	next   Handle
}

// NewManual creates a Manual loop whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{
		now:    start,
		timers: make(map[Handle]*manualTimer),
	}
}

// Now returns the virtual time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Post queues fn until the next Drain or Advance.
func (manual *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	manual.mu.Lock()
	manual.queue = append(manual.queue, fn)
	manual.mu.Unlock()
}

// Schedule registers a virtual timer.
func (manual *Manual) Schedule(interval time.Duration, repeating bool, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.next++
	manual.timers[manual.next] = &manualTimer{
		due:       manual.now.Add(interval),
		interval:  interval,
		repeating: repeating,
		fn:        fn,
	}
	return manual.next
}

// Cancel removes the timer for handle.
func (manual *Manual) Cancel(handle Handle) {
	manual.mu.Lock()
	delete(manual.timers, handle)
	manual.mu.Unlock()
}

// Pending reports how many timers are registered.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.timers)
}

// Drain runs posted work until the queue is empty.
func (manual *Manual) Drain() {
	for {
		manual.mu.Lock()
		if len(manual.queue) == 0 {
			manual.mu.Unlock()
			return
		}
		fn := manual.queue[0]
		manual.queue = manual.queue[1:]
		manual.mu.Unlock()
		fn()
	}
}

// Advance moves the clock forward by delta, firing every timer that falls due
// on the way and draining posted work after each one.
func (manual *Manual) Advance(delta time.Duration) {
	manual.Drain()

	manual.mu.Lock()
	target := manual.now.Add(delta)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		handle, entry := manual.earliestLocked(target)
		if entry == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		manual.now = entry.due
		if entry.repeating {
			entry.due = entry.due.Add(entry.interval)
		} else {
			delete(manual.timers, handle)
		}
		fn := entry.fn
		manual.mu.Unlock()

		fn()
		manual.Drain()
	}
}

func (manual *Manual) earliestLocked(limit time.Time) (Handle, *manualTimer) {
	var (
		bestHandle Handle
		best       *manualTimer
	)
	for handle, entry := range manual.timers {
		if entry.due.After(limit) {
			continue
		}
		if best == nil || entry.due.Before(best.due) || (entry.due.Equal(best.due) && handle < bestHandle) {
			bestHandle = handle
			best = entry
		}
	}
	return bestHandle, best
}
