package eventloop

import (
	"context"
	"sync"
	"time"
)

type runnerTimer struct {
	timer     *time.Timer
	interval  time.Duration
	repeating bool
	fn        func()
}

// Runner is the wall-clock Loop. Timers fire on runtime goroutines and only
// enqueue a dispatch; the callback itself runs inside Run.
type Runner struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	timers  map[Handle]*runnerTimer
	next    Handle
	stopped bool
}

// NewRunner creates an idle Runner. Call Run to start dispatching.
func NewRunner() *Runner {
	return &Runner{
		wake:   make(chan struct{}, 1),
		timers: make(map[Handle]*runnerTimer),
	}
}

// Now returns the wall-clock time.
func (runner *Runner) Now() time.Time {
	return time.Now()
}

// Post queues fn. Safe from any goroutine, including the loop itself.
func (runner *Runner) Post(fn func()) {
	if fn == nil {
		return
	}
	runner.mu.Lock()
	if runner.stopped {
		runner.mu.Unlock()
		return
	}
	runner.queue = append(runner.queue, fn)
	runner.mu.Unlock()

	select {
	case runner.wake <- struct{}{}:
	default:
	}
}

// Schedule registers a timer.
func (runner *Runner) Schedule(interval time.Duration, repeating bool, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}

	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.next++
	handle := runner.next
	entry := &runnerTimer{
		interval:  interval,
		repeating: repeating,
		fn:        fn,
	}
	runner.timers[handle] = entry
	entry.timer = time.AfterFunc(interval, func() {
		runner.fire(handle)
	})
	return handle
}

// Cancel stops the timer for handle.
func (runner *Runner) Cancel(handle Handle) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if entry, ok := runner.timers[handle]; ok {
		entry.timer.Stop()
		delete(runner.timers, handle)
	}
}

// Run dispatches queued work until ctx is cancelled, then stops all timers.
func (runner *Runner) Run(ctx context.Context) error {
	defer runner.shutdown()

	for {
		runner.drain()
		select {
		case <-ctx.Done():
			return nil
		case <-runner.wake:
		}
	}
}

func (runner *Runner) fire(handle Handle) {
	runner.mu.Lock()
	entry, ok := runner.timers[handle]
	if ok && entry.repeating {
		entry.timer.Reset(entry.interval)
	}
	runner.mu.Unlock()
	if !ok {
		return
	}

	runner.Post(func() {
		runner.dispatch(handle)
	})
}

// dispatch runs on the loop. A timer cancelled after its fire was queued is
// found missing here and skipped.
func (runner *Runner) dispatch(handle Handle) {
	runner.mu.Lock()
	entry, ok := runner.timers[handle]
	if ok && !entry.repeating {
		delete(runner.timers, handle)
	}
	runner.mu.Unlock()

	if ok {
		entry.fn()
	}
}

func (runner *Runner) drain() {
	for {
		runner.mu.Lock()
		if len(runner.queue) == 0 {
			runner.mu.Unlock()
			return
		}
		batch := runner.queue
		runner.queue = nil
		runner.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}

func (runner *Runner) shutdown() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.stopped = true
	for handle, entry := range runner.timers {
		entry.timer.Stop()
		delete(runner.timers, handle)
	}
	runner.queue = nil
}
