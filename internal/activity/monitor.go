// Package activity turns user input into TimeKeeper activity notifications.
package activity

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/platform"
)

// DefaultPollInterval is how often system-wide idle time is sampled.
const DefaultPollInterval = time.Second

// IdleProvider returns the duration since last user input anywhere on the
// desktop.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// Monitor forwards input events onto the loop. Bursts of input arriving
// before the loop runs collapse into one notification.
type Monitor struct {
	loop    eventloop.Loop
	notify  func()
	pending atomic.Bool
}

// NewMonitor creates a monitor calling notify on loop for every activity.
func NewMonitor(loop eventloop.Loop, notify func()) *Monitor {
	return &Monitor{loop: loop, notify: notify}
}

// OnPointerActivity reports mouse movement or clicks.
func (monitor *Monitor) OnPointerActivity() {
	monitor.post()
}

// OnKeyActivity reports a key press.
func (monitor *Monitor) OnKeyActivity() {
	monitor.post()
}

// OnFocusActivity reports the app gaining focus.
func (monitor *Monitor) OnFocusActivity() {
	monitor.post()
}

func (monitor *Monitor) post() {
	if !monitor.pending.CompareAndSwap(false, true) {
		return
	}
	monitor.loop.Post(func() {
		monitor.pending.Store(false)
		monitor.notify()
	})
}

// Poll samples provider every interval and reports activity whenever input
// happened since the previous sample. It returns nil when ctx is done and
// platform.ErrIdleUnsupported when the desktop cannot report idle time.
func (monitor *Monitor) Poll(ctx context.Context, provider IdleProvider, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	failing := false
	lastSample := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		idle, err := provider.IdleDuration()
		if err != nil {
			if errors.Is(err, platform.ErrIdleUnsupported) {
				log.Printf("activity: system-wide input monitoring disabled: %v", err)
				return err
			}
			if !failing {
				log.Printf("activity: read idle time: %v", err)
				failing = true
			}
			continue
		}
		failing = false

		// Input counts when it happened after the previous successful sample.
		sampledAt := time.Now()
		elapsed := sampledAt.Sub(lastSample)
		lastSample = sampledAt
		if elapsed < interval {
			elapsed = interval
		}
		if idle < elapsed {
			monitor.post()
		}
	}
}
