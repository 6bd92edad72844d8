// Package session tracks active time inside one Pomodoro cycle and produces
// the entry written to the session log.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Accountant accumulates the time a user was demonstrably active while the
// countdown ran. It lives from the first start of a cycle until the cycle is
// logged.
type Accountant struct {
	id        string
	start     time.Time
	lastCheck time.Time
	active    time.Duration
	threshold time.Duration
}

// NewAccountant opens a session at start.
func NewAccountant(start time.Time, threshold time.Duration) *Accountant {
	return &Accountant{
		id:        uuid.NewString(),
		start:     start,
		lastCheck: start,
		threshold: threshold,
	}
}

// ID returns the session identifier used in diagnostics.
func (accountant *Accountant) ID() string {
	return accountant.id
}

// Start returns the session start instant.
func (accountant *Accountant) Start() time.Time {
	return accountant.start
}

// Active returns the accrued active time.
func (accountant *Accountant) Active() time.Duration {
	return accountant.active
}

// Resume restarts the measuring window at now, so time spent paused is never
// accrued.
func (accountant *Accountant) Resume(now time.Time) {
	accountant.lastCheck = now
}

// Accrue adds the time since the previous check when the last activity is
// within the threshold window.
func (accountant *Accountant) Accrue(now, lastActivity time.Time) {
	delta := now.Sub(accountant.lastCheck)
	if delta > 0 && now.Sub(lastActivity) < accountant.threshold {
		accountant.active += delta
		if wall := now.Sub(accountant.start); accountant.active > wall {
			accountant.active = wall
		}
	}
	if now.After(accountant.lastCheck) {
		accountant.lastCheck = now
	}
}

// Close produces the log entry for a session ending at end.
func (accountant *Accountant) Close(end time.Time) Entry {
	return NewEntry(accountant.id, accountant.start, end, accountant.active)
}
