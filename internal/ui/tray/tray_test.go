package tray

import (
	"testing"

	"pomodoro/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Status: running, 24:59 left",
		StatusText(timekeeper.Event{Phase: timekeeper.PhaseRunning, SecondsRemaining: 1499}))
	assert.Equal(t, "Status: paused at 30:00",
		StatusText(timekeeper.Event{Phase: timekeeper.PhaseIdle, SecondsRemaining: 1800}))
	assert.Equal(t, "Status: time's up!",
		StatusText(timekeeper.Event{Phase: timekeeper.PhaseFinished}))
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "Pause", ToggleLabel(timekeeper.PhaseRunning))
	assert.Equal(t, "Start", ToggleLabel(timekeeper.PhaseIdle))
	assert.Equal(t, "Restart", ToggleLabel(timekeeper.PhaseFinished))
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	var toggles, resets, shows int
	manager := New(nil, "Pomodoro", Callbacks{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
		OnShow:   func() { shows++ },
	})

	manager.toggleItem.Action()
	manager.resetItem.Action()
	manager.showItem.Action()
	manager.quitItem.Action()

	assert.Equal(t, 1, toggles)
	assert.Equal(t, 1, resets)
	assert.Equal(t, 1, shows)
}
