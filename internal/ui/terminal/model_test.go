package terminal

import (
	"testing"

	"pomodoro/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type controlCounts struct {
	press, reset, activity int
}

func newTestModel(events chan timekeeper.Event) (*Model, *controlCounts) {
	counts := &controlCounts{}
	model := New(events, timekeeper.Event{Phase: timekeeper.PhaseIdle, SecondsRemaining: 1800, TotalSeconds: 1800}, Controls{
		Press:    func() { counts.press++ },
		Reset:    func() { counts.reset++ },
		Activity: func() { counts.activity++ },
	})
	return model, counts
}

func TestKeysRouteToControls(t *testing.T) {
	model, counts := newTestModel(make(chan timekeeper.Event))

	model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Equal(t, 2, counts.press)
	assert.Equal(t, 1, counts.reset)
	assert.Equal(t, 1, counts.activity)
}

func TestQuitKey(t *testing.T) {
	model, _ := newTestModel(make(chan timekeeper.Event))

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMouseClickPressesAndMotionCountsAsActivity(t *testing.T) {
	model, counts := newTestModel(make(chan timekeeper.Event))

	model.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	model.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})

	assert.Equal(t, 1, counts.press)
	assert.Equal(t, 1, counts.activity)
}

func TestEventsUpdateView(t *testing.T) {
	events := make(chan timekeeper.Event, 4)
	model, _ := newTestModel(events)
	assert.Contains(t, model.View(), "30:00")

	events <- timekeeper.Event{Type: timekeeper.EventTick, Phase: timekeeper.PhaseRunning, SecondsRemaining: 1799, TotalSeconds: 1800}
	msg := model.Init()()
	_, next := model.Update(msg)
	require.NotNil(t, next)
	view := model.View()
	assert.Contains(t, view, "29:59")
	assert.Contains(t, view, "focusing")

	events <- timekeeper.Event{Type: timekeeper.EventFinished, Phase: timekeeper.PhaseFinished, TotalSeconds: 1800}
	model.Update(next())
	assert.Contains(t, model.View(), "Time's up!")
}

func TestSessionMessages(t *testing.T) {
	model, _ := newTestModel(make(chan timekeeper.Event))

	model.handleEvent(timekeeper.Event{Type: timekeeper.EventSessionLogged, Phase: timekeeper.PhaseIdle, Message: "12:00"})
	assert.Contains(t, model.View(), "Session logged, 12:00 active")

	model.handleEvent(timekeeper.Event{Type: timekeeper.EventLogError, Phase: timekeeper.PhaseIdle, Message: "disk full"})
	assert.Contains(t, model.View(), "Could not write session log: disk full")
}

func TestInactivityPauseLine(t *testing.T) {
	model, _ := newTestModel(make(chan timekeeper.Event))

	model.handleEvent(timekeeper.Event{Type: timekeeper.EventStateChange, Phase: timekeeper.PhaseIdle, Message: timekeeper.ReasonInactivity, SecondsRemaining: 900})
	assert.Contains(t, model.View(), "paused: no activity")
}

func TestClosedEventsQuit(t *testing.T) {
	events := make(chan timekeeper.Event)
	close(events)
	model, _ := newTestModel(events)

	msg := model.Init()()
	_, cmd := model.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
