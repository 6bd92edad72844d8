package tray

import (
	"fmt"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle func()
	OnReset  func()
	OnShow   func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))
	manager.showItem = fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Apply updates the menu for a TimeKeeper state. Safe to call from any
// goroutine.
func (manager *Manager) Apply(event timekeeper.Event) {
	status := StatusText(event)
	toggle := ToggleLabel(event.Phase)
	fyne.Do(func() {
		if manager.statusItem.Label == status && manager.toggleItem.Label == toggle {
			return
		}
		manager.statusItem.Label = status
		manager.toggleItem.Label = toggle
		manager.refreshMenu()
	})
}

// Watch applies events until the channel closes. Ticks only refresh the
// menu once per minute to keep tray traffic low.
func (manager *Manager) Watch(events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type == timekeeper.EventTick && event.SecondsRemaining%60 != 0 {
			continue
		}
		manager.Apply(event)
	}
}

// StatusText is the disabled first menu line.
func StatusText(event timekeeper.Event) string {
	switch event.Phase {
	case timekeeper.PhaseRunning:
		return fmt.Sprintf("Status: running, %s left", session.FormatSeconds(event.SecondsRemaining))
	case timekeeper.PhaseFinished:
		return "Status: time's up!"
	default:
		return fmt.Sprintf("Status: paused at %s", session.FormatSeconds(event.SecondsRemaining))
	}
}

// ToggleLabel names what the toggle item will do.
func ToggleLabel(phase timekeeper.Phase) string {
	switch phase {
	case timekeeper.PhaseRunning:
		return "Pause"
	case timekeeper.PhaseFinished:
		return "Restart"
	default:
		return "Start"
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.quitItem,
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
