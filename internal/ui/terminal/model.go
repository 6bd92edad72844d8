// Package terminal provides the bubbletea rendition of the Pomodoro dial.
package terminal

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	runningColor  = lipgloss.Color("#2EA043")
	idleColor     = lipgloss.Color("#306EC8")
	flashOnColor  = lipgloss.Color("#D63031")
	flashOffColor = lipgloss.Color("#F08C1E")
	mutedColor    = lipgloss.Color("#6B7280")
	errorColor    = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

const maxBarWidth = 48

// Controls forward user input to the TimeKeeper loop. They must not block.
type Controls struct {
	Press    func()
	Reset    func()
	Activity func()
}

type eventMsg timekeeper.Event

type closedMsg struct{}

// Model is the terminal UI model.
type Model struct {
	events   <-chan timekeeper.Event
	controls Controls
	state    timekeeper.Event
	bar      progress.Model
	message  string
	failed   bool
	width    int
}

// New creates a model starting from the initial state and following events.
func New(events <-chan timekeeper.Event, initial timekeeper.Event, controls Controls) *Model {
	bar := progress.New(progress.WithGradient("#306EC8", "#2EA043"), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return &Model{
		events:   events,
		controls: controls,
		state:    initial,
		bar:      bar,
	}
}

// Run starts the terminal program with mouse motion reporting so any
// interaction counts as activity.
func (model *Model) Run() error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

// Init implements tea.Model
func (model *Model) Init() tea.Cmd {
	return waitForEvent(model.events)
}

// Update implements tea.Model
func (model *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		model.handleEvent(timekeeper.Event(msg))
		return model, waitForEvent(model.events)

	case closedMsg:
		return model, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return model, tea.Quit
		case " ", "enter":
			call(model.controls.Press)
		case "r":
			call(model.controls.Reset)
		default:
			call(model.controls.Activity)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			call(model.controls.Press)
		} else {
			call(model.controls.Activity)
		}

	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.bar.Width = msg.Width - 8
		if model.bar.Width > maxBarWidth {
			model.bar.Width = maxBarWidth
		}
		if model.bar.Width < 10 {
			model.bar.Width = 10
		}
	}

	return model, nil
}

// View implements tea.Model
func (model *Model) View() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Foreground(model.accent()).Render("Pomodoro"))
	builder.WriteString("\n\n")

	clock := session.FormatSeconds(model.state.SecondsRemaining)
	if model.state.Phase == timekeeper.PhaseFinished {
		clock = "Time's up!"
	}
	builder.WriteString(clockStyle.BorderForeground(model.accent()).Background(model.accent()).Render(clock))
	builder.WriteString("\n\n")

	builder.WriteString(model.bar.ViewAs(model.state.Progress()))
	builder.WriteString("\n")
	builder.WriteString(messageStyle.Render(phaseLine(model.state)))
	builder.WriteString("\n")

	if model.message != "" {
		style := messageStyle
		if model.failed {
			style = errorStyle
		}
		builder.WriteString(style.Render(model.message))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(helpStyle.Render("space/click: start, pause or restart  r: reset  q: quit"))
	builder.WriteString("\n")
	return builder.String()
}

func (model *Model) handleEvent(event timekeeper.Event) {
	model.state = event
	switch event.Type {
	case timekeeper.EventSessionLogged:
		model.message = fmt.Sprintf("Session logged, %s active", event.Message)
		model.failed = false
	case timekeeper.EventLogError:
		model.message = fmt.Sprintf("Could not write session log: %s", event.Message)
		model.failed = true
	case timekeeper.EventFinished:
		model.message = ""
		model.failed = false
	}
}

func (model *Model) accent() lipgloss.Color {
	switch model.state.Phase {
	case timekeeper.PhaseRunning:
		return runningColor
	case timekeeper.PhaseFinished:
		if model.state.Flashing && !model.state.FlashOn {
			return flashOffColor
		}
		return flashOnColor
	default:
		return idleColor
	}
}

func phaseLine(event timekeeper.Event) string {
	switch event.Phase {
	case timekeeper.PhaseRunning:
		return "focusing"
	case timekeeper.PhaseFinished:
		return "finished, press space to go again"
	default:
		if event.Message == timekeeper.ReasonInactivity {
			return "paused: no activity"
		}
		return "paused"
	}
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
