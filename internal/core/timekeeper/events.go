package timekeeper

import "time"

// Phase represents the countdown's current state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventFinished      EventType = "finished"
	EventFlashStart    EventType = "flash_start"
	EventFlashToggle   EventType = "flash_toggle"
	EventFlashStop     EventType = "flash_stop"
	EventSessionLogged EventType = "session_logged"
	EventLogError      EventType = "log_error"
)

// Reasons carried in Event.Message for state changes.
const (
	ReasonStarted      = "started"
	ReasonActivity     = "activity"
	ReasonInactivity   = "inactivity"
	ReasonManual       = "manual"
	ReasonReset        = "reset"
	ReasonAcknowledged = "acknowledged"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type             EventType
	Phase            Phase
	SecondsRemaining int
	TotalSeconds     int
	Flashing         bool
	FlashOn          bool
	Message          string
	At               time.Time
}

// Progress returns the elapsed fraction of the countdown in [0, 1].
func (event Event) Progress() float64 {
	if event.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(event.TotalSeconds-event.SecondsRemaining) / float64(event.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
