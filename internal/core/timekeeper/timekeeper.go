package timekeeper

import (
	"log"
	"sync"
	"time"

	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

// SessionRecorder persists completed sessions.
type SessionRecorder interface {
	Record(entry session.Entry) error
}

// Alarm plays the finish sound.
type Alarm interface {
	Play(sound string) error
	Beep() error
}

// TimeKeeper is the activity-aware countdown state machine. Every method
// except Subscribe must be called on the loop it was built with.
type TimeKeeper struct {
	config   model.PomodoroConfig
	loop     eventloop.Loop
	recorder SessionRecorder
	alarm    Alarm

	phase        Phase
	remaining    int
	total        int
	lastActivity time.Time
	session      *session.Accountant

	tick        eventloop.Handle
	watchdog    eventloop.Handle
	flashToggle eventloop.Handle
	flashStop   eventloop.Handle
	flashing    bool
	flashOn     bool

	mu     sync.Mutex
	events []chan Event
	closed bool
}

// New creates an Idle TimeKeeper with the full duration loaded.
func New(config model.PomodoroConfig, loop eventloop.Loop) *TimeKeeper {
	config = config.Normalize()
	total := config.TotalSeconds()
	return &TimeKeeper{
		config:       config,
		loop:         loop,
		phase:        PhaseIdle,
		remaining:    total,
		total:        total,
		lastActivity: loop.Now(),
	}
}

// SetRecorder injects the session log.
func (keeper *TimeKeeper) SetRecorder(recorder SessionRecorder) {
	keeper.recorder = recorder
}

// SetAlarm injects the alarm player.
func (keeper *TimeKeeper) SetAlarm(alarm Alarm) {
	keeper.alarm = alarm
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Attach starts the inactivity watchdog.
func (keeper *TimeKeeper) Attach() {
	if keeper.watchdog != 0 {
		return
	}
	keeper.watchdog = keeper.loop.Schedule(keeper.config.WatchdogInterval, true, func() {
		keeper.CheckInactivity(keeper.loop.Now(), keeper.config.InactivityThreshold)
	})
}

// Close cancels every timer and closes observers. An open session is
// discarded.
func (keeper *TimeKeeper) Close() {
	keeper.stopTicking()
	keeper.cancelFlashing()
	if keeper.watchdog != 0 {
		keeper.loop.Cancel(keeper.watchdog)
		keeper.watchdog = 0
	}

	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.closed = true
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current state as an event without publishing it.
func (keeper *TimeKeeper) Snapshot() Event {
	return keeper.event("", "", keeper.loop.Now())
}

// Phase returns the current phase.
func (keeper *TimeKeeper) Phase() Phase {
	return keeper.phase
}

// SecondsRemaining returns the countdown value.
func (keeper *TimeKeeper) SecondsRemaining() int {
	return keeper.remaining
}

// Start begins ticking from Idle. It opens a session when none is open and
// does nothing when already running or when no time is left.
func (keeper *TimeKeeper) Start() {
	keeper.start(ReasonStarted)
}

// Advance is the 1 Hz tick.
func (keeper *TimeKeeper) Advance() {
	if keeper.phase != PhaseRunning {
		return
	}
	now := keeper.loop.Now()
	if keeper.session != nil {
		keeper.session.Accrue(now, keeper.lastActivity)
	}

	keeper.remaining--
	if keeper.remaining <= 0 {
		keeper.remaining = 0
		keeper.finish(now)
		return
	}
	keeper.emit(EventTick, "", now)
}

// NotifyActivity records user input. An Idle countdown with time left starts;
// a Finished one stays finished until acknowledged.
func (keeper *TimeKeeper) NotifyActivity() {
	now := keeper.loop.Now()
	if keeper.phase == PhaseRunning && keeper.session != nil {
		keeper.session.Accrue(now, keeper.lastActivity)
	}
	keeper.lastActivity = now

	if keeper.phase == PhaseIdle && keeper.remaining > 0 {
		keeper.start(ReasonActivity)
	}
}

// CheckInactivity pauses a running countdown when no activity was seen for
// threshold.
func (keeper *TimeKeeper) CheckInactivity(now time.Time, threshold time.Duration) {
	if keeper.phase != PhaseRunning {
		return
	}
	if now.Sub(keeper.lastActivity) < threshold {
		return
	}
	log.Printf("timekeeper: paused after %s without activity", now.Sub(keeper.lastActivity).Truncate(time.Second))
	keeper.pause(now, ReasonInactivity)
}

// AcknowledgeFinishAndReset clears the finished state, reloads the full
// duration and starts again.
func (keeper *TimeKeeper) AcknowledgeFinishAndReset() {
	if keeper.phase != PhaseFinished {
		return
	}
	now := keeper.loop.Now()
	if keeper.cancelFlashing() {
		keeper.emit(EventFlashStop, "", now)
	}
	keeper.remaining = keeper.total
	keeper.phase = PhaseIdle
	keeper.emit(EventStateChange, ReasonAcknowledged, now)

	keeper.start(ReasonStarted)
}

// ManualToggle pauses a running countdown or starts an idle one. Pausing
// keeps the session open.
func (keeper *TimeKeeper) ManualToggle() {
	switch keeper.phase {
	case PhaseRunning:
		keeper.pause(keeper.loop.Now(), ReasonManual)
	case PhaseIdle:
		keeper.start(ReasonManual)
	}
}

// Press is the click handler: acknowledge when finished, toggle otherwise.
func (keeper *TimeKeeper) Press() {
	if keeper.phase == PhaseFinished {
		keeper.AcknowledgeFinishAndReset()
		return
	}
	keeper.ManualToggle()
}

// Reset stops the countdown and reloads the full duration without starting.
// An open session is closed and logged.
func (keeper *TimeKeeper) Reset() {
	now := keeper.loop.Now()
	if keeper.cancelFlashing() {
		keeper.emit(EventFlashStop, "", now)
	}
	if keeper.phase == PhaseRunning && keeper.session != nil {
		keeper.session.Accrue(now, keeper.lastActivity)
	}
	keeper.stopTicking()
	keeper.closeSession(now)

	keeper.remaining = keeper.total
	keeper.phase = PhaseIdle
	keeper.emit(EventStateChange, ReasonReset, now)
}

func (keeper *TimeKeeper) start(reason string) {
	if keeper.phase != PhaseIdle || keeper.remaining <= 0 {
		return
	}
	now := keeper.loop.Now()
	if keeper.session == nil {
		keeper.session = session.NewAccountant(now, keeper.config.InactivityThreshold)
	} else {
		keeper.session.Resume(now)
	}

	keeper.phase = PhaseRunning
	keeper.tick = keeper.loop.Schedule(keeper.config.TickInterval, true, keeper.Advance)
	keeper.emit(EventStateChange, reason, now)
}

func (keeper *TimeKeeper) pause(now time.Time, reason string) {
	if keeper.session != nil {
		keeper.session.Accrue(now, keeper.lastActivity)
	}
	keeper.stopTicking()
	keeper.phase = PhaseIdle
	keeper.emit(EventStateChange, reason, now)
}

func (keeper *TimeKeeper) finish(now time.Time) {
	keeper.stopTicking()
	keeper.phase = PhaseFinished
	keeper.emit(EventFinished, "", now)

	keeper.ringAlarm()
	keeper.startFlashing(now)
	keeper.closeSession(now)
}

func (keeper *TimeKeeper) stopTicking() {
	if keeper.tick != 0 {
		keeper.loop.Cancel(keeper.tick)
		keeper.tick = 0
	}
}

func (keeper *TimeKeeper) ringAlarm() {
	if keeper.alarm == nil {
		return
	}
	err := keeper.alarm.Play(keeper.config.AlarmSound)
	if err == nil {
		return
	}
	log.Printf("timekeeper: play alarm %q: %v", keeper.config.AlarmSound, err)
	if err := keeper.alarm.Beep(); err != nil {
		log.Printf("timekeeper: beep: %v", err)
	}
}

func (keeper *TimeKeeper) startFlashing(now time.Time) {
	keeper.cancelFlashing()
	keeper.flashing = true
	keeper.flashOn = true
	keeper.flashToggle = keeper.loop.Schedule(keeper.config.FlashInterval, true, keeper.toggleFlash)
	keeper.flashStop = keeper.loop.Schedule(keeper.config.FlashDuration, false, keeper.endFlash)
	keeper.emit(EventFlashStart, "", now)
}

func (keeper *TimeKeeper) toggleFlash() {
	if !keeper.flashing {
		return
	}
	keeper.flashOn = !keeper.flashOn
	keeper.emit(EventFlashToggle, "", keeper.loop.Now())
}

func (keeper *TimeKeeper) endFlash() {
	keeper.flashStop = 0
	if keeper.cancelFlashing() {
		keeper.emit(EventFlashStop, "", keeper.loop.Now())
	}
}

// cancelFlashing reports whether a flash effect was active.
func (keeper *TimeKeeper) cancelFlashing() bool {
	if keeper.flashToggle != 0 {
		keeper.loop.Cancel(keeper.flashToggle)
		keeper.flashToggle = 0
	}
	if keeper.flashStop != 0 {
		keeper.loop.Cancel(keeper.flashStop)
		keeper.flashStop = 0
	}
	wasFlashing := keeper.flashing
	keeper.flashing = false
	keeper.flashOn = false
	return wasFlashing
}

func (keeper *TimeKeeper) closeSession(now time.Time) {
	if keeper.session == nil {
		return
	}
	entry := keeper.session.Close(now)
	keeper.session = nil

	if keeper.recorder == nil {
		return
	}
	if err := keeper.recorder.Record(entry); err != nil {
		log.Printf("timekeeper: record session %s: %v", entry.ID, err)
		keeper.emit(EventLogError, err.Error(), now)
		return
	}
	keeper.emit(EventSessionLogged, session.FormatDuration(entry.ActiveDuration), now)
}

func (keeper *TimeKeeper) event(eventType EventType, message string, at time.Time) Event {
	return Event{
		Type:             eventType,
		Phase:            keeper.phase,
		SecondsRemaining: keeper.remaining,
		TotalSeconds:     keeper.total,
		Flashing:         keeper.flashing,
		FlashOn:          keeper.flashOn,
		Message:          message,
		At:               at,
	}
}

func (keeper *TimeKeeper) emit(eventType EventType, message string, at time.Time) {
	event := keeper.event(eventType, message, at)

	keeper.mu.Lock()
	events := append([]chan Event(nil), keeper.events...)
	keeper.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
