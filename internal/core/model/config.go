package model

import "time"

// PomodoroConfig contains runtime settings for the TimeKeeper state machine.
type PomodoroConfig struct {
	Duration time.Duration

	InactivityThreshold time.Duration
	WatchdogInterval    time.Duration
	TickInterval        time.Duration

	FlashInterval time.Duration
	FlashDuration time.Duration

	AlarmSound string
}

// TotalSeconds returns the countdown length in whole seconds, at least 1.
func (config PomodoroConfig) TotalSeconds() int {
	seconds := int(config.Duration / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

// Normalize fills zero or negative cadences with the reference values.
func (config PomodoroConfig) Normalize() PomodoroConfig {
	if config.Duration <= 0 {
		config.Duration = DefaultPomodoroMinutes * time.Minute
	}
	if config.InactivityThreshold <= 0 {
		config.InactivityThreshold = DefaultInactivitySeconds * time.Second
	}
	if config.WatchdogInterval <= 0 {
		config.WatchdogInterval = 5 * time.Second
	}
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if config.FlashInterval <= 0 {
		config.FlashInterval = 500 * time.Millisecond
	}
	if config.FlashDuration <= 0 {
		config.FlashDuration = 5 * time.Second
	}
	return config
}
