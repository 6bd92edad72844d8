package model

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultPomodoroMinutes   = 30
	DefaultInactivitySeconds = 60
	DefaultAlarmSound        = "Submarine"
	DefaultLogFileName       = "pomodoro_log.txt"
)

// Settings defines user preferences loaded at startup.
type Settings struct {
	PomodoroDuration    time.Duration
	InactivityThreshold time.Duration
	AlarmSound          string
	LogFile             string
	IdleDetection       bool
}

// DefaultSettings returns default settings for the widget.
func DefaultSettings() Settings {
	return Settings{
		PomodoroDuration:    DefaultPomodoroMinutes * time.Minute,
		InactivityThreshold: DefaultInactivitySeconds * time.Second,
		AlarmSound:          DefaultAlarmSound,
		LogFile:             DefaultLogPath(),
		IdleDetection:       true,
	}
}

// DefaultLogPath returns ~/pomodoro_log.txt, or a relative name when the
// home directory is unknown.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return DefaultLogFileName
	}
	return filepath.Join(homeDir, DefaultLogFileName)
}

// PomodoroConfig converts settings to PomodoroConfig.
func (settings Settings) PomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Duration:            settings.PomodoroDuration,
		InactivityThreshold: settings.InactivityThreshold,
		WatchdogInterval:    5 * time.Second,
		TickInterval:        time.Second,
		FlashInterval:       500 * time.Millisecond,
		FlashDuration:       5 * time.Second,
		AlarmSound:          settings.AlarmSound,
	}.Normalize()
}
