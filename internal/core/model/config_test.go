package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	config := PomodoroConfig{}.Normalize()

	assert.Equal(t, 30*time.Minute, config.Duration)
	assert.Equal(t, 60*time.Second, config.InactivityThreshold)
	assert.Equal(t, 5*time.Second, config.WatchdogInterval)
	assert.Equal(t, time.Second, config.TickInterval)
	assert.Equal(t, 500*time.Millisecond, config.FlashInterval)
	assert.Equal(t, 5*time.Second, config.FlashDuration)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	config := PomodoroConfig{
		Duration:            time.Minute,
		InactivityThreshold: 10 * time.Second,
	}.Normalize()

	assert.Equal(t, time.Minute, config.Duration)
	assert.Equal(t, 10*time.Second, config.InactivityThreshold)
}

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected int
	}{
		{name: "whole minutes", duration: 25 * time.Minute, expected: 1500},
		{name: "truncates fraction", duration: 1500 * time.Millisecond, expected: 1},
		{name: "never zero", duration: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PomodoroConfig{Duration: tt.duration}.TotalSeconds())
		})
	}
}

func TestSettingsConversion(t *testing.T) {
	settings := DefaultSettings()
	settings.PomodoroDuration = 45 * time.Minute
	settings.AlarmSound = "Glass"

	config := settings.PomodoroConfig()

	assert.Equal(t, 45*time.Minute, config.Duration)
	assert.Equal(t, "Glass", config.AlarmSound)
	assert.Equal(t, 2700, config.TotalSeconds())
}
