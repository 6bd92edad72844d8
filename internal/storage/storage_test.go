package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadSettingsFileAppliesValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	content := "pomodoro_minutes: 25\n" +
		"inactivity_seconds: 90\n" +
		"alarm_sound: Glass\n" +
		"log_file: /tmp/focus.txt\n" +
		"idle_detection: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, settings.PomodoroDuration)
	assert.Equal(t, 90*time.Second, settings.InactivityThreshold)
	assert.Equal(t, "Glass", settings.AlarmSound)
	assert.Equal(t, "/tmp/focus.txt", settings.LogFile)
	assert.False(t, settings.IdleDetection)
}

func TestLoadSettingsFileIgnoresInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("pomodoro_minutes: -4\ninactivity_seconds: 0\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	defaults := model.DefaultSettings()
	assert.Equal(t, defaults.PomodoroDuration, settings.PomodoroDuration)
	assert.Equal(t, defaults.InactivityThreshold, settings.InactivityThreshold)
	assert.True(t, settings.IdleDetection)
}

func TestLoadSettingsFileRejectsMalformedYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("pomodoro_minutes: [oops\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	saved := model.DefaultSettings()
	saved.PomodoroDuration = 45 * time.Minute
	saved.InactivityThreshold = 2 * time.Minute
	saved.LogFile = filepath.Join(t.TempDir(), "log.txt")
	saved.IdleDetection = false

	require.NoError(t, SaveSettings(configPath, saved))

	loaded, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSessionLogAppendsBlocks(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "pomodoro_log.txt")
	sessionLog := NewSessionLog(logPath)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	first := session.NewEntry("a", start, start.Add(30*time.Minute), 25*time.Minute)
	second := session.NewEntry("b", start.Add(time.Hour), start.Add(time.Hour+10*time.Second), 7*time.Second)

	require.NoError(t, sessionLog.Record(first))
	require.NoError(t, sessionLog.Record(second))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, first.Format()+second.Format(), string(content))
}

func TestSessionLogTail(t *testing.T) {
	sessionLog := NewSessionLog(filepath.Join(t.TempDir(), "pomodoro_log.txt"))
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	for index := 0; index < 3; index++ {
		begin := start.Add(time.Duration(index) * time.Hour)
		require.NoError(t, sessionLog.Record(session.NewEntry("", begin, begin.Add(time.Minute), time.Minute)))
	}

	blocks, err := sessionLog.Tail(2)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Start Time: 2024-03-01 10:00:00")
	assert.Contains(t, blocks[1], "Start Time: 2024-03-01 11:00:00")

	all, err := sessionLog.Tail(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSessionLogTailMissingFile(t *testing.T) {
	blocks, err := NewSessionLog(filepath.Join(t.TempDir(), "none.txt")).Tail(5)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestSessionLogRecordFailsOnDirectoryPath(t *testing.T) {
	sessionLog := NewSessionLog(t.TempDir())
	start := time.Now()
	err := sessionLog.Record(session.NewEntry("", start, start.Add(time.Second), time.Second))
	require.Error(t, err)
}
