package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PomodoroMinutes   int    `yaml:"pomodoro_minutes"`
	InactivitySeconds int    `yaml:"inactivity_seconds"`
	AlarmSound        string `yaml:"alarm_sound"`
	LogFile           string `yaml:"log_file"`
	IdleDetection     *bool  `yaml:"idle_detection,omitempty"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from configPath.
func LoadSettingsFile(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to configPath.
func SaveSettings(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	idleDetection := settings.IdleDetection
	fileData := yamlSettings{
		PomodoroMinutes:   int(settings.PomodoroDuration / time.Minute),
		InactivitySeconds: int(settings.InactivityThreshold / time.Second),
		AlarmSound:        settings.AlarmSound,
		LogFile:           settings.LogFile,
		IdleDetection:     &idleDetection,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns <user config dir>/<appName>/settings.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.PomodoroMinutes > 0 && fileData.PomodoroMinutes <= 24*60 {
		settings.PomodoroDuration = time.Duration(fileData.PomodoroMinutes) * time.Minute
	}
	if fileData.InactivitySeconds > 0 {
		settings.InactivityThreshold = time.Duration(fileData.InactivitySeconds) * time.Second
	}
	if fileData.AlarmSound != "" {
		settings.AlarmSound = fileData.AlarmSound
	}
	if fileData.LogFile != "" {
		settings.LogFile = expandHome(fileData.LogFile)
	}
	if fileData.IdleDetection != nil {
		settings.IdleDetection = *fileData.IdleDetection
	}
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
