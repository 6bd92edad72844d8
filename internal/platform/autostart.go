package platform

import (
	"fmt"
	"os"
	"strings"
)

// Autostart registers the application to launch at login.
type Autostart struct {
	AppName  string
	ExecPath string
	Args     []string
}

// NewAutostart targets the running executable.
func NewAutostart(appName string, args ...string) (*Autostart, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, fmt.Errorf("autostart: app name is empty")
	}
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("autostart: resolve executable: %w", err)
	}
	return &Autostart{AppName: appName, ExecPath: execPath, Args: args}, nil
}

// Enable installs the login entry, replacing an existing one.
func (autostart *Autostart) Enable() error {
	if autostart.ExecPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	if err := autostart.enable(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// Disable removes the login entry. A missing entry is not an error.
func (autostart *Autostart) Disable() error {
	if err := autostart.disable(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// Enabled reports whether a login entry is installed.
func (autostart *Autostart) Enabled() (bool, error) {
	enabled, err := autostart.enabled()
	if err != nil {
		return false, fmt.Errorf("query autostart: %w", err)
	}
	return enabled, nil
}

func (autostart *Autostart) slug() string {
	name := strings.ToLower(strings.TrimSpace(autostart.AppName))
	if name == "" {
		name = "pomodoro"
	}
	return strings.ReplaceAll(name, " ", "-")
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err == nil && dir != "" {
		return dir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func quoteArg(value string) string {
	if strings.ContainsAny(value, " \t\"") {
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	return value
}

func fileState(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
