//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (autostart *Autostart) enable() error {
	entryPath, err := autostart.desktopEntryPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(autostart.desktopEntry()), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (autostart *Autostart) disable() error {
	entryPath, err := autostart.desktopEntryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (autostart *Autostart) enabled() (bool, error) {
	entryPath, err := autostart.desktopEntryPath()
	if err != nil {
		return false, err
	}
	return fileState(entryPath)
}

func (autostart *Autostart) desktopEntryPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "autostart", autostart.slug()+".desktop"), nil
}

func (autostart *Autostart) desktopEntry() string {
	parts := []string{quoteArg(autostart.ExecPath)}
	for _, arg := range autostart.Args {
		parts = append(parts, quoteArg(arg))
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Activity-aware Pomodoro timer
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		autostart.AppName,
		strings.Join(parts, " "),
	)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
