//go:build !linux && !darwin && !windows

package platform

import (
	"errors"
	"path/filepath"
)

var errAutostartUnsupported = errors.New("autostart unsupported on this platform")

func (autostart *Autostart) enable() error {
	return errAutostartUnsupported
}

func (autostart *Autostart) disable() error {
	return nil
}

func (autostart *Autostart) enabled() (bool, error) {
	return false, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
