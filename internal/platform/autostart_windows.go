//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (autostart *Autostart) enable() error {
	parts := []string{`"` + strings.Trim(autostart.ExecPath, `"`) + `"`}
	for _, arg := range autostart.Args {
		parts = append(parts, quoteArg(arg))
	}
	return runReg("add", registryRunKey, "/v", autostart.AppName, "/t", "REG_SZ", "/d", strings.Join(parts, " "), "/f")
}

func (autostart *Autostart) disable() error {
	enabled, err := autostart.enabled()
	if err != nil || !enabled {
		return err
	}
	return runReg("delete", registryRunKey, "/v", autostart.AppName, "/f")
}

func (autostart *Autostart) enabled() (bool, error) {
	err := exec.Command("reg", "query", registryRunKey, "/v", autostart.AppName).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("reg query: %w", err)
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s failed: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
