//go:build windows

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func soundCommand(sound string) ([]string, error) {
	shell, err := exec.LookPath("powershell")
	if err != nil {
		return nil, fmt.Errorf("%w: powershell not found", ErrSoundUnavailable)
	}
	mediaDir := filepath.Join(os.Getenv("SystemRoot"), "Media")
	path, err := findSoundFile(sound, []string{mediaDir}, []string{".wav"})
	if err != nil {
		return nil, err
	}
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
	return []string{shell, "-NoProfile", "-Command", script}, nil
}

func genericSoundCommand() ([]string, error) {
	shell, err := exec.LookPath("powershell")
	if err != nil {
		return nil, fmt.Errorf("%w: powershell not found", ErrSoundUnavailable)
	}
	return []string{shell, "-NoProfile", "-Command", "[console]::beep(880, 400)"}, nil
}
