//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

func soundCommand(sound string) ([]string, error) {
	player, err := exec.LookPath("afplay")
	if err != nil {
		return nil, fmt.Errorf("%w: afplay not found", ErrSoundUnavailable)
	}
	dirs := []string{
		userDir("Library", "Sounds"),
		"/Library/Sounds",
		"/System/Library/Sounds",
	}
	path, err := findSoundFile(sound, dirs, []string{".aiff", ".caf", ".wav", ".mp3"})
	if err != nil {
		return nil, err
	}
	return []string{player, path}, nil
}

func genericSoundCommand() ([]string, error) {
	osascript, err := exec.LookPath("osascript")
	if err != nil {
		return nil, fmt.Errorf("%w: osascript not found", ErrSoundUnavailable)
	}
	return []string{osascript, "-e", "beep"}, nil
}
