//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo"

func soundCommand(sound string) ([]string, error) {
	dirs := []string{
		userDir(".local", "share", "sounds"),
		freedesktopSounds,
		"/usr/share/sounds",
	}
	path, err := findSoundFile(sound, dirs, []string{".oga", ".ogg", ".wav"})
	if err != nil {
		return nil, err
	}
	player, err := filePlayer()
	if err != nil {
		return nil, err
	}
	return []string{player, path}, nil
}

func genericSoundCommand() ([]string, error) {
	for _, name := range []string{"complete", "bell"} {
		path, err := findSoundFile(name, []string{freedesktopSounds}, []string{".oga"})
		if err != nil {
			continue
		}
		if player, err := filePlayer(); err == nil {
			return []string{player, path}, nil
		}
	}
	if resolved, err := exec.LookPath("canberra-gtk-play"); err == nil {
		return []string{resolved, "-i", "bell"}, nil
	}
	return nil, fmt.Errorf("%w: no generic alert sound", ErrSoundUnavailable)
}

func filePlayer() (string, error) {
	for _, player := range []string{"paplay", "pw-play", "aplay"} {
		if resolved, err := exec.LookPath(player); err == nil {
			return resolved, nil
		}
	}
	return "", fmt.Errorf("%w: no audio player found", ErrSoundUnavailable)
}
