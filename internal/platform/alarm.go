package platform

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrSoundUnavailable indicates the named alarm sound could not be found or
// no player is installed.
var ErrSoundUnavailable = errors.New("alarm sound unavailable")

// AlarmPlayer plays the finish sound through an OS player. Its fallback is
// the desktop's generic alert sound, then the terminal bell.
type AlarmPlayer struct {
	bell    io.Writer
	resolve func(sound string) ([]string, error)
	generic func() ([]string, error)
	start   func(argv []string) error
}

// NewAlarmPlayer returns a player for the current OS.
func NewAlarmPlayer() *AlarmPlayer {
	return &AlarmPlayer{
		bell:    os.Stderr,
		resolve: soundCommand,
		generic: genericSoundCommand,
		start:   startDetached,
	}
}

// Play starts the named sound without waiting for it to finish.
func (player *AlarmPlayer) Play(sound string) error {
	argv, err := player.resolve(sound)
	if err != nil {
		return err
	}
	if err := player.start(argv); err != nil {
		return fmt.Errorf("play %s: %w", sound, err)
	}
	return nil
}

// Beep plays the generic alert sound and rings the terminal bell when that
// cannot be started.
func (player *AlarmPlayer) Beep() error {
	if player.generic != nil {
		argv, err := player.generic()
		if err == nil {
			if err = player.start(argv); err == nil {
				return nil
			}
		}
		log.Printf("alarm: generic alert: %v", err)
	}
	if _, err := io.WriteString(player.bell, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

func startDetached(argv []string) error {
	command := exec.Command(argv[0], argv[1:]...)
	if err := command.Start(); err != nil {
		return err
	}
	go func() {
		if err := command.Wait(); err != nil {
			log.Printf("alarm: %s exited: %v", filepath.Base(argv[0]), err)
		}
	}()
	return nil
}

// findSoundFile resolves sound as a path, or as a base name with one of
// extensions inside dirs.
func findSoundFile(sound string, dirs, extensions []string) (string, error) {
	if sound == "" {
		return "", fmt.Errorf("%w: empty sound name", ErrSoundUnavailable)
	}
	if filepath.IsAbs(sound) {
		if fileExists(sound) {
			return sound, nil
		}
		return "", fmt.Errorf("%w: %s", ErrSoundUnavailable, sound)
	}
	for _, dir := range dirs {
		for _, extension := range extensions {
			candidate := filepath.Join(dir, sound+extension)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSoundUnavailable, sound)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func userDir(parts ...string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, parts...)...)
}
