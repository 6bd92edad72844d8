//go:build !linux && !darwin && !windows

package platform

import "fmt"

func soundCommand(sound string) ([]string, error) {
	return nil, fmt.Errorf("%w: %s", ErrSoundUnavailable, sound)
}

func genericSoundCommand() ([]string, error) {
	return nil, fmt.Errorf("%w: no generic alert sound", ErrSoundUnavailable)
}
