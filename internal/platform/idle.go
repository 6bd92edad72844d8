package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrIdleUnsupported indicates the desktop offers no way to read idle time.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, ErrIdleUnsupported
}

// chainIdleProvider asks each provider in turn and sticks with the first
// one that answers.
type chainIdleProvider struct {
	providers []IdleProvider
	selected  IdleProvider
}

func (chain *chainIdleProvider) IdleDuration() (time.Duration, error) {
	if chain.selected != nil {
		return chain.selected.IdleDuration()
	}
	var errs []error
	for _, provider := range chain.providers {
		idle, err := provider.IdleDuration()
		if err == nil {
			chain.selected = provider
			return idle, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("%w: %w", ErrIdleUnsupported, errors.Join(errs...))
}

func parseIdleMillis(output string) (time.Duration, error) {
	idleMillis, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}

var hidIdlePattern = regexp.MustCompile(`"HIDIdleTime"\s*=\s*(\d+)`)

// parseHIDIdleTime reads the nanosecond HIDIdleTime value from ioreg output.
func parseHIDIdleTime(output string) (time.Duration, error) {
	match := hidIdlePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("parse HIDIdleTime: value not found")
	}
	idleNanos, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
	}
	return time.Duration(idleNanos), nil
}
