//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"time"
)

type ioregIdleProvider struct {
	path string
}

func newIdleProvider() IdleProvider {
	path, err := exec.LookPath("ioreg")
	if err != nil {
		return unsupportedIdleProvider{}
	}
	return &ioregIdleProvider{path: path}
}

func (provider *ioregIdleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.path, "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	return parseHIDIdleTime(string(output))
}
