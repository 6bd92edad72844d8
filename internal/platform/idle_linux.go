//go:build linux

package platform

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	mutterIdleService = "org.gnome.Mutter.IdleMonitor"
	mutterIdlePath    = "/org/gnome/Mutter/IdleMonitor/Core"
	mutterIdleMethod  = "org.gnome.Mutter.IdleMonitor.GetIdletime"
)

// mutterIdleProvider reads idle time from GNOME's IdleMonitor, which also
// works under Wayland.
type mutterIdleProvider struct {
	conn *dbus.Conn
}

type xprintidleProvider struct {
	path string
}

func newIdleProvider() IdleProvider {
	var providers []IdleProvider
	if conn, err := dbus.ConnectSessionBus(); err == nil {
		providers = append(providers, &mutterIdleProvider{conn: conn})
	}
	if path, err := exec.LookPath("xprintidle"); err == nil {
		providers = append(providers, &xprintidleProvider{path: path})
	}
	if len(providers) == 0 {
		return unsupportedIdleProvider{}
	}
	return &chainIdleProvider{providers: providers}
}

func (provider *mutterIdleProvider) IdleDuration() (time.Duration, error) {
	var idleMillis uint64
	object := provider.conn.Object(mutterIdleService, dbus.ObjectPath(mutterIdlePath))
	if err := object.Call(mutterIdleMethod, 0).Store(&idleMillis); err != nil {
		return 0, fmt.Errorf("mutter idle monitor: %w", err)
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}

func (provider *xprintidleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.path).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdleMillis(string(output))
}
