//go:build linux

package platform

import (
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notificationsNotify  = "org.freedesktop.Notifications.Notify"
)

type dbusNotifier struct {
	appName string
	conn    *dbus.Conn
	lastID  uint32
}

func newNotifier(appName string) Notifier {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Printf("notify: session bus unavailable: %v", err)
		return noopNotifier{}
	}
	return &dbusNotifier{appName: appName, conn: conn}
}

// Notify replaces the previous notification from this process.
func (notifier *dbusNotifier) Notify(summary, body string) error {
	object := notifier.conn.Object(notificationsService, notificationsPath)
	call := object.Call(notificationsNotify, 0,
		notifier.appName,
		notifier.lastID,
		"alarm-symbolic",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		int32(10000),
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	if err := call.Store(&notifier.lastID); err != nil {
		return fmt.Errorf("read notification id: %w", err)
	}
	return nil
}
