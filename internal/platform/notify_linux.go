//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"
)

// Notify sends a desktop notification using the Freedesktop.org notification spec.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{}
	if opts.IconPath != "" {
		hints["image-path"] = dbus.MakeVariant(opts.IconPath)
	}
	obj := conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsName+".Notify", 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, hints, opts.timeoutMillis())
	return call.Err
}
