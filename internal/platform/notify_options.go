package platform

import "time"

// DefaultAppName is reported to the notification service.
const DefaultAppName = "Brushpaint"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// AppName overrides DefaultAppName.
	AppName string
	// Timeout is how long the notification stays visible. Zero uses five seconds.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName != "" {
		return o.AppName
	}
	return DefaultAppName
}

func (o Options) timeoutMillis() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return int32(o.Timeout / time.Millisecond)
}
