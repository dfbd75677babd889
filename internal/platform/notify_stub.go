//go:build !linux && !darwin && !windows

package platform

// Notify drops notifications on platforms without a notification service.
func Notify(_, _ string, _ Options) error {
	return nil
}
