//go:build !linux

package platform

func newNotifier(string) Notifier {
	return noopNotifier{}
}
