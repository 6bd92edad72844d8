package platform

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(summary, body string) error
}

// NewNotifier returns the desktop notifier for the current OS. Platforms
// without one get a notifier that does nothing.
func NewNotifier(appName string) Notifier {
	return newNotifier(appName)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) error {
	return nil
}
