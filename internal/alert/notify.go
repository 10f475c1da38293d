package alert

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Permission is the notification permission state.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

const (
	NotificationTitle = "Timer done"
	NotificationBody  = "Countdown finished. Stopwatch started."
)

// Notifier shows system notifications.
type Notifier interface {
	Permission() Permission
	// RequestPermission asks asynchronously; done may be nil.
	RequestPermission(done func(Permission))
	Show(title, body string)
}

// FyneNotifier sends desktop notifications through the fyne app.
// Desktop notifications need no grant, so the permission only reflects
// whether notifications are enabled in settings.
type FyneNotifier struct {
	app     fyne.App
	mu      sync.Mutex
	enabled bool
}

// NewFyneNotifier creates a notifier for app.
func NewFyneNotifier(app fyne.App, enabled bool) *FyneNotifier {
	return &FyneNotifier{app: app, enabled: enabled}
}

// Permission reports Granted when notifications are enabled.
func (notifier *FyneNotifier) Permission() Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if !notifier.enabled {
		return PermissionDenied
	}
	return PermissionGranted
}

// SetEnabled toggles notifications from settings.
func (notifier *FyneNotifier) SetEnabled(enabled bool) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.enabled = enabled
}

// RequestPermission resolves immediately on its own goroutine.
func (notifier *FyneNotifier) RequestPermission(done func(Permission)) {
	if done == nil {
		return
	}
	permission := notifier.Permission()
	go done(permission)
}

// Show sends the notification on the UI thread.
func (notifier *FyneNotifier) Show(title, body string) {
	fyne.Do(func() {
		notifier.app.SendNotification(fyne.NewNotification(title, body))
	})
}
