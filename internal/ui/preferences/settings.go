package preferences

import "time"

// DefaultTickInterval refreshes the display four times per second.
const DefaultTickInterval = 250 * time.Millisecond

// Settings defines editable user preferences.
type Settings struct {
	Presets        []int
	DefaultMinutes int
	TickInterval   time.Duration

	Backend   string
	StatePath string

	Notifications bool
	MQTTBroker    string

	// Autostart registers the timer as a login item that opens in the tray.
	Autostart bool
}

// DefaultSettings returns default settings for the kitchen timer.
func DefaultSettings() Settings {
	return Settings{
		Presets:        []int{1, 3, 5, 10, 15},
		DefaultMinutes: 5,
		TickInterval:   DefaultTickInterval,
		Backend:        "preferences",
		Notifications:  true,
	}
}
