package timer

import (
	"time"

	"kitchentimer/internal/core/model"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventState EventType = "state"
	EventTick  EventType = "tick"
	EventAlert EventType = "alert"
)

// Event is an Engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a copy of the engine state together with its derived display values.
type Snapshot struct {
	State model.TimerState
	// Seconds is the authoritative value for the current mode and status.
	Seconds int64
	Display string
}

// Alert describes one countdown exhaustion.
type Alert struct {
	At time.Time
	// Overshoot is how many whole seconds past the deadline the exhaustion was observed.
	Overshoot int64
	Notify    bool
}

// Alerter receives the engine's alert side effects.
// Implementations must not block the caller.
type Alerter interface {
	// Warm prepares the sound output path. It is idempotent.
	Warm()
	// Fire signals a countdown exhaustion.
	Fire(alert Alert)
	// PrepareNotifications asks for notification permission when it is undetermined.
	PrepareNotifications()
}

type nopAlerter struct{}

func (nopAlerter) Warm()                 {}
func (nopAlerter) Fire(Alert)            {}
func (nopAlerter) PrepareNotifications() {}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
