// Package mqtt publishes timer events to an MQTT broker, with a fake for tests.
package mqtt

import (
	"encoding/json"
	"time"
)

// Topic is the MQTT topic for timer events.
const Topic = "kitchen-timer/events"

// EventCountdownFinished is published when a countdown hands over to the stopwatch.
const EventCountdownFinished = "COUNTDOWN_FINISHED"

// Publisher publishes timer events.
type Publisher interface {
	// PublishFinished sends a countdown exhaustion. Failures are returned,
	// never retried.
	PublishFinished(event FinishedEvent) error

	// Close disconnects from the broker.
	Close() error
}

// FinishedEvent describes a countdown exhaustion.
type FinishedEvent struct {
	Timestamp        time.Time
	OvershootSeconds int64
}

// Payload is the MQTT message payload.
type Payload struct {
	Timer TimerPayload `json:"timer"`
}

// TimerPayload contains the event details.
type TimerPayload struct {
	Timestamp        string `json:"timestamp"`
	Event            string `json:"event"`
	OvershootSeconds int64  `json:"overshoot_seconds"`
}

// FormatPayload creates the JSON payload for a finished countdown.
func FormatPayload(event FinishedEvent) ([]byte, error) {
	payload := Payload{
		Timer: TimerPayload{
			Timestamp:        event.Timestamp.UTC().Format(time.RFC3339),
			Event:            EventCountdownFinished,
			OvershootSeconds: event.OvershootSeconds,
		},
	}
	return json.Marshal(payload)
}
