// Package alert fans a countdown exhaustion out to sound, vibration,
// notifications and MQTT.
package alert

import (
	"sync"
	"time"

	"kitchentimer/internal/core/timer"
	"kitchentimer/internal/logger"
	"kitchentimer/internal/mqtt"
)

// Options configures a Dispatcher. Any collaborator may be nil.
type Options struct {
	Sound     SoundPlayer
	Vibrator  Vibrator
	Notifier  Notifier
	Publisher mqtt.Publisher
	Pattern   []time.Duration
	Logger    logger.Logger
}

// Dispatcher implements timer.Alerter. Every side effect runs on its own
// goroutine so the engine never waits on audio, notifications or the network.
type Dispatcher struct {
	sound     SoundPlayer
	vibrator  Vibrator
	notifier  Notifier
	publisher mqtt.Publisher
	pattern   []time.Duration
	logger    logger.Logger
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(options Options) *Dispatcher {
	dispatcher := &Dispatcher{
		sound:     options.Sound,
		vibrator:  options.Vibrator,
		notifier:  options.Notifier,
		publisher: options.Publisher,
		pattern:   options.Pattern,
		logger:    options.Logger,
	}
	if dispatcher.pattern == nil {
		dispatcher.pattern = DefaultPattern
	}
	if dispatcher.logger == nil {
		dispatcher.logger = logger.NewNopLogger()
	}
	return dispatcher
}

// Warm prepares the sound output.
func (dispatcher *Dispatcher) Warm() {
	if dispatcher.sound != nil {
		dispatcher.sound.Warm()
	}
}

// Fire plays the alert. It returns without waiting for any side effect.
func (dispatcher *Dispatcher) Fire(alert timer.Alert) {
	dispatcher.logger.Info("alert at %s", alert.At.Format(time.RFC3339))

	if dispatcher.sound != nil {
		dispatcher.goRun(dispatcher.sound.Play)
	}
	if dispatcher.vibrator != nil {
		dispatcher.goRun(func() {
			dispatcher.vibrator.Vibrate(dispatcher.pattern)
		})
	}
	if dispatcher.publisher != nil {
		dispatcher.goRun(func() {
			event := mqtt.FinishedEvent{Timestamp: alert.At, OvershootSeconds: alert.Overshoot}
			if err := dispatcher.publisher.PublishFinished(event); err != nil {
				dispatcher.logger.Warning("publish alert: %v", err)
			}
		})
	}
	if alert.Notify && dispatcher.notifier != nil {
		dispatcher.notify()
	}
}

// PrepareNotifications requests permission when it has not been decided yet.
func (dispatcher *Dispatcher) PrepareNotifications() {
	if dispatcher.notifier == nil {
		return
	}
	if dispatcher.notifier.Permission() == PermissionDefault {
		dispatcher.notifier.RequestPermission(nil)
	}
}

// Wait blocks until every side effect started so far has finished.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.wg.Wait()
}

func (dispatcher *Dispatcher) notify() {
	switch dispatcher.notifier.Permission() {
	case PermissionGranted:
		dispatcher.goRun(func() {
			dispatcher.notifier.Show(NotificationTitle, NotificationBody)
		})
	case PermissionDefault:
		// The answer may arrive after the alert; the notification is still shown then.
		dispatcher.wg.Add(1)
		dispatcher.notifier.RequestPermission(func(permission Permission) {
			defer dispatcher.wg.Done()
			if permission == PermissionGranted {
				dispatcher.notifier.Show(NotificationTitle, NotificationBody)
			}
		})
	}
}

func (dispatcher *Dispatcher) goRun(fn func()) {
	dispatcher.wg.Add(1)
	go func() {
		defer dispatcher.wg.Done()
		fn()
	}()
}

var _ timer.Alerter = (*Dispatcher)(nil)
