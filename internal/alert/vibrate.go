package alert

import (
	"sync"
	"time"
)

// DefaultPattern alternates on and off phases, starting with on.
var DefaultPattern = []time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

// Vibrator plays an on/off pattern.
type Vibrator interface {
	Vibrate(pattern []time.Duration)
}

// PatternVibrator drives an on/off sink, such as a flashing tray icon.
type PatternVibrator struct {
	mu    sync.Mutex
	set   func(on bool)
	sleep func(time.Duration)
}

// NewPatternVibrator creates a vibrator that switches set on and off.
func NewPatternVibrator(set func(on bool)) *PatternVibrator {
	return &PatternVibrator{set: set, sleep: time.Sleep}
}

// Vibrate blocks until the pattern has played and always ends switched off.
// Concurrent calls play one after another.
func (vibrator *PatternVibrator) Vibrate(pattern []time.Duration) {
	vibrator.mu.Lock()
	defer vibrator.mu.Unlock()

	for index, phase := range pattern {
		vibrator.set(index%2 == 0)
		vibrator.sleep(phase)
	}
	vibrator.set(false)
}
