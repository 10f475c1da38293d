package model

import (
	"errors"
	"fmt"
)

// ErrInvalidState indicates a TimerState that breaks its invariants.
var ErrInvalidState = errors.New("invalid timer state")

// Mode is the timer mode.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeCountdown Mode = "countdown"
	ModeStopwatch Mode = "stopwatch"
)

// Status is the run status within a mode.
type Status string

const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// TimerState is the whole persisted timer state.
type TimerState struct {
	Mode                    Mode    `json:"mode"`
	Status                  Status  `json:"status"`
	RemainingSeconds        int64   `json:"remainingSeconds"`
	StopwatchElapsedSeconds int64   `json:"stopwatchElapsedSeconds"`
	CountdownEnd            Instant `json:"countdownEndTimestamp"`
	StopwatchStart          Instant `json:"stopwatchStartTimestamp"`
	Notify                  bool    `json:"notify"`
}

// DefaultState returns the Idle/Stopped state with zeroed counters.
func DefaultState() TimerState {
	return TimerState{
		Mode:   ModeIdle,
		Status: StatusStopped,
	}
}

// Validate reports whether the state holds its invariants.
func (state TimerState) Validate() error {
	switch state.Mode {
	case ModeIdle, ModeCountdown, ModeStopwatch:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidState, state.Mode)
	}
	switch state.Status {
	case StatusStopped, StatusRunning, StatusPaused:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidState, state.Status)
	}
	if state.RemainingSeconds < 0 {
		return fmt.Errorf("%w: negative remaining seconds", ErrInvalidState)
	}
	if state.StopwatchElapsedSeconds < 0 {
		return fmt.Errorf("%w: negative stopwatch seconds", ErrInvalidState)
	}

	running := state.Status == StatusRunning
	if state.CountdownEnd.Valid() != (running && state.Mode == ModeCountdown) {
		return fmt.Errorf("%w: countdown end timestamp does not match %s/%s", ErrInvalidState, state.Mode, state.Status)
	}
	if state.StopwatchStart.Valid() != (running && state.Mode == ModeStopwatch) {
		return fmt.Errorf("%w: stopwatch start timestamp does not match %s/%s", ErrInvalidState, state.Mode, state.Status)
	}
	if state.Mode == ModeIdle && state.Status != StatusStopped {
		return fmt.Errorf("%w: idle timer cannot be %s", ErrInvalidState, state.Status)
	}
	return nil
}
