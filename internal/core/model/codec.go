package model

import (
	"encoding/json"
	"fmt"
)

// EncodeState serializes the state to its stored JSON form.
func EncodeState(state TimerState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode timer state: %w", err)
	}
	return string(data), nil
}

// DecodeState parses a stored snapshot.
// Keys missing from the snapshot keep their default values.
func DecodeState(raw string) (TimerState, error) {
	state := DefaultState()
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return DefaultState(), fmt.Errorf("decode timer state: %w", err)
	}
	if err := state.Validate(); err != nil {
		return DefaultState(), fmt.Errorf("decode timer state: %w", err)
	}
	return state, nil
}
