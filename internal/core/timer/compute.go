package timer

import (
	"fmt"
	"strings"

	"kitchentimer/internal/core/model"
)

// RemainingSeconds returns the whole seconds left until endMillis.
// Partial seconds round up so the display never shows 0 while time remains.
func RemainingSeconds(endMillis, nowMillis int64) int64 {
	diff := endMillis - nowMillis
	if diff <= 0 {
		return 0
	}
	return (diff + 999) / 1000
}

// ElapsedSeconds returns the whole seconds that have passed since startMillis.
func ElapsedSeconds(startMillis, nowMillis int64) int64 {
	diff := nowMillis - startMillis
	if diff <= 0 {
		return 0
	}
	return diff / 1000
}

// FormatClock renders seconds as HH:MM:SS. Hours are not capped.
func FormatClock(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseMinutes reads the leading integer of a minutes input field.
// It reports false for missing or non-positive values.
func ParseMinutes(text string) (int, bool) {
	text = strings.TrimSpace(text)
	sign := 1
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		if text[0] == '-' {
			sign = -1
		}
		text = text[1:]
	}

	value := 0
	digits := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		digits++
		if value > maxMinutes {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	value *= sign
	if value <= 0 {
		return 0, false
	}
	return value, true
}

// maxMinutes bounds accepted input so seconds and milliseconds stay far from overflow.
const maxMinutes = 1_000_000

func liveSeconds(state model.TimerState, nowMillis int64) int64 {
	switch state.Mode {
	case model.ModeCountdown:
		if end, ok := state.CountdownEnd.Millis(); ok {
			return RemainingSeconds(end, nowMillis)
		}
		return state.RemainingSeconds
	case model.ModeStopwatch:
		if start, ok := state.StopwatchStart.Millis(); ok {
			return ElapsedSeconds(start, nowMillis)
		}
		return state.StopwatchElapsedSeconds
	default:
		return 0
	}
}
