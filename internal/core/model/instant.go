package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Instant is an optional absolute point in time, held as epoch milliseconds.
// The zero value is absent.
type Instant struct {
	millis int64
	valid  bool
}

// None returns an absent Instant.
func None() Instant {
	return Instant{}
}

// At returns an Instant for the given epoch milliseconds.
func At(millis int64) Instant {
	return Instant{millis: millis, valid: true}
}

// AtTime returns an Instant for the given time.
func AtTime(t time.Time) Instant {
	return At(t.UnixMilli())
}

// Valid reports whether the Instant is present.
func (instant Instant) Valid() bool {
	return instant.valid
}

// Millis returns the epoch milliseconds and whether the Instant is present.
func (instant Instant) Millis() (int64, bool) {
	return instant.millis, instant.valid
}

// MarshalJSON encodes an absent Instant as null.
func (instant Instant) MarshalJSON() ([]byte, error) {
	if !instant.valid {
		return []byte("null"), nil
	}
	return json.Marshal(instant.millis)
}

// UnmarshalJSON accepts null or a whole number of milliseconds that fits in int64.
// Integral floats such as 1767268800000.0 are accepted.
func (instant *Instant) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*instant = None()
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode instant: %w", err)
	}
	if millis, err := number.Int64(); err == nil {
		*instant = At(millis)
		return nil
	}
	value, err := number.Float64()
	if err != nil {
		return fmt.Errorf("decode instant %s: %w", number, ErrInvalidState)
	}
	if value != math.Trunc(value) || value < math.MinInt64 || value >= math.MaxInt64 {
		return fmt.Errorf("decode instant %s: %w", number, ErrInvalidState)
	}
	*instant = At(int64(value))
	return nil
}

func (instant Instant) String() string {
	if !instant.valid {
		return "none"
	}
	return time.UnixMilli(instant.millis).UTC().Format(time.RFC3339Nano)
}
