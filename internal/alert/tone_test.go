package alert

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestToneGainEnvelope(t *testing.T) {
	tone := DefaultTone()

	if got := tone.Gain(0); math.Abs(got-0.001) > 1e-9 {
		t.Errorf("expected floor gain at start, got %v", got)
	}
	if got := tone.Gain(20 * time.Millisecond); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("expected peak gain after attack, got %v", got)
	}
	if got := tone.Gain(1199 * time.Millisecond); got > 0.001 {
		t.Errorf("expected gain near tail at the end, got %v", got)
	}
	if got := tone.Gain(1200 * time.Millisecond); got != 0 {
		t.Errorf("expected silence after the tone, got %v", got)
	}
	if got := tone.Gain(-time.Millisecond); got != 0 {
		t.Errorf("expected silence before the tone, got %v", got)
	}

	previous := tone.Gain(20 * time.Millisecond)
	for offset := 30 * time.Millisecond; offset < tone.Duration; offset += 50 * time.Millisecond {
		gain := tone.Gain(offset)
		if gain > previous {
			t.Fatalf("gain should decay after the attack, rose at %v", offset)
		}
		previous = gain
	}
}

func TestToneStreamerLength(t *testing.T) {
	const sampleRate beep.SampleRate = 8000
	streamer := DefaultTone().Streamer(sampleRate)

	buffer := make([][2]float64, 512)
	total := 0
	for {
		n, ok := streamer.Stream(buffer)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if buffer[i][0] != buffer[i][1] {
				t.Fatalf("channels differ at sample %d", total+i)
			}
			if math.Abs(buffer[i][0]) > 0.4+1e-9 {
				t.Fatalf("sample %d exceeds peak: %v", total+i, buffer[i][0])
			}
		}
		total += n
	}

	if want := sampleRate.N(1200 * time.Millisecond); total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}
