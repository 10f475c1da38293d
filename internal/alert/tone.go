package alert

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"kitchentimer/internal/logger"
)

// Tone is a sine beep with an exponential attack and decay.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Floor     float64
	Peak      float64
	Tail      float64
}

// DefaultTone is the 1.2s, 880Hz alert beep.
func DefaultTone() Tone {
	return Tone{
		Frequency: 880,
		Duration:  1200 * time.Millisecond,
		Attack:    20 * time.Millisecond,
		Floor:     0.001,
		Peak:      0.4,
		Tail:      0.0001,
	}
}

// Gain returns the envelope at offset t; it is zero outside the tone.
func (tone Tone) Gain(t time.Duration) float64 {
	if t < 0 || t >= tone.Duration {
		return 0
	}
	if t < tone.Attack {
		progress := float64(t) / float64(tone.Attack)
		return tone.Floor * math.Pow(tone.Peak/tone.Floor, progress)
	}
	progress := float64(t-tone.Attack) / float64(tone.Duration-tone.Attack)
	return tone.Peak * math.Pow(tone.Tail/tone.Peak, progress)
}

// Streamer renders the tone as mono audio duplicated on both channels.
func (tone Tone) Streamer(sampleRate beep.SampleRate) beep.Streamer {
	total := sampleRate.N(tone.Duration)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && position < total {
			seconds := float64(position) / float64(sampleRate)
			offset := time.Duration(seconds * float64(time.Second))
			value := tone.Gain(offset) * math.Sin(2*math.Pi*tone.Frequency*seconds)
			samples[n][0] = value
			samples[n][1] = value
			n++
			position++
		}
		return n, true
	})
}

// SoundPlayer plays the alert sound.
type SoundPlayer interface {
	// Warm prepares the output device. It is idempotent.
	Warm()
	Play()
}

const defaultSampleRate beep.SampleRate = 44100

// BeepPlayer plays a Tone through the system speaker.
type BeepPlayer struct {
	once       sync.Once
	sampleRate beep.SampleRate
	tone       Tone
	initErr    error
	logger     logger.Logger
}

// NewBeepPlayer creates a player for tone.
func NewBeepPlayer(tone Tone, log logger.Logger) *BeepPlayer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &BeepPlayer{
		sampleRate: defaultSampleRate,
		tone:       tone,
		logger:     log,
	}
}

// Warm initialises the speaker once so the first alert starts without delay.
func (player *BeepPlayer) Warm() {
	player.once.Do(func() {
		player.initErr = speaker.Init(player.sampleRate, player.sampleRate.N(time.Second/10))
		if player.initErr != nil {
			player.logger.Warning("init speaker: %v", player.initErr)
		}
	})
}

// Play starts the tone and returns immediately.
func (player *BeepPlayer) Play() {
	player.Warm()
	if player.initErr != nil {
		return
	}
	speaker.Play(player.tone.Streamer(player.sampleRate))
}
