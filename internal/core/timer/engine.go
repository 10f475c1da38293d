package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchentimer/internal/core/model"
	"kitchentimer/internal/logger"
)

// ErrMissingCollaborator indicates the engine was built without a required dependency.
var ErrMissingCollaborator = errors.New("missing required collaborator")

const (
	// DefaultStorageKey is the store key holding the serialized state.
	DefaultStorageKey = "kitchen-timer-state"
	// DefaultTickInterval refreshes the display four times per second.
	DefaultTickInterval = 250 * time.Millisecond
)

// Store is the synchronous key/value store the engine persists into.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
	StorageKey   string
}

// Options carries the Engine collaborators. Store is required.
type Options struct {
	Config  Config
	Store   Store
	Clock   Clock
	Alerter Alerter
	Logger  logger.Logger
}

// Engine owns the timer state. Its methods are the only mutators, and every
// mutation is persisted before the method returns.
type Engine struct {
	mu      sync.Mutex
	config  Config
	state   model.TimerState
	store   Store
	clock   Clock
	alerter Alerter
	logger  logger.Logger
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	ticking bool
	closed  bool
}

// New creates an Engine and hydrates it from the store.
func New(options Options) (*Engine, error) {
	if options.Store == nil {
		return nil, fmt.Errorf("%w: store", ErrMissingCollaborator)
	}

	config := options.Config
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.StorageKey == "" {
		config.StorageKey = DefaultStorageKey
	}

	engine := &Engine{
		config:  config,
		state:   model.DefaultState(),
		store:   options.Store,
		clock:   options.Clock,
		alerter: options.Alerter,
		logger:  options.Logger,
	}
	if engine.clock == nil {
		engine.clock = SystemClock
	}
	if engine.alerter == nil {
		engine.alerter = nopAlerter{}
	}
	if engine.logger == nil {
		engine.logger = logger.NewNopLogger()
	}

	engine.hydrate()
	return engine, nil
}

func (engine *Engine) hydrate() {
	raw, ok, err := engine.store.Get(engine.config.StorageKey)
	if err != nil {
		engine.logger.Warning("load state: %v", err)
		return
	}
	if !ok {
		return
	}

	state, err := model.DecodeState(raw)
	if err != nil {
		engine.logger.Warning("discarding stored state: %v", err)
		if err := engine.store.Remove(engine.config.StorageKey); err != nil {
			engine.logger.Error("clear stored state: %v", err)
		}
		return
	}
	engine.state = state
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Start begins a countdown of minutes, or resumes a stopwatch.
// Non-positive minutes mean no input: a staged countdown starts as is and
// anything else is left untouched.
func (engine *Engine) Start(minutes int) {
	engine.alerter.Warm()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.state.Status == model.StatusRunning {
		return
	}

	now := engine.nowMillis()
	switch {
	case engine.state.Mode == model.ModeStopwatch:
		engine.resumeStopwatchLocked(now)
	case minutes > 0 && minutes <= maxMinutes:
		engine.startCountdownLocked(int64(minutes)*60, now)
	case engine.isStagedLocked():
		engine.startCountdownLocked(engine.state.RemainingSeconds, now)
	default:
		return
	}
	engine.commitLocked(EventState)
}

// StartInput starts from the raw text of a minutes input field.
// Unparseable text counts as no input.
func (engine *Engine) StartInput(text string) {
	minutes, _ := ParseMinutes(text)
	engine.Start(minutes)
}

// PauseOrResume freezes a running timer or restarts a paused one.
func (engine *Engine) PauseOrResume() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}

	now := engine.nowMillis()
	switch engine.state.Status {
	case model.StatusRunning:
		if engine.state.Mode == model.ModeCountdown {
			end, _ := engine.state.CountdownEnd.Millis()
			engine.state.RemainingSeconds = RemainingSeconds(end, now)
			engine.state.CountdownEnd = model.None()
		} else {
			start, _ := engine.state.StopwatchStart.Millis()
			engine.state.StopwatchElapsedSeconds = ElapsedSeconds(start, now)
			engine.state.StopwatchStart = model.None()
		}
		engine.state.Status = model.StatusPaused
	case model.StatusPaused:
		engine.state.Status = model.StatusRunning
		if engine.state.Mode == model.ModeCountdown {
			engine.state.CountdownEnd = model.At(now + engine.state.RemainingSeconds*1000)
		} else {
			engine.state.StopwatchStart = model.At(now - engine.state.StopwatchElapsedSeconds*1000)
		}
	default:
		return
	}
	engine.commitLocked(EventState)
}

// Reset returns to Idle/Stopped. The notify preference is kept.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}

	notify := engine.state.Notify
	engine.state = model.DefaultState()
	engine.state.Notify = notify
	engine.commitLocked(EventState)
}

// ApplyPreset stages a countdown of minutes without starting it.
func (engine *Engine) ApplyPreset(minutes int) {
	if minutes <= 0 || minutes > maxMinutes {
		return
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}

	engine.state.Mode = model.ModeCountdown
	engine.state.Status = model.StatusStopped
	engine.state.RemainingSeconds = int64(minutes) * 60
	engine.state.CountdownEnd = model.None()
	engine.state.StopwatchElapsedSeconds = 0
	engine.state.StopwatchStart = model.None()
	engine.commitLocked(EventState)
}

// SetNotifyPreference records whether desktop notifications are wanted.
func (engine *Engine) SetNotifyPreference(enabled bool) {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.state.Notify = enabled
	engine.commitLocked(EventState)
	engine.mu.Unlock()

	if enabled {
		engine.alerter.PrepareNotifications()
	}
}

// Tick re-derives the running value from its timestamp.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	if engine.closed || engine.state.Status != model.StatusRunning {
		engine.mu.Unlock()
		return
	}

	nowTime := engine.clock.Now()
	now := nowTime.UnixMilli()
	switch engine.state.Mode {
	case model.ModeCountdown:
		end, _ := engine.state.CountdownEnd.Millis()
		remaining := RemainingSeconds(end, now)
		engine.state.RemainingSeconds = remaining
		if remaining <= 0 {
			alert := engine.exhaustCountdownLocked(nowTime)
			engine.mu.Unlock()
			engine.alerter.Fire(alert)
			return
		}
	case model.ModeStopwatch:
		start, _ := engine.state.StopwatchStart.Millis()
		engine.state.StopwatchElapsedSeconds = ElapsedSeconds(start, now)
	}

	engine.commitLocked(EventTick)
	engine.mu.Unlock()
}

// exhaustCountdownLocked hands a finished countdown over to the stopwatch,
// carrying the time already spent past the deadline.
func (engine *Engine) exhaustCountdownLocked(nowTime time.Time) Alert {
	now := nowTime.UnixMilli()
	end, _ := engine.state.CountdownEnd.Millis()
	overshoot := ElapsedSeconds(end, now)

	engine.state.Mode = model.ModeStopwatch
	engine.state.Status = model.StatusRunning
	engine.state.StopwatchElapsedSeconds = overshoot
	engine.state.StopwatchStart = model.At(now - overshoot*1000)
	engine.state.CountdownEnd = model.None()
	engine.state.RemainingSeconds = 0

	engine.logger.Info("countdown finished, stopwatch running (overshoot %ds)", overshoot)
	engine.commitLocked(EventAlert)

	return Alert{
		At:        nowTime,
		Overshoot: overshoot,
		Notify:    engine.state.Notify,
	}
}

func (engine *Engine) startCountdownLocked(seconds int64, now int64) {
	engine.state.Mode = model.ModeCountdown
	engine.state.Status = model.StatusRunning
	engine.state.RemainingSeconds = seconds
	engine.state.CountdownEnd = model.At(now + seconds*1000)
	engine.state.StopwatchElapsedSeconds = 0
	engine.state.StopwatchStart = model.None()
}

func (engine *Engine) resumeStopwatchLocked(now int64) {
	engine.state.Status = model.StatusRunning
	engine.state.StopwatchStart = model.At(now - engine.state.StopwatchElapsedSeconds*1000)
}

func (engine *Engine) isStagedLocked() bool {
	return engine.state.Mode == model.ModeCountdown &&
		engine.state.Status == model.StatusStopped &&
		engine.state.RemainingSeconds > 0
}

// State returns a copy of the current state.
func (engine *Engine) State() model.TimerState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Snapshot returns the state with its derived display values.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked(engine.nowMillis())
}

// Display returns the formatted HH:MM:SS value.
func (engine *Engine) Display() string {
	return engine.Snapshot().Display
}

// Persist writes the current state to the store.
func (engine *Engine) Persist() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.persistLocked()
}

// StartTicking launches the tick loop and ticks once immediately.
func (engine *Engine) StartTicking() {
	engine.mu.Lock()
	if engine.ticking || engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.ticking = true
	engine.stopCh = make(chan struct{})
	engine.doneCh = make(chan struct{})
	stopCh, doneCh := engine.stopCh, engine.doneCh
	engine.mu.Unlock()

	engine.Tick()
	go engine.run(stopCh, doneCh)
}

// StopTicking terminates the tick loop and waits for it to exit.
func (engine *Engine) StopTicking() {
	engine.mu.Lock()
	if !engine.ticking {
		engine.mu.Unlock()
		return
	}
	engine.ticking = false
	close(engine.stopCh)
	doneCh := engine.doneCh
	engine.mu.Unlock()

	<-doneCh
}

// Close stops ticking, saves the state and closes observers.
// The engine is finished afterwards: operations and ticks are ignored,
// StartTicking does nothing and Subscribe returns a closed channel.
func (engine *Engine) Close() error {
	engine.StopTicking()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return nil
	}
	engine.closed = true
	err := engine.persistLocked()
	for _, ch := range engine.events {
		close(ch)
	}
	engine.events = nil
	return err
}

func (engine *Engine) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(engine.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			engine.Tick()
		}
	}
}

func (engine *Engine) commitLocked(eventType EventType) {
	_ = engine.persistLocked()
	engine.emitLocked(Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(engine.nowMillis()),
		At:       engine.clock.Now(),
	})
}

func (engine *Engine) persistLocked() error {
	raw, err := model.EncodeState(engine.state)
	if err != nil {
		engine.logger.Error("persist state: %v", err)
		return err
	}
	if err := engine.store.Set(engine.config.StorageKey, raw); err != nil {
		engine.logger.Error("persist state: %v", err)
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

func (engine *Engine) snapshotLocked(now int64) Snapshot {
	seconds := liveSeconds(engine.state, now)
	return Snapshot{
		State:   engine.state,
		Seconds: seconds,
		Display: FormatClock(seconds),
	}
}

func (engine *Engine) nowMillis() int64 {
	return engine.clock.Now().UnixMilli()
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
