package timerwindow

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"kitchentimer/internal/core/model"
	"kitchentimer/internal/core/timer"
)

func TestButtonState(t *testing.T) {
	tests := []struct {
		status       model.Status
		startEnabled bool
		pauseLabel   string
	}{
		{model.StatusStopped, true, "Pause"},
		{model.StatusRunning, false, "Pause"},
		{model.StatusPaused, true, "Resume"},
	}

	for _, tc := range tests {
		state := model.TimerState{Mode: model.ModeCountdown, Status: tc.status}
		if StartDisabled(state) == tc.startEnabled {
			t.Errorf("%s: start enabled should be %v", tc.status, tc.startEnabled)
		}
		if got := PauseLabel(state); got != tc.pauseLabel {
			t.Errorf("%s: pause label %q, want %q", tc.status, got, tc.pauseLabel)
		}
	}
}

func TestModeLabel(t *testing.T) {
	tests := []struct {
		state model.TimerState
		want  string
	}{
		{model.DefaultState(), "Idle"},
		{model.TimerState{Mode: model.ModeCountdown, Status: model.StatusStopped}, "Ready"},
		{model.TimerState{Mode: model.ModeCountdown, Status: model.StatusRunning}, "Counting down"},
		{model.TimerState{Mode: model.ModeCountdown, Status: model.StatusPaused}, "Countdown paused"},
		{model.TimerState{Mode: model.ModeStopwatch, Status: model.StatusRunning}, "Overtime"},
		{model.TimerState{Mode: model.ModeStopwatch, Status: model.StatusPaused}, "Overtime paused"},
	}
	for _, tc := range tests {
		if got := ModeLabel(tc.state); got != tc.want {
			t.Errorf("ModeLabel(%s/%s) = %q, want %q", tc.state.Mode, tc.state.Status, got, tc.want)
		}
	}
}

func TestWindowRender(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	timerWindow := New(app, []int{1, 5}, Callbacks{})
	timerWindow.Render(timer.Snapshot{
		State:   model.TimerState{Mode: model.ModeCountdown, Status: model.StatusRunning, RemainingSeconds: 60, CountdownEnd: model.At(1000), Notify: true},
		Seconds: 60,
		Display: "00:01:00",
	})

	if timerWindow.timeLabel.Text != "00:01:00" {
		t.Errorf("time label %q", timerWindow.timeLabel.Text)
	}
	if !timerWindow.startButton.Disabled() {
		t.Error("start should be disabled while running")
	}
	if !timerWindow.notifyCheck.Checked {
		t.Error("notify check should mirror state")
	}

	timerWindow.Render(timer.Snapshot{
		State:   model.TimerState{Mode: model.ModeCountdown, Status: model.StatusPaused, RemainingSeconds: 42},
		Display: "00:00:42",
	})
	if timerWindow.startButton.Disabled() {
		t.Error("start should be enabled while paused")
	}
	if timerWindow.pauseButton.Text != "Resume" {
		t.Errorf("pause label %q", timerWindow.pauseButton.Text)
	}
}

func TestWindowRenderDoesNotEchoNotify(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var calls []bool
	timerWindow := New(app, nil, Callbacks{OnNotify: func(enabled bool) { calls = append(calls, enabled) }})
	timerWindow.Render(timer.Snapshot{State: model.TimerState{Mode: model.ModeIdle, Status: model.StatusStopped, Notify: true}})
	if len(calls) != 0 {
		t.Fatalf("render should not call OnNotify, got %v", calls)
	}

	test.Tap(timerWindow.notifyCheck)
	if len(calls) != 1 || calls[0] {
		t.Errorf("expected one OnNotify(false), got %v", calls)
	}
}

func TestWindowCallbacks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var started []string
	var presets []int
	pauses, resets := 0, 0
	timerWindow := New(app, []int{3, 10}, Callbacks{
		OnStart:         func(text string) { started = append(started, text) },
		OnPauseOrResume: func() { pauses++ },
		OnReset:         func() { resets++ },
		OnPreset:        func(minutes int) { presets = append(presets, minutes) },
	})

	test.Type(timerWindow.minutesEntry, "7")
	test.Tap(timerWindow.startButton)
	test.Tap(timerWindow.pauseButton)
	test.Tap(timerWindow.resetButton)

	if len(started) != 1 || started[0] != "7" {
		t.Errorf("start callbacks %v", started)
	}
	if pauses != 1 || resets != 1 {
		t.Errorf("pauses=%d resets=%d", pauses, resets)
	}

	presetButton := timerWindow.presetBox.Objects[1].(*widget.Button)
	if presetButton.Text != "10 min" {
		t.Fatalf("preset label %q", presetButton.Text)
	}
	test.Tap(presetButton)
	if len(presets) != 1 || presets[0] != 10 {
		t.Errorf("preset callbacks %v", presets)
	}
	if timerWindow.minutesEntry.Text != "10" {
		t.Errorf("preset should write the entry, got %q", timerWindow.minutesEntry.Text)
	}
}
