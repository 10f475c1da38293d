package timerwindow

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"kitchentimer/internal/core/model"
	"kitchentimer/internal/core/timer"
)

// Callbacks defines window action handlers.
type Callbacks struct {
	OnStart         func(minutesText string)
	OnPauseOrResume func()
	OnReset         func()
	OnPreset        func(minutes int)
	OnNotify        func(enabled bool)
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	timeLabel    *canvas.Text
	modeLabel    *widget.Label
	minutesEntry *widget.Entry
	startButton  *widget.Button
	pauseButton  *widget.Button
	resetButton  *widget.Button
	notifyCheck  *widget.Check
	presetBox    *fyne.Container
	callbacks    Callbacks

	// rendering suppresses OnNotify while the check box mirrors engine state.
	rendering bool
}

// New creates the timer window. It is hidden until Show is called.
func New(app fyne.App, presets []int, callbacks Callbacks) *Window {
	window := app.NewWindow("Kitchen Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeLabel := canvas.NewText(timer.FormatClock(0), color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 48

	timerWindow := &Window{
		window:    window,
		timeLabel: timeLabel,
		modeLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		callbacks: callbacks,
	}

	timerWindow.minutesEntry = widget.NewEntry()
	timerWindow.minutesEntry.SetPlaceHolder("Minutes")
	timerWindow.minutesEntry.OnSubmitted = func(string) {
		timerWindow.start()
	}

	timerWindow.startButton = widget.NewButton("Start", timerWindow.start)
	timerWindow.pauseButton = widget.NewButton("Pause", func() {
		if timerWindow.callbacks.OnPauseOrResume != nil {
			timerWindow.callbacks.OnPauseOrResume()
		}
	})
	timerWindow.resetButton = widget.NewButton("Reset", func() {
		if timerWindow.callbacks.OnReset != nil {
			timerWindow.callbacks.OnReset()
		}
	})
	timerWindow.notifyCheck = widget.NewCheck("Notify when done", func(enabled bool) {
		if timerWindow.rendering || timerWindow.callbacks.OnNotify == nil {
			return
		}
		timerWindow.callbacks.OnNotify(enabled)
	})

	timerWindow.presetBox = container.NewHBox()
	timerWindow.SetPresets(presets)

	controls := container.NewGridWithColumns(3, timerWindow.startButton, timerWindow.pauseButton, timerWindow.resetButton)
	window.SetContent(container.NewVBox(
		timeLabel,
		timerWindow.modeLabel,
		container.NewBorder(nil, nil, widget.NewLabel("Minutes"), nil, timerWindow.minutesEntry),
		container.NewCenter(timerWindow.presetBox),
		controls,
		timerWindow.notifyCheck,
	))
	window.Resize(fyne.NewSize(360, 300))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	timerWindow.Render(timer.Snapshot{State: model.DefaultState(), Display: timer.FormatClock(0)})
	return timerWindow
}

// Show displays and focuses the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// SetPresets replaces the preset buttons.
func (timerWindow *Window) SetPresets(presets []int) {
	timerWindow.presetBox.RemoveAll()
	for _, minutes := range presets {
		minutes := minutes
		timerWindow.presetBox.Add(widget.NewButton(PresetLabel(minutes), func() {
			timerWindow.applyPreset(minutes)
		}))
	}
	timerWindow.presetBox.Refresh()
}

// SetMinutesText replaces the minutes input text.
func (timerWindow *Window) SetMinutesText(text string) {
	timerWindow.minutesEntry.SetText(text)
}

// Render mirrors a snapshot into the widgets. Call it on the fyne goroutine.
func (timerWindow *Window) Render(snapshot timer.Snapshot) {
	state := snapshot.State

	timerWindow.timeLabel.Text = snapshot.Display
	timerWindow.timeLabel.Refresh()
	timerWindow.modeLabel.SetText(ModeLabel(state))

	if StartDisabled(state) {
		timerWindow.startButton.Disable()
	} else {
		timerWindow.startButton.Enable()
	}
	timerWindow.pauseButton.SetText(PauseLabel(state))

	if timerWindow.notifyCheck.Checked != state.Notify {
		timerWindow.rendering = true
		timerWindow.notifyCheck.SetChecked(state.Notify)
		timerWindow.rendering = false
	}
}

// Follow renders every event from the channel until it is closed.
func (timerWindow *Window) Follow(events <-chan timer.Event) {
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				timerWindow.Render(snapshot)
			})
		}
	}()
}

func (timerWindow *Window) start() {
	if timerWindow.callbacks.OnStart != nil {
		timerWindow.callbacks.OnStart(timerWindow.minutesEntry.Text)
	}
}

func (timerWindow *Window) applyPreset(minutes int) {
	timerWindow.minutesEntry.SetText(strconv.Itoa(minutes))
	if timerWindow.callbacks.OnPreset != nil {
		timerWindow.callbacks.OnPreset(minutes)
	}
}

// StartDisabled reports whether Start is unavailable: only while running.
func StartDisabled(state model.TimerState) bool {
	return state.Status == model.StatusRunning
}

// PauseLabel returns the pause/resume button caption.
func PauseLabel(state model.TimerState) string {
	if state.Status == model.StatusPaused {
		return "Resume"
	}
	return "Pause"
}

// ModeLabel describes the current mode and status.
func ModeLabel(state model.TimerState) string {
	switch state.Mode {
	case model.ModeCountdown:
		switch state.Status {
		case model.StatusRunning:
			return "Counting down"
		case model.StatusPaused:
			return "Countdown paused"
		default:
			return "Ready"
		}
	case model.ModeStopwatch:
		if state.Status == model.StatusPaused {
			return "Overtime paused"
		}
		return "Overtime"
	default:
		return "Idle"
	}
}

// PresetLabel formats a preset button caption.
func PresetLabel(minutes int) string {
	return strconv.Itoa(minutes) + " min"
}
