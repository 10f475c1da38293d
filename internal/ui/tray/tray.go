package tray

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"kitchentimer/internal/core/model"
	"kitchentimer/internal/core/timer"
	"kitchentimer/resources"
)

const menuTitle = "Kitchen Timer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen          func()
	OnPauseOrResume func()
	OnReset         func()
	OnPreset        func(minutes int)
	OnPreferences   func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	mu         sync.Mutex
	app        desktop.App
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	presetItem *fyne.MenuItem
	callbacks  Callbacks
	state      model.TimerState
	pulsing    bool
}

// New creates a tray manager with the provided callbacks.
// A nil app keeps the menu model without touching the system tray.
func New(app desktop.App, presets []int, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     model.DefaultState(),
	}

	manager.statusItem = fyne.NewMenuItem(StatusLabel(timer.FormatClock(0), manager.state), nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPauseOrResume != nil {
			manager.callbacks.OnPauseOrResume()
		}
	})
	manager.pauseItem.Disabled = true

	manager.presetItem = fyne.NewMenuItem("Start preset", nil)
	manager.SetPresets(presets)
	return manager
}

// SetPresets rebuilds the preset submenu.
func (manager *Manager) SetPresets(presets []int) {
	items := make([]*fyne.MenuItem, 0, len(presets))
	for _, minutes := range presets {
		minutes := minutes
		items = append(items, fyne.NewMenuItem(fmt.Sprintf("%d minutes", minutes), func() {
			if manager.callbacks.OnPreset != nil {
				manager.callbacks.OnPreset(minutes)
			}
		}))
	}
	manager.presetItem.ChildMenu = fyne.NewMenu("", items...)
	manager.presetItem.Disabled = len(items) == 0
	manager.refreshMenu()
}

// Render mirrors a snapshot into the status line, pause item and icon.
func (manager *Manager) Render(snapshot timer.Snapshot) {
	manager.mu.Lock()
	manager.state = snapshot.State
	pulsing := manager.pulsing
	manager.mu.Unlock()

	manager.statusItem.Label = StatusLabel(snapshot.Display, snapshot.State)
	manager.pauseItem.Label = pauseLabel(snapshot.State)
	manager.pauseItem.Disabled = snapshot.State.Mode == model.ModeIdle ||
		(snapshot.State.Mode == model.ModeCountdown && snapshot.State.Status == model.StatusStopped)
	manager.refreshMenu()
	if !pulsing {
		manager.setIcon(resources.StateIcon(snapshot.State))
	}
}

// SetPulse swaps the tray icon for the alert pattern.
func (manager *Manager) SetPulse(on bool) {
	manager.mu.Lock()
	manager.pulsing = on
	state := manager.state
	manager.mu.Unlock()

	icon := resources.StateIcon(state)
	if on {
		icon = resources.PulseIcon()
	}
	fyne.Do(func() {
		manager.setIcon(icon)
	})
}

// Pulsing reports whether the pulse icon is shown.
func (manager *Manager) Pulsing() bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.pulsing
}

// StatusLabel formats the disabled status line.
func StatusLabel(display string, state model.TimerState) string {
	switch {
	case state.Mode == model.ModeIdle:
		return "Idle"
	case state.Mode == model.ModeStopwatch:
		display = "+" + display
	}
	if state.Status == model.StatusPaused {
		return fmt.Sprintf("%s (paused)", display)
	}
	return display
}

func pauseLabel(state model.TimerState) string {
	if state.Status == model.StatusPaused {
		return "Resume"
	}
	return "Pause"
}

func (manager *Manager) setIcon(icon fyne.Resource) {
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.menu())
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Open", func() {
			if manager.callbacks.OnOpen != nil {
				manager.callbacks.OnOpen()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.presetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
