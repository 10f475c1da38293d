package resources

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"kitchentimer/internal/core/model"
)

var (
	iconsOnce   sync.Once
	idleIcon    fyne.Resource
	runningIcon fyne.Resource
	pausedIcon  fyne.Resource
	pulseIcon   fyne.Resource
)

func loadIcons() {
	iconsOnce.Do(func() {
		idleIcon = theme.HistoryIcon()
		runningIcon = theme.NewPrimaryThemedResource(theme.HistoryIcon())
		pausedIcon = theme.NewDisabledResource(theme.MediaPauseIcon())
		pulseIcon = theme.NewErrorThemedResource(theme.WarningIcon())
	})
}

// AppIcon returns the application icon.
func AppIcon() fyne.Resource {
	loadIcons()
	return idleIcon
}

// StateIcon returns the tray icon for the timer state.
func StateIcon(state model.TimerState) fyne.Resource {
	loadIcons()
	switch state.Status {
	case model.StatusRunning:
		return runningIcon
	case model.StatusPaused:
		return pausedIcon
	default:
		return idleIcon
	}
}

// PulseIcon returns the highlighted icon shown while the alert pattern is on.
func PulseIcon() fyne.Resource {
	loadIcons()
	return pulseIcon
}
