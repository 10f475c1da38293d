package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window         fyne.Window
	settings       Settings
	onSave         func(Settings)
	presets        *widget.Entry
	defaultMinutes *widget.Entry
	notifications  *widget.Check
	broker         *widget.Entry
	autostart      *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Kitchen Timer Settings")

	presets := widget.NewEntry()
	presets.SetPlaceHolder("1, 3, 5, 10")
	defaultMinutes := widget.NewEntry()
	notifications := widget.NewCheck("Allow desktop notifications", nil)
	broker := widget.NewEntry()
	broker.SetPlaceHolder("tcp://localhost:1883")
	autostart := widget.NewCheck("Start at login (tray only)", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Presets (min)"), nil, presets),
		container.NewHBox(widget.NewLabel("Default minutes"), defaultMinutes),
		notifications,
		autostart,
		widget.NewLabelWithStyle("Home automation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("MQTT broker"), nil, broker),
		widget.NewLabel("Broker changes apply after restart."),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 320))

	prefs := &Window{
		window:         window,
		onSave:         onSave,
		presets:        presets,
		defaultMinutes: defaultMinutes,
		notifications:  notifications,
		broker:         broker,
		autostart:      autostart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.presets.SetText(FormatPresets(settings.Presets))
	prefs.defaultMinutes.SetText(fmt.Sprintf("%d", settings.DefaultMinutes))
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.broker.SetText(settings.MQTTBroker)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if presets := ParsePresets(prefs.presets.Text); len(presets) > 0 {
		settings.Presets = presets
	}
	if minutes, ok := parsePositiveInt(prefs.defaultMinutes.Text); ok {
		settings.DefaultMinutes = minutes
	}
	settings.Notifications = prefs.notifications.Checked
	settings.MQTTBroker = strings.TrimSpace(prefs.broker.Text)
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// ParsePresets reads a comma separated list of positive minute values.
// Invalid and duplicate entries are skipped.
func ParsePresets(value string) []int {
	var presets []int
	seen := make(map[int]bool)
	for _, field := range strings.Split(value, ",") {
		minutes, ok := parsePositiveInt(strings.TrimSpace(field))
		if !ok || seen[minutes] {
			continue
		}
		seen[minutes] = true
		presets = append(presets, minutes)
	}
	return presets
}

// FormatPresets renders presets for editing.
func FormatPresets(presets []int) string {
	fields := make([]string, 0, len(presets))
	for _, minutes := range presets {
		fields = append(fields, strconv.Itoa(minutes))
	}
	return strings.Join(fields, ", ")
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
