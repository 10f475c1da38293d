package preferences

import (
	"go/build"
	"reflect"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if !reflect.DeepEqual(settings.Presets, []int{1, 3, 5, 10, 15}) {
		t.Errorf("unexpected presets: %v", settings.Presets)
	}
	if settings.TickInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms tick, got %v", settings.TickInterval)
	}
}

// storage imports this package, so it must stay below the engine in the
// import graph or engine tests that use a store stop compiling.
func TestSettingsDoNotImportEngine(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	if err != nil {
		t.Fatalf("import dir: %v", err)
	}
	for _, path := range pkg.Imports {
		if strings.HasPrefix(path, "kitchentimer/internal/core/timer") ||
			strings.HasPrefix(path, "kitchentimer/internal/storage") {
			t.Errorf("preferences imports %s", path)
		}
	}
}

func TestParsePresets(t *testing.T) {
	tests := map[string][]int{
		"1, 3, 5":       {1, 3, 5},
		"10,abc,0,-2,4": {10, 4},
		"5, 5, 2":       {5, 2},
		"":              nil,
	}
	for input, want := range tests {
		if got := ParsePresets(input); !reflect.DeepEqual(got, want) {
			t.Errorf("ParsePresets(%q) = %v, want %v", input, got, want)
		}
	}
	if got := FormatPresets([]int{1, 15}); got != "1, 15" {
		t.Errorf("unexpected format: %s", got)
	}
}

func TestWindowSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.presets.SetText("2, 4")
	prefs.defaultMinutes.SetText("nope")
	prefs.notifications.SetChecked(false)
	prefs.broker.SetText(" tcp://broker:1883 ")
	prefs.autostart.SetChecked(true)
	prefs.handleSave()

	if saved == nil {
		t.Fatal("expected onSave to be called")
	}
	if !reflect.DeepEqual(saved.Presets, []int{2, 4}) {
		t.Errorf("unexpected presets: %v", saved.Presets)
	}
	if saved.DefaultMinutes != 5 {
		t.Errorf("invalid default minutes should keep 5, got %d", saved.DefaultMinutes)
	}
	if saved.Notifications {
		t.Error("expected notifications off")
	}
	if saved.MQTTBroker != "tcp://broker:1883" {
		t.Errorf("unexpected broker %q", saved.MQTTBroker)
	}
	if !saved.Autostart {
		t.Error("expected autostart on")
	}
}
