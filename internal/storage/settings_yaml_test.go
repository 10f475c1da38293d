package storage

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/afero"

	"kitchentimer/internal/ui/preferences"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(afero.NewMemMapFs(), "/config")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(settings, preferences.DefaultSettings()) {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveLoadSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	settings := preferences.DefaultSettings()
	settings.Presets = []int{2, 7}
	settings.DefaultMinutes = 7
	settings.TickInterval = 500 * time.Millisecond
	settings.Backend = BackendSQLite
	settings.StatePath = "/var/lib/timer.db"
	settings.Notifications = false
	settings.MQTTBroker = "tcp://broker:1883"
	settings.Autostart = true

	if err := SaveSettings(fs, "/config", settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	loaded, err := LoadSettings(fs, "/config")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(loaded, settings) {
		t.Errorf("got %+v, want %+v", loaded, settings)
	}
}

func TestLoadSettingsRejectsOutOfRangeValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	raw := "presets: [0, -1]\ndefault_minutes: -4\ntick_milliseconds: 5\nbackend: redis\n"
	_ = afero.WriteFile(fs, "/config/settings.yaml", []byte(raw), 0o644)

	settings, err := LoadSettings(fs, "/config")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(settings, preferences.DefaultSettings()) {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/config/settings.yaml", []byte("presets: [1, 2"), 0o644)
	if _, err := LoadSettings(fs, "/config"); err == nil {
		t.Error("expected parse error")
	}
}
