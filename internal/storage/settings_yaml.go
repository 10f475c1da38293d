package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"kitchentimer/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Presets          []int  `yaml:"presets"`
	DefaultMinutes   int    `yaml:"default_minutes"`
	TickMilliseconds int    `yaml:"tick_milliseconds"`
	Backend          string `yaml:"backend"`
	StatePath        string `yaml:"state_path"`
	Notifications    *bool  `yaml:"notifications"`
	MQTTBroker       string `yaml:"mqtt_broker"`
	Autostart        bool   `yaml:"autostart"`
}

// LoadSettings reads user preferences from YAML in the config dir.
// If the file does not exist, default settings are returned.
func LoadSettings(fs afero.Fs, configDir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath := filepath.Join(configDir, settingsFileName)

	rawData, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in the config dir.
func SaveSettings(fs afero.Fs, configDir string, settings preferences.Settings) error {
	if err := fs.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notifications := settings.Notifications
	fileData := yamlSettings{
		Presets:          settings.Presets,
		DefaultMinutes:   settings.DefaultMinutes,
		TickMilliseconds: int(settings.TickInterval / time.Millisecond),
		Backend:          settings.Backend,
		StatePath:        settings.StatePath,
		Notifications:    &notifications,
		MQTTBroker:       settings.MQTTBroker,
		Autostart:        settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := afero.WriteFile(fs, filepath.Join(configDir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	var presets []int
	for _, minutes := range fileData.Presets {
		if minutes > 0 {
			presets = append(presets, minutes)
		}
	}
	if len(presets) > 0 {
		settings.Presets = presets
	}
	if fileData.DefaultMinutes > 0 {
		settings.DefaultMinutes = fileData.DefaultMinutes
	}
	// Faster than 50ms is wasted work, slower than a second skips displayed seconds.
	if fileData.TickMilliseconds >= 50 && fileData.TickMilliseconds <= 1000 {
		settings.TickInterval = time.Duration(fileData.TickMilliseconds) * time.Millisecond
	}
	switch fileData.Backend {
	case BackendPreferences, BackendFile, BackendSQLite, BackendMemory:
		settings.Backend = fileData.Backend
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}

	settings.StatePath = fileData.StatePath
	settings.MQTTBroker = fileData.MQTTBroker
	settings.Autostart = fileData.Autostart
}
