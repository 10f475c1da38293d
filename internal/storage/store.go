package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/spf13/afero"
)

// ErrUnknownBackend indicates an unsupported store backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is a synchronous string key/value store holding the timer snapshot.
type Store interface {
	// Get returns the value and whether the key is present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Backend names accepted by Open.
const (
	BackendPreferences = "preferences"
	BackendFile        = "file"
	BackendSQLite      = "sqlite"
	BackendMemory      = "memory"
)

// OpenConfig selects and configures a store backend.
type OpenConfig struct {
	Backend string
	// Path is the state file or database path. Empty uses a file in Dir.
	Path string
	// Dir is the application config directory.
	Dir string
	// Preferences backs the preferences backend.
	Preferences fyne.Preferences
}

// Open creates the store for the configured backend.
// The returned close function releases backend resources.
func Open(config OpenConfig) (Store, func() error, error) {
	noop := func() error { return nil }

	switch config.Backend {
	case "", BackendPreferences:
		if config.Preferences == nil {
			return nil, nil, fmt.Errorf("open preferences store: no preferences available")
		}
		return NewPreferencesStore(config.Preferences), noop, nil
	case BackendFile:
		path := config.Path
		if path == "" {
			path = filepath.Join(config.Dir, stateFileName)
		}
		return NewFileStore(afero.NewOsFs(), path), noop, nil
	case BackendSQLite:
		path := config.Path
		if path == "" {
			path = filepath.Join(config.Dir, stateDatabaseName)
		}
		store, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.Backend)
	}
}
