package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

// FileStore keeps all keys in one YAML document.
// Every write rewrites the whole file.
type FileStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the backing file path.
func (store *FileStore) Path() string {
	return store.path
}

// Get returns the stored value.
func (store *FileStore) Get(key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.readLocked()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores a value.
func (store *FileStore) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.readLocked()
	if err != nil {
		return err
	}
	values[key] = value
	return store.writeLocked(values)
}

// Remove deletes a key.
func (store *FileStore) Remove(key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	values, err := store.readLocked()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return store.writeLocked(values)
}

func (store *FileStore) readLocked() (map[string]string, error) {
	values := make(map[string]string)
	rawData, err := afero.ReadFile(store.fs, store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return nil, fmt.Errorf("parse state yaml: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

func (store *FileStore) writeLocked(values map[string]string) error {
	if err := store.fs.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}
	if err := afero.WriteFile(store.fs, store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
