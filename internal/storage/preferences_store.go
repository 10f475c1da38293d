package storage

import "fyne.io/fyne/v2"

// PreferencesStore keeps values in the fyne application preferences.
// An empty string is treated as absent.
type PreferencesStore struct {
	preferences fyne.Preferences
}

// NewPreferencesStore wraps the given preferences.
func NewPreferencesStore(preferences fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{preferences: preferences}
}

// Get returns the stored value.
func (store *PreferencesStore) Get(key string) (string, bool, error) {
	value := store.preferences.String(key)
	return value, value != "", nil
}

// Set stores a value.
func (store *PreferencesStore) Set(key, value string) error {
	store.preferences.SetString(key, value)
	return nil
}

// Remove deletes a key.
func (store *PreferencesStore) Remove(key string) error {
	store.preferences.RemoveValue(key)
	return nil
}
