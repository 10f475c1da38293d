package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	if err := store.Set("kitchen-timer-state", `{"mode":"idle"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get("kitchen-timer-state")
	if err != nil || !ok || value != `{"mode":"idle"}` {
		t.Fatalf("Get after Set: value=%q ok=%v err=%v", value, ok, err)
	}

	if err := store.Set("kitchen-timer-state", "{not json"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if value, _, _ := store.Get("kitchen-timer-state"); value != "{not json" {
		t.Errorf("expected overwritten value, got %q", value)
	}

	if err := store.Remove("kitchen-timer-state"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, err := store.Get("kitchen-timer-state"); err != nil || ok {
		t.Errorf("expected key removed, ok=%v err=%v", ok, err)
	}
	if err := store.Remove("kitchen-timer-state"); err != nil {
		t.Errorf("removing an absent key should succeed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestPreferencesStore(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	exerciseStore(t, NewPreferencesStore(app.Preferences()))
}

func TestFileStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/config/kitchen-timer/state.yaml")
	exerciseStore(t, store)

	if err := store.Set("a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	reopened := NewFileStore(fs, store.Path())
	if value, ok, _ := reopened.Get("a"); !ok || value != "1" {
		t.Errorf("expected value to survive reopen, got %q %v", value, ok)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/state.yaml", []byte("- a\n- b\n"), 0o644)
	store := NewFileStore(fs, "/state.yaml")
	if _, _, err := store.Get("a"); err == nil {
		t.Error("expected parse error")
	}
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "nested", "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer store.Close()
	exerciseStore(t, store)
}

func TestOpen(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	dir := t.TempDir()

	tests := []struct {
		backend string
		want    string
	}{
		{"", "*storage.PreferencesStore"},
		{BackendPreferences, "*storage.PreferencesStore"},
		{BackendFile, "*storage.FileStore"},
		{BackendSQLite, "*storage.SQLiteStore"},
		{BackendMemory, "*storage.MemoryStore"},
	}
	for _, tc := range tests {
		store, closeStore, err := Open(OpenConfig{Backend: tc.backend, Dir: dir, Preferences: app.Preferences()})
		if err != nil {
			t.Fatalf("Open(%q): %v", tc.backend, err)
		}
		if got := typeName(store); got != tc.want {
			t.Errorf("Open(%q) = %s, want %s", tc.backend, got, tc.want)
		}
		if err := closeStore(); err != nil {
			t.Errorf("close %q: %v", tc.backend, err)
		}
	}

	if _, _, err := Open(OpenConfig{Backend: "redis"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
	if _, _, err := Open(OpenConfig{Backend: BackendPreferences}); err == nil {
		t.Error("expected error without preferences")
	}
}

func typeName(store Store) string {
	switch store.(type) {
	case *PreferencesStore:
		return "*storage.PreferencesStore"
	case *FileStore:
		return "*storage.FileStore"
	case *SQLiteStore:
		return "*storage.SQLiteStore"
	case *MemoryStore:
		return "*storage.MemoryStore"
	default:
		return "unknown"
	}
}
