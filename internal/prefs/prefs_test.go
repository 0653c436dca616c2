package prefs

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "streak.db"))
	if err := store.Open(); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteRoundtrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Set("lang", "ru"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := store.Get("lang")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "ru" {
		t.Errorf("Get(lang) = %q, want %q", got, "ru")
	}

	// Overwrite replaces the value.
	if err := store.Set("lang", "en"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	got, err = store.Get("lang")
	if err != nil {
		t.Fatalf("Get() after overwrite failed: %v", err)
	}
	if got != "en" {
		t.Errorf("Get(lang) after overwrite = %q, want %q", got, "en")
	}
}

func TestSQLiteMissingKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := store.Get("user_id"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want %v", err, ErrNotFound)
	}
	if err := store.Delete("user_id"); err != ErrNotFound {
		t.Errorf("Delete(missing) error = %v, want %v", err, ErrNotFound)
	}
}

func TestSQLiteDelete(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Set("username", "ada"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Delete("username"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("username"); err != ErrNotFound {
		t.Errorf("Get() after delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if _, err := store.Get("lang"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want %v", err, ErrNotFound)
	}
	if err := store.Set("lang", "ru"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := store.Get("lang")
	if err != nil || got != "ru" {
		t.Errorf("Get(lang) = %q, %v; want %q, nil", got, err, "ru")
	}
	if err := store.Delete("lang"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete("lang"); err != ErrNotFound {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNotFound)
	}
}
