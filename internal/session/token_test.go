package session

import (
	"errors"
	"os"
	"testing"
)

func TestFileTokenStore(t *testing.T) {
	store := newStore(t)

	if _, err := store.Load(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Expected ErrNoToken, got %v", err)
	}
	if err := store.Save("opaque"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, err := os.Stat(store.path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}

	token, err := store.Load()
	if err != nil || token != "opaque" {
		t.Fatalf("Expected token 'opaque', got %q (%v)", token, err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear must be idempotent: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Expected ErrNoToken after clear, got %v", err)
	}
}
