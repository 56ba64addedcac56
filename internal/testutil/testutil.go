// Package testutil provides shared helpers for package tests
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/Tsuyoshi84/time-tracker/store"
)

// NewStore opens a throwaway session database backed by a temp directory.
// It is closed automatically when the test finishes.
func NewStore(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}
