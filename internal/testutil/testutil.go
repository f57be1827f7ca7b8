// Package testutil provides shared test helpers for setting up data
// directories and fake wallpaper sinks.
package testutil

import (
	"testing"

	"github.com/starford/sowilo/internal/storage"
	"github.com/starford/sowilo/internal/wallpaper"
)

// TestStore creates a temporary data directory with a storage.Provider.
func TestStore(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dataDir := t.TempDir()
	store, err := storage.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	return dataDir, store
}

// SinkCall records one Apply invocation on a SinkRecorder.
type SinkCall struct {
	Path  string
	Style wallpaper.Style
}

// SinkRecorder implements wallpaper.Sink and records every Apply call.
// Errs is consumed one entry per call; once exhausted, calls succeed.
type SinkRecorder struct {
	Calls []SinkCall
	Errs  []error
}

// Apply records the call and returns the next queued error, if any.
func (r *SinkRecorder) Apply(imagePath string, style wallpaper.Style) error {
	r.Calls = append(r.Calls, SinkCall{Path: imagePath, Style: style})
	if len(r.Errs) > 0 {
		err := r.Errs[0]
		r.Errs = r.Errs[1:]
		return err
	}
	return nil
}
