package prefs

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReportsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	changed := make(chan struct{}, 16)

	w, err := Watch(context.Background(), path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("Watch() returned error: %v", err)
	}
	defer w.Close()

	if _, err := SaveSelection(NewFileStore(path), DetailedAnalysis); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after save")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 16)

	w, err := Watch(context.Background(), filepath.Join(dir, "prefs.json"), func() {
		changed <- struct{}{}
	}, nil)
	if err != nil {
		t.Fatalf("Watch() returned error: %v", err)
	}
	defer w.Close()

	if err := NewFileStore(filepath.Join(dir, "other.json")).Set("k", "v"); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Error("change reported for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_CloseStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, filepath.Join(t.TempDir(), "prefs.json"), func() {}, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		_ = w.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close() did not return")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "prefs.json"), func() {}, nil)
	if err == nil {
		t.Error("Watch() on missing directory should fail")
	}
}
