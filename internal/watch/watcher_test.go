package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w := New(dir, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return w
}

// countEvents drains events for the given window.
func countEvents(w *Watcher, window time.Duration) int {
	n := 0
	deadline := time.After(window)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return n
			}
			n++
		case <-deadline:
			return n
		}
	}
}

func TestWatcher_DescriptionWritesCoalesce(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "myskill")
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	md := filepath.Join(skillDir, "skill.md")
	if err := os.WriteFile(md, []byte("v1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w := startWatcher(t, dir)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(md, []byte("updated"), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	n := countEvents(w, 600*time.Millisecond)
	if n == 0 {
		t.Fatal("expected at least 1 debounced event, got 0")
	}
	if n > 2 {
		t.Fatalf("expected debounce coalescing (1-2 events), got %d", n)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "someskill")
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	w := startWatcher(t, dir)

	if err := os.WriteFile(filepath.Join(skillDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if n := countEvents(w, 400*time.Millisecond); n != 0 {
		t.Fatalf("expected no events for notes.txt, got %d", n)
	}
}

func TestWatcher_NewSkillDir(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	if err := os.Mkdir(filepath.Join(dir, "fresh"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if n := countEvents(w, 600*time.Millisecond); n == 0 {
		t.Fatal("expected an event for a new skill directory")
	}

	// The new directory is watched too.
	if err := os.WriteFile(filepath.Join(dir, "fresh", "README.md"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if n := countEvents(w, 600*time.Millisecond); n == 0 {
		t.Fatal("expected an event for README.md in the new directory")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), quietLogger())
	if err := w.Start(context.Background()); err == nil {
		t.Fatal("Start() error = nil, want error for missing dir")
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	w := New(t.TempDir(), quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	select {
	case _, ok := <-w.Events():
		if ok {
			// A pending event may still be delivered; the next read must see close.
			if _, ok := <-w.Events(); ok {
				t.Fatal("events channel not closed")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}
