// Package watch notifies when the skills directory changes so views can rescan.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/kennyg/skillbrowser/internal/skill"
)

// debounce coalesces bursts of filesystem events into one notification
const debounce = 150 * time.Millisecond

// Watcher emits an event when a skill appears, disappears, or has its
// description file changed. It watches the base dir and its immediate children.
type Watcher struct {
	baseDir string
	logger  *log.Logger
	events  chan struct{}
}

// New returns a watcher for baseDir
func New(baseDir string, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		baseDir: baseDir,
		logger:  logger,
		events:  make(chan struct{}, 1),
	}
}

// Events delivers one value per debounced change. Closed when the watcher stops.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start begins watching until ctx is done. The base directory must exist.
func (w *Watcher) Start(ctx context.Context) error {
	base, err := filepath.Abs(w.baseDir)
	if err != nil {
		return fmt.Errorf("resolve skills dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}

	if err := fsw.Add(base); err != nil {
		fsw.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("skills dir %s does not exist", base)
		}
		return fmt.Errorf("watch %s: %w", base, err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		w.logger.Warn("skills watcher: list failed", "dir", base, "error", err)
	}
	for _, ent := range entries {
		child := filepath.Join(base, ent.Name())
		if fi, err := os.Stat(child); err == nil && fi.IsDir() {
			if err := fsw.Add(child); err != nil {
				w.logger.Debug("skills watcher: add failed", "dir", child, "error", err)
			}
		}
	}

	go w.loop(ctx, fsw, base)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, base string) {
	defer func() {
		_ = fsw.Close()
		close(w.events)
	}()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(fsw, base, ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("skills watcher error", "error", err)

		case <-timerC:
			timerC = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		}
	}
}

// relevant reports whether ev can change a scan result.
// New child directories are added to the watch list as a side effect.
func (w *Watcher) relevant(fsw *fsnotify.Watcher, base string, ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	// A direct child of the base dir appearing or going away changes the skill set.
	if filepath.Dir(ev.Name) == base {
		if ev.Op&fsnotify.Create != 0 {
			if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
				if err := fsw.Add(ev.Name); err != nil {
					w.logger.Debug("skills watcher: add failed", "dir", ev.Name, "error", err)
				}
				return true
			}
		}
		if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
			return true
		}
		return false
	}

	name := filepath.Base(ev.Name)
	for _, candidate := range skill.DescriptionFiles {
		if name == candidate {
			return true
		}
	}
	return false
}
