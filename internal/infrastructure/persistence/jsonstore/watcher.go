package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/quadspace/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce merges the burst of events an editor produces on save.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls onChange whenever another process changes the workspace file.
// The parent directory is watched because writes replace the file by rename.
// Changes made through this Store are not reported. Watch returns once the
// watcher is running; it stops when ctx is done.
func (s *Store) Watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	ctx = logging.WithComponent(ctx, "workspace-watcher")
	log := logging.FromContext(ctx)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create workspace watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		data, err := os.ReadFile(s.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("failed to read workspace file after change")
			return
		}
		if !s.changedOnDisk(data) {
			return
		}
		log.Debug().Str("path", s.path).Msg("workspace file changed on disk")
		onChange()
	}

	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				mu.Unlock()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != s.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, fire)
				mu.Unlock()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("workspace watcher error")
			}
		}
	}()

	log.Debug().Str("dir", dir).Msg("watching workspace file")
	return nil
}
