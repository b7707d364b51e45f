package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/focusmode/focus"
)

// Watch calls fn with freshly loaded settings whenever the file changes on
// disk. Writes made by this store's Save are skipped. Bursts of events are
// coalesced by the store's debounce. The watch stops when ctx is done.
//
// The parent directory is watched, so editors that save by rename are seen.
func (s *FileStore) Watch(ctx context.Context, fn func(focus.Settings)) error {
	if s.path == "" {
		return ErrNoPath
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: create %s: %w", dir, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings: watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("settings: watch %s: %w", dir, err)
	}

	go s.watchLoop(ctx, w, fn)
	return nil
}

func (s *FileStore) watchLoop(ctx context.Context, w *fsnotify.Watcher, fn func(focus.Settings)) {
	defer w.Close()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, func() { s.reload(ctx, fn) })
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Warn("settings watcher error")
		}
	}
}

func (s *FileStore) reload(ctx context.Context, fn func(focus.Settings)) {
	if ctx.Err() != nil {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).Warn("settings reload failed")
		}
		return
	}
	if s.ownWrite(data) {
		return
	}
	st, err := Decode(data)
	if err != nil {
		s.log.WithError(err).Warn("ignoring malformed settings file")
		return
	}
	s.log.WithField("enabled", st.Enabled).Info("settings reloaded from disk")
	fn(st)
}
