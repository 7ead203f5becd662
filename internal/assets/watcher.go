// Package assets watches asset files on disk so the renderer can pick up
// edits while it runs.
package assets

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a fixed set of files. Directories are watched
// rather than the files themselves so editors that save by renaming a
// temporary file are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan string
	done    chan struct{}
	wg      sync.WaitGroup
	logger  *slog.Logger
	once    sync.Once
}

// Watch starts watching paths.
func Watch(logger *slog.Logger, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		files:   make(map[string]bool),
		changed: make(chan string, len(paths)),
		done:    make(chan struct{}),
		logger:  logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("could not resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changed delivers the absolute path of each file that was written or
// replaced. Sends never block; when the buffer is full the change is
// dropped because a reload is already pending.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			select {
			case w.changed <- name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "err", err)
		}
	}
}

// Pending drains ch without blocking and reports whether anything was
// waiting.
func Pending(ch <-chan string) bool {
	pending := false
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return pending
			}
			pending = true
		default:
			return pending
		}
	}
}
