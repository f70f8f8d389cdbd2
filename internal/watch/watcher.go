// Package watch reruns work when watched files change.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"cotprompt/pkg/logger"
)

// DefaultDelay is the quiet period after the last event before the
// callback runs.
const DefaultDelay = 100 * time.Millisecond

// Func is called with the path of a changed file.
type Func func(path string)

// Watcher monitors files and calls a function once per burst of changes.
// Parent directories are watched so that editors which replace files on
// save are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange Func
	delay    time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	debounce map[string]*time.Timer
	mu       sync.Mutex
}

// New creates a watcher for the given files. delay <= 0 uses DefaultDelay.
func New(onChange Func, delay time.Duration, files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		set[abs] = struct{}{}
	}

	return &Watcher{
		watcher:  w,
		files:    set,
		onChange: onChange,
		delay:    delay,
		stopCh:   make(chan struct{}),
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. It fails if a parent directory cannot be watched.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		logger.Debug().Str("dir", dir).Msg("watching directory")
	}

	go w.run()
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			path, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[path]; watched {
				w.handleEvent(path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) handleEvent(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopCh:
		return
	default:
	}

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		delete(w.debounce, path)
		w.mu.Unlock()

		logger.Debug().Str("path", path).Msg("file changed")
		w.onChange(path)
	})
}

// Stop stops the watcher and cancels pending callbacks. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		close(w.stopCh)
		for _, timer := range w.debounce {
			timer.Stop()
		}
		w.mu.Unlock()

		_ = w.watcher.Close()
	})
}
