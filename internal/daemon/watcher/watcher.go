// Package watcher reports edits to the settings file while the tray runs.
package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay coalesces the bursts editors produce on save.
const debounceDelay = 100 * time.Millisecond

// Event represents a change to the watched file.
type Event struct {
	Path    string
	Removed bool
}

// Watcher watches one file by watching its directory.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	logger     zerolog.Logger

	debounce   *time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for path. The file does not need to exist yet.
func New(path string, logger zerolog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		eventsChan: make(chan Event, 1),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "watcher").Logger(),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching the file's directory.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger.Debug().Str("path", w.path).Msg("Watching settings file")

	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers editors that write a temp file and rename it over the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	w.logger.Debug().Str("op", event.Op.String()).Msg("Settings file changed")
	w.debounceEvent(func() {
		_, err := os.Stat(w.path)
		w.emit(Event{Path: w.path, Removed: errors.Is(err, fs.ErrNotExist)})
	})
}

func (w *Watcher) debounceEvent(fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, fn)
}

// emit drops the event if one is already pending; the receiver reloads the
// whole file either way.
func (w *Watcher) emit(ev Event) {
	select {
	case <-w.done:
	case w.eventsChan <- ev:
	default:
	}
}
