// Package watch reports changes to a single file on disk.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher signals on Changes after the watched file is written, created or
// renamed into place. The parent directory is watched so saves that replace
// the file are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	changes  chan struct{}
	done     chan struct{}

	mu    sync.Mutex
	timer *time.Timer
	once  sync.Once
}

// New starts watching path. A debounce of zero uses DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Changes receives once per debounced burst of writes. It is never closed.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	target := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %v", w.path, err)
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

func (w *Watcher) notify() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
