// Package watcher reports source files that changed on disk, coalescing
// bursts of writes into one notification per file.
package watcher

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files and delivers changed paths on a channel
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	changes  chan string
	done     chan struct{}

	mu      sync.Mutex
	watched map[string]bool
	timers  map[string]*time.Timer
	closed  bool
}

// NewFileWatcher creates a new file watcher. A change is delivered once the
// file has been quiet for the debounce duration.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
		watched:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}
	go fw.run()
	return fw, nil
}

// Changes delivers absolute paths of changed files. A full channel drops
// the notification; the reader reloads everything anyway.
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

// Watch adds files to the watch list
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if fw.watched[absPath] {
			continue
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.watched[absPath] = true
	}
	return nil
}

// Watched returns the number of watched files
func (fw *FileWatcher) Watched() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return len(fw.watched)
}

// RemoveAll stops watching every file, e.g. before the dependency list of a
// reloaded model is watched again.
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	var errs []error
	for file := range fw.watched {
		if err := fw.watcher.Remove(file); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			errs = append(errs, fmt.Errorf("failed to unwatch %s: %w", file, err))
		}
	}
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.watched = make(map[string]bool)
	fw.timers = make(map[string]*time.Timer)
	return errors.Join(errs...)
}

// Close stops the watcher and closes the changes channel
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.mu.Unlock()

	err := fw.watcher.Close()
	<-fw.done
	close(fw.changes)
	return err
}

func (fw *FileWatcher) run() {
	defer close(fw.done)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				fw.schedule(event.Name, false)
			case event.Has(fsnotify.Rename), event.Has(fsnotify.Remove):
				// editors that save by replacing the file drop the watch
				fw.schedule(event.Name, true)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer of a watched file
func (fw *FileWatcher) schedule(path string, rewatch bool) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed || !fw.watched[path] {
		return
	}
	if timer, exists := fw.timers[path]; exists {
		timer.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		fw.fire(path, rewatch)
	})
}

func (fw *FileWatcher) fire(path string, rewatch bool) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed || !fw.watched[path] {
		return
	}
	delete(fw.timers, path)
	if rewatch {
		if err := fw.watcher.Add(path); err != nil {
			log.Printf("Watcher: %s is gone: %v", path, err)
			return
		}
	}

	select {
	case fw.changes <- path:
	default:
	}
}
