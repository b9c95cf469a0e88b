package scene

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/philipparndt/raymeasure/pkg/watcher"
)

// Result is the outcome of a background reload
type Result struct {
	Scene   *Scene
	Err     error
	Elapsed time.Duration
}

// Reloader watches a scene's sources and reloads it in the background.
// Results arrive on a channel the render loop polls between frames.
type Reloader struct {
	path    string
	watcher *watcher.FileWatcher
	results chan Result
	loading bool
}

// NewReloader starts watching the sources of s
func NewReloader(s *Scene, debounce time.Duration) (*Reloader, error) {
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(s.Sources...); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch files: %w", err)
	}

	fmt.Printf("Watching %d file(s) for changes\n", fw.Watched())
	return &Reloader{
		path:    s.Source,
		watcher: fw,
		results: make(chan Result, 1),
	}, nil
}

// Poll starts a reload when a source changed and returns a finished reload
// if one is ready. It never blocks.
func (r *Reloader) Poll(ctx context.Context) (Result, bool) {
	select {
	case changed, ok := <-r.watcher.Changes():
		if ok && !r.loading {
			fmt.Printf("File changed: %s\n", changed)
			r.start(ctx)
		}
	default:
	}

	select {
	case res := <-r.results:
		r.loading = false
		if res.Err == nil {
			r.rewatch(res.Scene)
		}
		return res, true
	default:
		return Result{}, false
	}
}

// Watched returns the number of files being watched
func (r *Reloader) Watched() int {
	return r.watcher.Watched()
}

// Loading reports whether a reload is in flight
func (r *Reloader) Loading() bool {
	return r.loading
}

// Close stops watching
func (r *Reloader) Close() error {
	return r.watcher.Close()
}

func (r *Reloader) start(ctx context.Context) {
	r.loading = true
	fmt.Println("Reloading model...")

	go func() {
		started := time.Now()
		s, err := Load(ctx, r.path)
		r.results <- Result{Scene: s, Err: err, Elapsed: time.Since(started)}
	}()
}

// rewatch follows dependency changes of a reloaded .scad source
func (r *Reloader) rewatch(s *Scene) {
	before := r.watcher.Watched()
	if err := r.watcher.RemoveAll(); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := r.watcher.Watch(s.Sources...); err != nil {
		log.Printf("Warning: %v", err)
	}
	if after := r.watcher.Watched(); after != before {
		fmt.Printf("Watching %d file(s) for changes\n", after)
	}
}
