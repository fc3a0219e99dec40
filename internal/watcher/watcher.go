// Package watcher reports changes to a fixed set of files, such as the
// config file, using fsnotify with a polling fallback.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// stamp identifies one version of a file.
type stamp struct {
	size    int64
	modTime time.Time
	exists  bool
}

func stat(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{size: info.Size(), modTime: info.ModTime(), exists: true}
}

type Watcher struct {
	paths        []string
	stamps       map[string]stamp
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func(path string)
	stop         chan struct{}
	wg           sync.WaitGroup
}

func New(paths []string, pollInterval time.Duration, onChange func(path string)) *Watcher {
	clean := make([]string, len(paths))
	for i, p := range paths {
		clean[i] = filepath.Clean(p)
	}
	return &Watcher{
		paths:        clean,
		stamps:       make(map[string]stamp),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Snapshot records the current state of every path so that only later
// changes are reported.
func (w *Watcher) Snapshot() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.paths {
		w.stamps[p] = stat(p)
	}
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		// Watch parent directories: editors often replace the file by rename.
		seen := make(map[string]bool)
		for _, p := range w.paths {
			dir := filepath.Dir(p)
			if !seen[dir] {
				seen[dir] = true
				_ = fsw.Add(dir)
			}
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
						w.check(filepath.Clean(event.Name))
					}
				case <-fsw.Errors:
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				for _, p := range w.paths {
					w.check(p)
				}
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// check fires onChange once per new version of a watched path. Empty files
// are not reported.
func (w *Watcher) check(path string) {
	w.mu.Lock()
	prev, watched := w.stamps[path]
	if !watched && !w.isWatched(path) {
		w.mu.Unlock()
		return
	}
	cur := stat(path)
	if cur.exists && cur.size == 0 {
		// Truncated by a writer that has not finished; wait for the content.
		w.mu.Unlock()
		return
	}
	changed := cur != prev && cur.exists
	w.stamps[path] = cur
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(path)
	}
}

func (w *Watcher) isWatched(path string) bool {
	for _, p := range w.paths {
		if p == path {
			return true
		}
	}
	return false
}
