package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-triggers a scan when source files change. Each trigger runs
// the full single-pass pipeline into a fresh database, so the single-writer
// accumulation contract holds for every run. Triggers are serialized: a
// debounce firing while a rescan is still in flight waits for it to finish.
type Watcher struct {
	watcher      *fsnotify.Watcher
	rootDir      string
	extensions   map[string]bool
	ignore       *ignoreMatcher
	debounceTime time.Duration

	timerMu       sync.Mutex
	debounceTimer *time.Timer

	runMu sync.Mutex
}

// watchedExtensions lists the file extensions a change must carry to
// trigger a rescan.
var watchedExtensions = []string{".c", ".cpp", ".cc", ".cxx", ".h", ".hpp", ".hh", ".hxx"}

// NewWatcher creates a watcher over rootDir and all its subdirectories.
// Directories matching the ignore patterns are not watched, so the watch
// set mirrors what discovery would scan.
func NewWatcher(rootDir string, ignorePatterns []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ignore, err := newIgnoreMatcher(ignorePatterns)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	extMap := make(map[string]bool)
	for _, ext := range watchedExtensions {
		extMap[ext] = true
	}

	w := &Watcher{
		watcher:      fsw,
		rootDir:      rootDir,
		extensions:   extMap,
		ignore:       ignore,
		debounceTime: 500 * time.Millisecond,
	}

	if err := w.addDirectoriesRecursively(rootDir); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Watch blocks until ctx is cancelled, invoking callback after each
// debounced burst of relevant file changes. Callback invocations never
// overlap.
func (w *Watcher) Watch(ctx context.Context, callback func()) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event, callback)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; the next scan covers any missed
			// change.
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, callback func()) {
	if w.ignored(event.Name) {
		return
	}

	// New directories need to be watched as they appear.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addDirectoriesRecursively(event.Name)
			return
		}
	}

	if !w.extensions[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceTime, func() {
		w.runMu.Lock()
		defer w.runMu.Unlock()
		callback()
	})
}

func (w *Watcher) stopTimer() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// ignored reports whether path falls under the configured ignore patterns.
// Paths outside rootDir are never ignored here; the extension check still
// applies.
func (w *Watcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return w.ignore.Matches(filepath.ToSlash(rel))
}

// addDirectoriesRecursively watches dir and every subdirectory, skipping
// hidden directories and anything the ignore patterns cover.
func (w *Watcher) addDirectoriesRecursively(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		if path != w.rootDir && w.ignored(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
