package index

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the workspace for file changes and keeps the index
// current. Events are debounced per path so editors that write in bursts
// trigger a single re-index.
type Watcher struct {
	indexer *Indexer
	watcher *fsnotify.Watcher
	root    string

	mu       sync.Mutex
	debounce map[string]*time.Timer
	closed   bool

	onChange func()          // called after the index was updated
	onError  func(err error) // called once when the watch loop dies
}

func NewWatcher(indexer *Indexer, root string, onChange func(), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		indexer:  indexer,
		watcher:  fw,
		root:     root,
		debounce: make(map[string]*time.Timer),
		onChange: onChange,
		onError:  onError,
	}

	// Watch the root and all non-hidden subdirectories.
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			_ = fw.Add(path)
		}
		return nil
	})

	return w, nil
}

// Start consumes watch events. Blocks until Stop is called or the underlying
// watcher fails.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fatal(err)
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	base := filepath.Base(path)

	// Ignore hidden files and the index's own state directory, but start
	// watching newly created directories.
	if strings.HasPrefix(base, ".") {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			_ = w.watcher.Add(path)
			return
		}
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(200*time.Millisecond, func() {
		w.mu.Lock()
		delete(w.debounce, path)
		w.mu.Unlock()

		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			_ = w.indexer.RemoveFile(path)
		} else if workspaceIndexable(path) {
			_ = w.indexer.IndexFile(path)
		} else {
			return
		}

		if w.onChange != nil {
			w.onChange()
		}
	})
	w.mu.Unlock()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) fatal(err error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	onError := w.onError
	w.mu.Unlock()

	if onError != nil {
		onError(err)
	}
}
