// Package watch notices asset files appearing or disappearing under the
// directory of the month being viewed.
package watch

import (
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that something under the followed directory changed.
type Change struct {
	Dir string // directory being watched when the change fired
}

// Watcher follows one month directory below Root using fsnotify. When the
// month directory does not exist yet, the nearest existing ancestor is
// watched instead so its creation is noticed.
type Watcher struct {
	Root    string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	want    string // slash path relative to Root
	current string // absolute directory currently watched
}

// debounce coalesces bursts such as a multi-file copy into one Change.
const debounce = 100 * time.Millisecond

// New creates a watcher rooted at root.
func New(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Root:    root,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins delivering changes.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

// Follow switches the watch to rel (e.g. "assets/2024/2"), falling back to
// the deepest existing ancestor.
func (w *Watcher) Follow(rel string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.want = rel
	return w.followLocked()
}

// Watching returns the directory currently watched.
func (w *Watcher) Watching() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *Watcher) followLocked() error {
	target := w.resolve(w.want)
	if target == w.current {
		return nil
	}
	if w.current != "" {
		// The old directory may already be gone; nothing to undo then.
		_ = w.watcher.Remove(w.current)
	}
	if err := w.watcher.Add(target); err != nil {
		w.current = ""
		return err
	}
	w.current = target
	return nil
}

// resolve returns the deepest existing directory on the path Root/rel.
func (w *Watcher) resolve(rel string) string {
	for rel = path.Clean(rel); rel != "." && rel != "/"; rel = path.Dir(rel) {
		dir := filepath.Join(w.Root, filepath.FromSlash(rel))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Clean(w.Root)
}

func (w *Watcher) loop() {
	defer close(w.done)

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	var pending time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			w.mu.Lock()
			// A created subdirectory may now let us descend toward want.
			_ = w.followLocked()
			dir := w.current
			w.mu.Unlock()
			select {
			case w.changes <- Change{Dir: dir}:
			default:
				// A change is already queued; one is enough to trigger a re-render.
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}
