package levels

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a file must stay quiet before it is reported.
const DebounceDelay = 100 * time.Millisecond

// Watcher reports level files that changed under a set of directories.
// Bursts of writes to the same file are collapsed into one event.
type Watcher struct {
	fsw *fsnotify.Watcher

	// Events receives changed file paths. Closed after Close.
	Events chan string
	// Errors receives watcher errors. Closed after Close.
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs and all their subdirectories.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fsw.Add(p)
			}
			return nil
		})
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

// addTree watches a directory created after the watcher started. Level files
// already inside it are marked pending; it reports whether there were any.
func (w *Watcher) addTree(dir string, pending map[string]struct{}) bool {
	found := false
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(p)
		}
		if isSupportedExtension(filepath.Ext(p)) {
			pending[p] = struct{}{}
			found = true
		}
		return nil
	})
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
	}
	return found
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	pending := make(map[string]struct{})
	timer := time.NewTimer(DebounceDelay)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.addTree(event.Name, pending) {
						timer.Reset(DebounceDelay)
					}
					continue
				}
			}
			if !isSupportedExtension(filepath.Ext(event.Name)) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(DebounceDelay)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			clear(pending)

			for _, p := range paths {
				select {
				case w.Events <- p:
				case <-w.closeCh:
					return
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.closeCh:
			return
		}
	}
}
