package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Change is a debounced edit to world.yaml or to a scenario script.
type Change struct {
	Path string
	// Scenario is the edited script's name, empty for world.yaml.
	Scenario string
}

// IsWorldSpec reports whether the change touched world.yaml.
func (c Change) IsWorldSpec() bool {
	return c.Scenario == ""
}

// Watcher reports edits to the on-disk world spec and scenario scripts.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dir for world.yaml and dir/scripts, when present, for
// scenario scripts.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	scripts := filepath.Join(dir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		if err := fw.Add(scripts); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes Changes and Errors. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			change, ok := classifyChange(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if last, ok := seen[ev.Name]; ok && now.Sub(last) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.Changes <- change:
			case <-w.stop:
				return
			}
		}
	}
}

// classifyChange maps a file path to the world spec or a scenario script.
// Anything else is ignored.
func classifyChange(path string) (Change, bool) {
	base := filepath.Base(path)
	if base == WorldSpecFile {
		return Change{Path: path}, true
	}
	if isScriptFile(base) && filepath.Base(filepath.Dir(path)) == "scripts" {
		return Change{Path: path, Scenario: strings.TrimSuffix(base, filepath.Ext(base))}, true
	}
	return Change{}, false
}

func isScriptFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tengo")
}
