package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-uptime-chart/internal/util"
)

// Event signals a change to the watched log file.
type Event struct {
	Path      string
	Operation string
}

// FileWatcher watches the login record file (wtmp) for changes so watch mode
// can re-render. The file is replaced on rotation, so the parent directory is
// watched and events are filtered by name.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan Event
}

// NewFileWatcher starts watching the directory containing path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		path:    filepath.Clean(path),
		events:  make(chan Event, 16),
	}

	if err := watcher.Add(filepath.Dir(fw.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			fw.events <- Event{
				Path:      event.Name,
				Operation: event.Op.String(),
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the change event channel.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
