package clock

import (
	"github.com/penwyp/go-earth-clock/internal/data/watcher"
)

// FileMonitor watches the event file for changes
type FileMonitor interface {
	// Events returns a channel of file change events
	Events() <-chan watcher.FileEvent
	// Close stops monitoring and cleans up resources
	Close() error
}

// MonitorFactory creates a FileMonitor for a path
type MonitorFactory func(path string) (FileMonitor, error)

func newFileMonitor(path string) (FileMonitor, error) {
	fw, err := watcher.NewFileWatcher(path)
	if err != nil {
		return nil, err
	}
	return fw, nil
}
