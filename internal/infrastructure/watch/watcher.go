package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/storage"
	"github.com/fsnotify/fsnotify"
)

// ChangeEvent describes a change to one of the workspace data files.
type ChangeEvent struct {
	File       string // base name of the changed file
	ChangeType string // "create", "write", "remove", "rename"
}

// DataWatcher watches the data directory of a workspace and reports
// changes to the files that feed the analytics results. Anything else in
// the directory, editor temp files included, is ignored.
type DataWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(ChangeEvent)
}

// NewDataWatcher creates a watcher rooted at the workspace directory.
// The workspace must already be initialized; watching an absent data
// directory fails.
func NewDataWatcher(root string, debounce time.Duration, onChange func(ChangeEvent)) (*DataWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	dir := filepath.Join(root, storage.PacelineDir)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &DataWatcher{
		watcher:  w,
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *DataWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var lastEvent ChangeEvent
	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange(lastEvent)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" {
				continue
			}
			name := filepath.Base(event.Name)
			if !IsDataFile(name) {
				continue
			}

			lastEvent = ChangeEvent{File: name, ChangeType: changeType}
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// IsDataFile reports whether the named file carries program data that
// changes what the analytics commands render.
func IsDataFile(name string) bool {
	switch name {
	case storage.ProgramFile, storage.SamplesFile, storage.ActivitiesFile, storage.SnapshotsFile:
		return true
	}
	return false
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
