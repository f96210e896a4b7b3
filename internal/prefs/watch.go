package prefs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to a preference file made by any process.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	log      *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// Watch starts watching the preference file at path and calls onChange from
// the watcher goroutine whenever it is written, created or replaced.
//
// The parent directory is watched rather than the file, since FileStore
// replaces the file by rename.
func Watch(ctx context.Context, path string, onChange func(), log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		onChange: onChange,
		log:      log,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.processEvents(ctx)
	return w, nil
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Debug("preference file changed", zap.String("op", event.Op.String()))
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("preference watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}
