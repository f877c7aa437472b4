package view

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrNotWatchable is returned by Watch for renderers backed by embedded templates.
var ErrNotWatchable = errors.New("embedded templates cannot be watched")

// Watch reloads the templates whenever an *.html file in the template directory changes.
// The watcher is registered before Watch returns; the returned channel is closed once
// ctx is cancelled and the watcher has been released.
func (r *Renderer) Watch(ctx context.Context) (<-chan struct{}, error) {
	if r.dir == "" {
		return nil, ErrNotWatchable
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create template watcher: %w", err)
	}
	if err := watcher.Add(r.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", r.dir, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer watcher.Close() //nolint:errcheck

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(ev) {
					continue
				}
				if err := r.Reload(); err != nil {
					r.logger.Warn("template reload failed", zap.String("file", ev.Name), zap.Error(err))
					continue
				}
				r.logger.Debug("templates reloaded", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Warn("template watcher error", zap.Error(err))
			}
		}
	}()

	return done, nil
}

func relevant(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != ".html" {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
