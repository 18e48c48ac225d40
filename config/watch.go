// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggpaint"
)

// Watcher reloads flags when their config file changes.
type Watcher struct {
	path    string
	flags   *Flags
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directory of path. Changes are applied
// to flags once Run is called.
func NewWatcher(path string, flags *Flags) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", abs, err)
	}
	return &Watcher{path: abs, flags: flags, watcher: w}, nil
}

// Run reloads the flags on every write to the file and calls onChange
// after each successful reload. It returns when ctx is done.
// A reload that fails is logged and the previous flags stay in effect.
func (w *Watcher) Run(ctx context.Context, onChange func(*Flags)) error {
	defer w.watcher.Close()
	log := ggpaint.Logger()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("config: file changed", "file", event.Name, "event", event.Op)
			if err := w.flags.Reload(w.path); err != nil {
				log.Warn("config: reload failed", "err", err)
				continue
			}
			if onChange != nil {
				onChange(w.flags)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config: watcher error", "err", err)
		}
	}
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, flags *Flags, onChange func(*Flags)) error {
	w, err := NewWatcher(path, flags)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange)
}
