// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dirdiff/dirdiff/internal/log"
)

// Watcher coalesces filesystem events under one or more roots into debounced
// change notifications. Ignored directories are never watched; directories
// created while watching are added on the fly.
type Watcher struct {
	fsw      *fsnotify.Watcher
	ignored  map[string]struct{}
	debounce time.Duration
	changes  chan struct{}
}

// New builds a Watcher over the given roots. The same ignore set used for
// scanning applies, so churn in pruned directories never triggers a rescan.
func New(roots []string, ignored map[string]struct{}, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		ignored:  ignored,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
	}

	for _, root := range roots {
		if err := w.addRecursive(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Changes returns the notification channel. One receive means "something
// changed since you last looked", not one event per file.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Close stops watching and releases resources.
func (w *Watcher) Close() error { return w.fsw.Close() }

// Run processes events until ctx is done or the underlying watcher closes.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			log.Tracef("fs event: %v", event)

			// A directory created mid-watch joins the watch list unless
			// it is ignored.
			if event.Op.Has(fsnotify.Create) {
				if _, skip := w.ignored[filepath.Base(event.Name)]; !skip {
					if err := w.addRecursive(event.Name); err != nil {
						log.Debugf("watch add failed: path=%s err=%v", event.Name, err)
					}
				}
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warnf("watch error")

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

// addRecursive registers path and every non-ignored directory beneath it.
// Files need no registration; their parent directory's watch covers them.
// Walk errors below the top level are skipped so a transient entry cannot
// break the watch.
func (w *Watcher) addRecursive(path string) error {
	if _, err := os.Stat(path); err != nil {
		// Vanished before we got to it.
		return nil
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if _, skip := w.ignored[d.Name()]; skip && p != path {
			return fs.SkipDir
		}
		if addErr := w.fsw.Add(p); addErr != nil {
			log.Debugf("watch add failed: path=%s err=%v", p, addErr)
		}
		return nil
	})
}
