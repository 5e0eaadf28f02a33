// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/watcher.go
// Summary: Filesystem watcher that reloads the catalog after changes settle.
// Usage: Bursts of events (a sync tool rewriting many manifests) collapse
// into a single onSettle call once the directory has been quiet for the
// debounce interval.

package catalog

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the settle interval used when none is configured.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a catalog directory and invokes a callback once
// changes stop arriving.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onSettle func()

	mu     sync.Mutex
	settle *time.Timer
	closed bool

	done chan struct{}
}

// NewWatcher starts watching dir. onSettle runs on the watcher's
// goroutine after events have been quiet for the debounce interval.
func NewWatcher(dir string, debounce time.Duration, onSettle func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		onSettle: onSettle,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.bump()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Catalog: watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// bump schedules the settle callback, or pushes it out if one is
// already pending.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.settle == nil {
		w.settle = time.AfterFunc(w.debounce, w.fire)
		return
	}
	w.settle.Reset(w.debounce)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	w.settle = nil
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}
	w.onSettle()
}

// Close stops the watcher. A pending settle callback is cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.settle != nil {
		w.settle.Stop()
		w.settle = nil
	}
	w.mu.Unlock()

	close(w.done)
	return w.fsw.Close()
}
