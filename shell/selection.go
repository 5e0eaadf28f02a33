// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/selection.go
// Summary: The shared selected-instance cell: one writer, many observers.
// Usage: The shell owns one SelectionCell; the launch page gets the writer
// face, the footer binds as an observer through the reader face.

package shell

import "sync"

// SelectionObserver is notified whenever the selected instance changes.
// ok reports presence: false means no instance is selected.
type SelectionObserver interface {
	SelectionChanged(id string, ok bool)
}

// SelectionReader is the read-only face of the selection cell.
type SelectionReader interface {
	Selected() (string, bool)
	Subscribe(obs SelectionObserver)
	Unsubscribe(obs SelectionObserver)
}

// SelectionWriter is the mutating face. Exactly one component holds it.
type SelectionWriter interface {
	Select(id string)
	Clear()
}

// SelectionCell holds the one piece of shared UI state: which instance, if
// any, is currently selected. Absence is a distinct state, not a sentinel
// identifier. Observers are notified synchronously, on the mutating
// goroutine, before the write call returns.
type SelectionCell struct {
	mu        sync.RWMutex
	id        string
	ok        bool
	observers []SelectionObserver
}

var _ SelectionReader = (*SelectionCell)(nil)
var _ SelectionWriter = (*SelectionCell)(nil)

// NewSelectionCell creates a cell with no instance selected.
func NewSelectionCell() *SelectionCell {
	return &SelectionCell{}
}

// Selected returns the current value. ok is false when nothing is selected.
func (c *SelectionCell) Selected() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id, c.ok
}

// Select sets the selected instance.
func (c *SelectionCell) Select(id string) {
	c.write(id, true)
}

// Clear reverts the cell to the no-selection state.
func (c *SelectionCell) Clear() {
	c.write("", false)
}

// write is the single mutation entry point. Redundant writes are dropped so
// observers only ever see actual transitions.
func (c *SelectionCell) write(id string, ok bool) {
	c.mu.Lock()
	if c.id == id && c.ok == ok {
		c.mu.Unlock()
		return
	}
	c.id, c.ok = id, ok
	obs := append([]SelectionObserver(nil), c.observers...)
	c.mu.Unlock()

	// Notify outside the lock so observers can read back without deadlock,
	// but still synchronously within this write.
	for _, o := range obs {
		o.SelectionChanged(id, ok)
	}
}

// Subscribe registers an observer. No notification fires for the current
// value; observers see transitions only.
func (c *SelectionCell) Subscribe(obs SelectionObserver) {
	if obs == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, obs)
}

// Unsubscribe removes an observer.
func (c *SelectionCell) Unsubscribe(obs SelectionObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, o := range c.observers {
		if o == obs {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			break
		}
	}
}
