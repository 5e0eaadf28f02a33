// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/events.go
// Summary: Event types and the dispatcher that fans them out to listeners.
// Usage: The launcher backend reports run state and output through these;
// the footer and launch page subscribe.

package shell

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// Launch lifecycle, reported by whatever backend actually runs instances.
	EventRunStateChanged EventType = iota
	EventLaunchProgress
	EventLaunchOutput
	// Catalog events
	EventCatalogReloaded
)

// RunState is the coarse lifecycle of a launched instance as reported from
// outside the shell.
type RunState int

const (
	RunStateIdle RunState = iota
	RunStatePreparing
	RunStateRunning
)

func (s RunState) String() string {
	switch s {
	case RunStatePreparing:
		return "preparing"
	case RunStateRunning:
		return "running"
	default:
		return "idle"
	}
}

// Event represents a message passed through the system.
// It has a type and can carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// RunStatePayload accompanies EventRunStateChanged.
type RunStatePayload struct {
	Instance string
	State    RunState
}

// ProgressPayload accompanies EventLaunchProgress.
type ProgressPayload struct {
	Current uint32
	Total   uint32
	Message string
}

// OutputKind distinguishes plain output lines from section headers.
type OutputKind int

const (
	OutputMessage OutputKind = iota
	OutputHeader
)

// OutputPayload accompanies EventLaunchOutput.
type OutputPayload struct {
	Kind OutputKind
	Text string
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	// OnEvent is the callback method for receiving events.
	OnEvent(event Event)
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners synchronously.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		l.OnEvent(event)
	}
}
