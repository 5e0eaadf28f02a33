// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/selection_test.go
// Summary: Tests for the selection cell's single-writer observer contract.

package shell

import "testing"

// recordingObserver captures every notification in order.
type recordingObserver struct {
	ids []string
	oks []bool
}

func (r *recordingObserver) SelectionChanged(id string, ok bool) {
	r.ids = append(r.ids, id)
	r.oks = append(r.oks, ok)
}

func TestSelectionInitiallyAbsent(t *testing.T) {
	cell := NewSelectionCell()

	id, ok := cell.Selected()
	if ok {
		t.Errorf("Expected no selection on a fresh cell, got %q", id)
	}
	if id != "" {
		t.Errorf("Expected empty id on a fresh cell, got %q", id)
	}
}

func TestSelectNotifiesSynchronously(t *testing.T) {
	cell := NewSelectionCell()
	obs := &recordingObserver{}
	cell.Subscribe(obs)

	cell.Select("v1")

	// Notification must have happened before Select returned.
	if len(obs.ids) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(obs.ids))
	}
	if obs.ids[0] != "v1" || !obs.oks[0] {
		t.Errorf("Expected (v1, true), got (%q, %v)", obs.ids[0], obs.oks[0])
	}
	if id, ok := cell.Selected(); !ok || id != "v1" {
		t.Errorf("Expected selected v1, got (%q, %v)", id, ok)
	}
}

func TestClearRevertsToAbsent(t *testing.T) {
	cell := NewSelectionCell()
	obs := &recordingObserver{}
	cell.Subscribe(obs)

	cell.Select("v1")
	cell.Clear()

	if len(obs.ids) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(obs.ids))
	}
	if obs.oks[1] {
		t.Errorf("Expected absence after Clear, got id %q", obs.ids[1])
	}
	if _, ok := cell.Selected(); ok {
		t.Error("Expected Selected to report absence after Clear")
	}
}

func TestRedundantWritesDoNotNotify(t *testing.T) {
	cell := NewSelectionCell()
	obs := &recordingObserver{}
	cell.Subscribe(obs)

	cell.Select("v1")
	cell.Select("v1")
	cell.Clear()
	cell.Clear()

	if len(obs.ids) != 2 {
		t.Errorf("Expected 2 notifications for 2 transitions, got %d", len(obs.ids))
	}
}

func TestEmptyIDIsDistinctFromAbsence(t *testing.T) {
	cell := NewSelectionCell()
	obs := &recordingObserver{}
	cell.Subscribe(obs)

	cell.Select("")

	if id, ok := cell.Selected(); !ok || id != "" {
		t.Errorf("Expected empty id selected, got (%q, %v)", id, ok)
	}
	if len(obs.ids) != 1 || !obs.oks[0] {
		t.Errorf("Expected one present notification for empty id, got %v", obs.oks)
	}

	cell.Clear()
	if len(obs.ids) != 2 || obs.oks[1] {
		t.Errorf("Expected transition to absence, got %v", obs.oks)
	}
}

func TestSubscribeDoesNotReplayCurrentValue(t *testing.T) {
	cell := NewSelectionCell()
	cell.Select("v1")

	obs := &recordingObserver{}
	cell.Subscribe(obs)

	if len(obs.ids) != 0 {
		t.Errorf("Expected no replay on subscribe, got %d notifications", len(obs.ids))
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	cell := NewSelectionCell()
	obs := &recordingObserver{}
	cell.Subscribe(obs)

	cell.Select("v1")
	cell.Unsubscribe(obs)
	cell.Select("v2")

	if len(obs.ids) != 1 {
		t.Errorf("Expected 1 notification after unsubscribe, got %d", len(obs.ids))
	}
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	cell := NewSelectionCell()
	var order []string
	first := observerFunc(func(id string, ok bool) { order = append(order, "first") })
	second := observerFunc(func(id string, ok bool) { order = append(order, "second") })
	cell.Subscribe(first)
	cell.Subscribe(second)

	cell.Select("v1")

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

// observerFunc adapts a function to SelectionObserver.
type observerFunc func(id string, ok bool)

func (f observerFunc) SelectionChanged(id string, ok bool) { f(id, ok) }

func TestObserverMayReadBackDuringNotify(t *testing.T) {
	cell := NewSelectionCell()
	var seen string
	cell.Subscribe(observerFunc(func(id string, ok bool) {
		// Reading inside the callback must not deadlock and must see the
		// new value.
		got, _ := cell.Selected()
		seen = got
	}))

	cell.Select("v1")

	if seen != "v1" {
		t.Errorf("Expected observer to read back v1, got %q", seen)
	}
}
