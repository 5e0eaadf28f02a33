// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launchfooter/launchfooter_test.go
// Summary: Tests for footer segments: selection, run state, progress.

package launchfooter

import (
	"strings"
	"testing"

	"github.com/framegrace/launchdeck/shell"
)

func newTestFooter(t *testing.T) *App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := New()
	a.Resize(60, 1)
	return a
}

func rowString(t *testing.T, a *App) string {
	t.Helper()
	buf := a.Render()
	if len(buf) == 0 {
		t.Fatal("Expected a rendered row")
	}
	var sb strings.Builder
	for _, c := range buf[0] {
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

func TestShowsNoSelection(t *testing.T) {
	a := newTestFooter(t)

	row := rowString(t, a)
	if !strings.Contains(row, "no selection") {
		t.Errorf("Expected 'no selection', got %q", row)
	}
	if strings.Contains(row, "idle") {
		t.Errorf("Expected no run state without selection, got %q", row)
	}
}

func TestShowsSelectedDisplayName(t *testing.T) {
	a := newTestFooter(t)
	a.ResolveName = func(id string) string {
		if id == "vanilla-1.21" {
			return "Vanilla 1.21"
		}
		return ""
	}

	a.SelectionChanged("vanilla-1.21", true)
	row := rowString(t, a)
	if !strings.Contains(row, "Vanilla 1.21") {
		t.Errorf("Expected display name, got %q", row)
	}
	if strings.Contains(row, "no selection") {
		t.Errorf("Expected selection to replace placeholder, got %q", row)
	}
	if !strings.Contains(row, "idle") {
		t.Errorf("Expected idle run state for fresh selection, got %q", row)
	}
}

func TestClearRevertsToPlaceholder(t *testing.T) {
	a := newTestFooter(t)

	a.SelectionChanged("vanilla-1.21", true)
	a.SelectionChanged("", false)
	row := rowString(t, a)
	if !strings.Contains(row, "no selection") {
		t.Errorf("Expected 'no selection' after clear, got %q", row)
	}
}

func TestRunStateFollowsSelectedInstanceOnly(t *testing.T) {
	a := newTestFooter(t)
	a.SelectionChanged("alpha", true)

	a.OnEvent(shell.Event{Type: shell.EventRunStateChanged,
		Payload: shell.RunStatePayload{Instance: "beta", State: shell.RunStateRunning}})
	if row := rowString(t, a); !strings.Contains(row, "idle") {
		t.Errorf("Expected other instance's state to be ignored, got %q", row)
	}

	a.OnEvent(shell.Event{Type: shell.EventRunStateChanged,
		Payload: shell.RunStatePayload{Instance: "alpha", State: shell.RunStateRunning}})
	if row := rowString(t, a); !strings.Contains(row, "running") {
		t.Errorf("Expected running state, got %q", row)
	}

	// Selecting another instance resets to idle until the backend reports.
	a.SelectionChanged("beta", true)
	if row := rowString(t, a); strings.Contains(row, "running") {
		t.Errorf("Expected state reset on selection change, got %q", row)
	}
}

func TestProgressWinsOverOutput(t *testing.T) {
	a := newTestFooter(t)
	a.SelectionChanged("alpha", true)

	a.OnEvent(shell.Event{Type: shell.EventLaunchOutput,
		Payload: shell.OutputPayload{Kind: shell.OutputMessage, Text: "fetching libraries\n"}})
	if row := rowString(t, a); !strings.Contains(row, "fetching libraries") {
		t.Errorf("Expected output line, got %q", row)
	}

	a.OnEvent(shell.Event{Type: shell.EventLaunchProgress,
		Payload: shell.ProgressPayload{Current: 3, Total: 10, Message: "assets"}})
	row := rowString(t, a)
	if !strings.Contains(row, "3/10 assets") {
		t.Errorf("Expected progress segment, got %q", row)
	}
	if strings.Contains(row, "fetching libraries") {
		t.Errorf("Expected progress to shadow output, got %q", row)
	}
}

func TestSelectionChangeRequestsRefresh(t *testing.T) {
	a := newTestFooter(t)
	refresh := make(chan bool, 1)
	a.SetRefreshNotifier(refresh)

	a.SelectionChanged("alpha", true)
	select {
	case <-refresh:
	default:
		t.Error("Expected a refresh request after selection change")
	}
}

func TestResolveNameFallsBackToID(t *testing.T) {
	a := newTestFooter(t)

	a.SelectionChanged("raw-id", true)
	if row := rowString(t, a); !strings.Contains(row, "raw-id") {
		t.Errorf("Expected id fallback, got %q", row)
	}
}
