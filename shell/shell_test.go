// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/shell_test.go
// Summary: Event-loop tests against a fake screen driver.

package shell

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// fakeDriver is an in-memory ScreenDriver fed from a test-owned event
// channel. PollEvent returns nil once the channel closes.
type fakeDriver struct {
	mu     sync.Mutex
	w, h   int
	cells  map[[2]int]Cell
	shows  int
	inited bool
	events chan tcell.Event
}

func newFakeDriver(w, h int) *fakeDriver {
	return &fakeDriver{
		w: w, h: h,
		cells:  make(map[[2]int]Cell),
		events: make(chan tcell.Event, 16),
	}
}

func (d *fakeDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inited = true
	return nil
}
func (d *fakeDriver) Fini()                       {}
func (d *fakeDriver) Size() (int, int)            { return d.w, d.h }
func (d *fakeDriver) SetStyle(style tcell.Style)  {}
func (d *fakeDriver) HideCursor()                 {}
func (d *fakeDriver) EnableMouse()                {}
func (d *fakeDriver) PollEvent() tcell.Event {
	ev, ok := <-d.events
	if !ok {
		return nil
	}
	return ev
}

func (d *fakeDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells[[2]int{x, y}] = Cell{Ch: mainc, Style: style}
}

func (d *fakeDriver) Show() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shows++
}

func (d *fakeDriver) cellAt(x, y int) Cell {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cells[[2]int{x, y}]
}

// runShell starts the shell loop and returns a done channel.
func runShell(t *testing.T, s *Shell) chan struct{} {
	t.Helper()
	done := make(chan struct{})
	go func() {
		if err := s.Run(); err != nil {
			t.Errorf("Run failed: %v", err)
		}
		close(done)
	}()
	return done
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestShellDrawsRegionsInOrder(t *testing.T) {
	drv := newFakeDriver(20, 10)
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	s := New(drv, nav, foot, Options{})

	err := s.RegisterPage("/", func(ctx PageContext) (App, error) {
		return newStubApp("page"), nil
	})
	if err != nil {
		t.Fatalf("RegisterPage failed: %v", err)
	}
	if err := s.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	done := runShell(t, s)

	waitFor(t, "initial draw", func() bool {
		return drv.cellAt(0, 0).Ch == 'n' &&
			drv.cellAt(0, NavBarHeight).Ch == 'p' &&
			drv.cellAt(0, 9).Ch == 'f'
	})

	s.Stop()
	close(drv.events)
	<-done
}

func TestShellStopsOnCtrlC(t *testing.T) {
	drv := newFakeDriver(20, 10)
	s := New(drv, newStubApp("nav"), newStubApp("foot"), Options{})
	done := runShell(t, s)

	drv.events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Ctrl-C to stop the shell")
	}
	close(drv.events)
}

func TestShellForwardsKeysToPage(t *testing.T) {
	drv := newFakeDriver(20, 10)
	s := New(drv, newStubApp("nav"), newStubApp("foot"), Options{})

	page := newStubApp("page")
	if err := s.RegisterPage("/", func(ctx PageContext) (App, error) { return page, nil }); err != nil {
		t.Fatalf("RegisterPage failed: %v", err)
	}
	if err := s.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	done := runShell(t, s)

	drv.events <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	waitFor(t, "key delivery", func() bool { return page.keyCount() == 1 })

	s.Stop()
	close(drv.events)
	<-done
}

func TestShellResizeRecalculatesLayout(t *testing.T) {
	drv := newFakeDriver(20, 10)
	page := newStubApp("page")
	s := New(drv, newStubApp("nav"), newStubApp("foot"), Options{})
	if err := s.RegisterPage("/", func(ctx PageContext) (App, error) { return page, nil }); err != nil {
		t.Fatalf("RegisterPage failed: %v", err)
	}
	if err := s.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	done := runShell(t, s)

	drv.events <- tcell.NewEventResize(40, 16)
	waitFor(t, "resize propagation", func() bool {
		w, h := page.size()
		return w == 40 && h == 16-NavBarHeight-FooterHeight
	})

	s.Stop()
	close(drv.events)
	<-done
}

func TestShellPageContextCarriesSelectionWriter(t *testing.T) {
	drv := newFakeDriver(20, 10)
	s := New(drv, newStubApp("nav"), newStubApp("foot"), Options{})

	var gotWriter SelectionWriter
	err := s.RegisterPage("/", func(ctx PageContext) (App, error) {
		gotWriter = ctx.Selection
		return newStubApp("page"), nil
	})
	if err != nil {
		t.Fatalf("RegisterPage failed: %v", err)
	}
	if err := s.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	if gotWriter == nil {
		t.Fatal("Expected the page factory to receive a selection writer")
	}
	gotWriter.Select("v1")
	if id, ok := s.Selection().Selected(); !ok || id != "v1" {
		t.Errorf("Expected shell selection v1, got (%q, %v)", id, ok)
	}
}

// selectionFooter mimics the footer's observer face for wiring tests.
type selectionFooter struct {
	*stubApp
	mu   sync.Mutex
	last string
	ok   bool
}

func (f *selectionFooter) SelectionChanged(id string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last, f.ok = id, ok
}

func TestShellAttachesFooterAsSelectionObserver(t *testing.T) {
	drv := newFakeDriver(20, 10)
	foot := &selectionFooter{stubApp: newStubApp("foot")}
	s := New(drv, newStubApp("nav"), foot, Options{})

	err := s.RegisterPage("/", func(ctx PageContext) (App, error) {
		page := newStubApp("page")
		ctx.Selection.Select("v1")
		return page, nil
	})
	if err != nil {
		t.Fatalf("RegisterPage failed: %v", err)
	}
	if err := s.Navigate("/"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	foot.mu.Lock()
	defer foot.mu.Unlock()
	if !foot.ok || foot.last != "v1" {
		t.Errorf("Expected footer to observe v1, got (%q, %v)", foot.last, foot.ok)
	}
}
