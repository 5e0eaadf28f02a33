// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/layout_test.go
// Summary: Tests for vertical composition and region event routing.

package shell

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// stubApp renders its fill rune across its whole region and records the
// input it receives. Guarded so shell tests can poll from other goroutines.
type stubApp struct {
	title string
	fill  rune

	mu            sync.Mutex
	width, height int
	keys          []*tcell.EventKey
	mouse         []*tcell.EventMouse
	stopped       bool
	stop          chan struct{}
	refresh       chan<- bool
}

func newStubApp(title string) *stubApp {
	return &stubApp{title: title, fill: rune(title[0]), stop: make(chan struct{})}
}

func (a *stubApp) Run() error { <-a.stop; return nil }
func (a *stubApp) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.stopped {
		a.stopped = true
		close(a.stop)
	}
}

func (a *stubApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
}

func (a *stubApp) GetTitle() string { return a.title }

func (a *stubApp) HandleKey(ev *tcell.EventKey) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys = append(a.keys, ev)
}

func (a *stubApp) HandleMouse(ev *tcell.EventMouse) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mouse = append(a.mouse, ev)
}

func (a *stubApp) SetRefreshNotifier(ch chan<- bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.refresh = ch
}

func (a *stubApp) Render() [][]Cell {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf := NewBuffer(a.width, a.height, tcell.StyleDefault)
	for y := range buf {
		for x := range buf[y] {
			buf[y][x].Ch = a.fill
		}
	}
	return buf
}

func (a *stubApp) size() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

func (a *stubApp) keyCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.keys)
}

func TestLayoutComposesInVerticalOrder(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	page := newStubApp("page")

	l := NewLayout(nav, foot)
	l.SetPage(page)
	l.Recalculate(10, 8)

	frame := l.Compose(tcell.StyleDefault)

	if len(frame) != 8 {
		t.Fatalf("Expected 8 rows, got %d", len(frame))
	}
	// Nav bar occupies the top rows, page the middle, footer the last row.
	for y := 0; y < NavBarHeight; y++ {
		if frame[y][0].Ch != 'n' {
			t.Errorf("Expected nav bar rune at row %d, got %q", y, frame[y][0].Ch)
		}
	}
	for y := NavBarHeight; y < 8-FooterHeight; y++ {
		if frame[y][0].Ch != 'p' {
			t.Errorf("Expected page rune at row %d, got %q", y, frame[y][0].Ch)
		}
	}
	if frame[7][0].Ch != 'f' {
		t.Errorf("Expected footer rune at last row, got %q", frame[7][0].Ch)
	}
}

func TestLayoutResizesAppsToRegions(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	page := newStubApp("page")

	l := NewLayout(nav, foot)
	l.SetPage(page)
	l.Recalculate(40, 20)

	if nav.width != 40 || nav.height != NavBarHeight {
		t.Errorf("Expected nav bar 40x%d, got %dx%d", NavBarHeight, nav.width, nav.height)
	}
	if page.width != 40 || page.height != 20-NavBarHeight-FooterHeight {
		t.Errorf("Expected page 40x%d, got %dx%d",
			20-NavBarHeight-FooterHeight, page.width, page.height)
	}
	if foot.width != 40 || foot.height != FooterHeight {
		t.Errorf("Expected footer 40x%d, got %dx%d", FooterHeight, foot.width, foot.height)
	}
}

func TestLayoutCollapsesPageOnShortFrames(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	page := newStubApp("page")

	l := NewLayout(nav, foot)
	l.SetPage(page)
	l.Recalculate(10, 2)

	if page.height != 0 {
		t.Errorf("Expected page to collapse to 0 rows, got %d", page.height)
	}
	frame := l.Compose(tcell.StyleDefault)
	if len(frame) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(frame))
	}
	if frame[0][0].Ch != 'n' {
		t.Errorf("Expected nav bar to keep the top row, got %q", frame[0][0].Ch)
	}
}

func TestLayoutSetPageAfterRecalculateSizesIt(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	l := NewLayout(nav, foot)
	l.Recalculate(30, 12)

	page := newStubApp("page")
	l.SetPage(page)

	if page.width != 30 || page.height != 12-NavBarHeight-FooterHeight {
		t.Errorf("Expected late page sized to region, got %dx%d", page.width, page.height)
	}
}

func TestLayoutDispatchKeyGoesToPage(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	page := newStubApp("page")
	l := NewLayout(nav, foot)
	l.SetPage(page)
	l.Recalculate(10, 8)

	l.DispatchKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))

	if len(page.keys) != 1 {
		t.Errorf("Expected page to receive 1 key, got %d", len(page.keys))
	}
	if len(nav.keys) != 0 || len(foot.keys) != 0 {
		t.Error("Expected chrome apps to receive no keys")
	}
}

func TestLayoutDispatchMouseTranslatesCoordinates(t *testing.T) {
	nav := newStubApp("nav")
	foot := newStubApp("foot")
	page := newStubApp("page")
	l := NewLayout(nav, foot)
	l.SetPage(page)
	l.Recalculate(20, 10)

	// Row 5 is inside the page region, whose origin is NavBarHeight.
	l.DispatchMouse(tcell.NewEventMouse(3, 5, tcell.Button1, tcell.ModNone))

	if len(page.mouse) != 1 {
		t.Fatalf("Expected page to receive 1 mouse event, got %d", len(page.mouse))
	}
	x, y := page.mouse[0].Position()
	if x != 3 || y != 5-NavBarHeight {
		t.Errorf("Expected page-local (3,%d), got (%d,%d)", 5-NavBarHeight, x, y)
	}

	// Last row belongs to the footer.
	l.DispatchMouse(tcell.NewEventMouse(0, 9, tcell.Button1, tcell.ModNone))
	if len(foot.mouse) != 1 {
		t.Fatalf("Expected footer to receive 1 mouse event, got %d", len(foot.mouse))
	}
	if _, y := foot.mouse[0].Position(); y != 0 {
		t.Errorf("Expected footer-local row 0, got %d", y)
	}
}
