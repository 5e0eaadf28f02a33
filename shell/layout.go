// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/layout.go
// Summary: Explicit vertical composition of nav bar, page and footer.
// Usage: The shell recalculates regions on resize and composes one frame
// buffer from the three app buffers, top to bottom.

package shell

import "github.com/gdamore/tcell/v2"

// Region heights. The nav bar row is followed by a reserved spacer row so
// page content never collides with the bar.
const (
	NavBarHeight = 2
	FooterHeight = 1
)

// Region is a horizontal band of the screen assigned to one app.
type Region struct {
	Y, H int
}

// Contains reports whether the absolute row y falls inside the region.
func (r Region) Contains(y int) bool { return r.H > 0 && y >= r.Y && y < r.Y+r.H }

// Layout owns the vertical arrangement: nav bar on top, footer at the
// bottom, the routed page filling the middle. It is pure composition — it
// reads app buffers and never touches the selection cell.
type Layout struct {
	navbar App
	footer App
	page   App

	width, height int
	navRegion     Region
	pageRegion    Region
	footerRegion  Region
}

// NewLayout creates a layout over the fixed chrome apps. The page is set
// after navigation.
func NewLayout(navbar, footer App) *Layout {
	return &Layout{navbar: navbar, footer: footer}
}

// SetPage swaps the routed page into the middle region and sizes it.
func (l *Layout) SetPage(page App) {
	l.page = page
	if l.page != nil && l.pageRegion.H > 0 {
		l.page.Resize(l.width, l.pageRegion.H)
	}
}

// Page returns the current middle-region app.
func (l *Layout) Page() App { return l.page }

// Recalculate assigns regions for the given frame size and resizes the apps.
// When the frame is too short for chrome the page region collapses first.
func (l *Layout) Recalculate(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	l.width, l.height = w, h

	navH := NavBarHeight
	footH := FooterHeight
	if navH+footH > h {
		navH = h
		footH = 0
	}
	pageH := h - navH - footH

	l.navRegion = Region{Y: 0, H: navH}
	l.pageRegion = Region{Y: navH, H: pageH}
	l.footerRegion = Region{Y: navH + pageH, H: footH}

	if l.navbar != nil {
		l.navbar.Resize(w, navH)
	}
	if l.page != nil {
		l.page.Resize(w, pageH)
	}
	if l.footer != nil {
		l.footer.Resize(w, footH)
	}
}

// Compose stitches the three app buffers into one frame, in vertical order
// nav bar, page, footer.
func (l *Layout) Compose(fill tcell.Style) [][]Cell {
	frame := NewBuffer(l.width, l.height, fill)
	l.blit(frame, l.navbar, l.navRegion)
	l.blit(frame, l.page, l.pageRegion)
	l.blit(frame, l.footer, l.footerRegion)
	return frame
}

// blit copies an app buffer into its region, clipping to the frame.
func (l *Layout) blit(frame [][]Cell, app App, reg Region) {
	if app == nil || reg.H <= 0 {
		return
	}
	buf := app.Render()
	for y := 0; y < reg.H && y < len(buf); y++ {
		fy := reg.Y + y
		if fy >= len(frame) {
			break
		}
		row := buf[y]
		for x := 0; x < l.width && x < len(row); x++ {
			frame[fy][x] = row[x]
		}
	}
}

// DispatchKey forwards a key event to the page, which owns keyboard focus.
func (l *Layout) DispatchKey(ev *tcell.EventKey) {
	if l.page != nil {
		l.page.HandleKey(ev)
	}
}

// DispatchMouse routes a mouse event to the region under the cursor,
// translating coordinates to the region origin.
func (l *Layout) DispatchMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	target, reg := l.regionAt(y)
	if target == nil {
		return
	}
	mh, ok := target.(MouseHandler)
	if !ok {
		return
	}
	local := tcell.NewEventMouse(x, y-reg.Y, ev.Buttons(), ev.Modifiers())
	mh.HandleMouse(local)
}

func (l *Layout) regionAt(y int) (App, Region) {
	switch {
	case l.navRegion.Contains(y):
		return l.navbar, l.navRegion
	case l.pageRegion.Contains(y):
		return l.page, l.pageRegion
	case l.footerRegion.Contains(y):
		return l.footer, l.footerRegion
	default:
		return nil, Region{}
	}
}
