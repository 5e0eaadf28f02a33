// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/navbar/navbar.go
// Summary: Top navigation bar with the brand pill acting as a home link.
// Usage: Occupies the shell's top region (bar plus one blank spacer row).
// Selection state never reaches it; it renders the same frame regardless.

package navbar

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/shell"
	"github.com/framegrace/launchdeck/uikit/theme"
)

// Powerline characters for the brand pill.
// Note: These require a Powerline-patched font or a Nerd Font to render correctly.
const (
	leftTabSeparator  = '' // Left half circle thick separator
	rightTabSeparator = '' // Right half circle thick separator
	brandIcon         = '' // rocket
	brandTitle        = "launchdeck"
)

// App is the nav bar. It is stateless: one home link, a spacer, nothing
// else, so there is nothing to observe and nothing to invalidate it.
type App struct {
	mu            sync.RWMutex
	width, height int
	refreshChan   chan<- bool
	stop          chan struct{}
	pressed       bool

	// Home is invoked once per click on the brand pill. Wired by the
	// entry point to navigate back to "/".
	Home func()
}

var _ shell.App = (*App)(nil)
var _ shell.MouseHandler = (*App)(nil)

// New creates the nav bar.
func New() *App {
	return &App{stop: make(chan struct{})}
}

func (a *App) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

func (a *App) Run() error {
	<-a.stop
	return nil
}

func (a *App) Stop() {
	close(a.stop)
}

func (a *App) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
}

func (a *App) GetTitle() string {
	return "Nav Bar"
}

func (a *App) HandleKey(ev *tcell.EventKey) {}

// HandleMouse fires Home on a Button1 press inside the brand pill.
// Held-button motion does not re-fire.
func (a *App) HandleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		a.mu.Lock()
		a.pressed = false
		a.mu.Unlock()
		return
	}

	x, y := ev.Position()
	a.mu.Lock()
	inside := y == 0 && x < a.brandWidthLocked()
	fire := inside && !a.pressed
	if inside {
		a.pressed = true
	}
	home := a.Home
	a.mu.Unlock()

	if fire && home != nil {
		home()
	}
}

// brandWidthLocked is the pill's cell width: both caps plus the padded
// icon and title.
func (a *App) brandWidthLocked() int {
	return 2 + len([]rune(" "+string(brandIcon)+"  "+brandTitle+" "))
}

func (a *App) Render() [][]shell.Cell {
	a.mu.RLock()
	defer a.mu.RUnlock()

	tm := theme.Get()
	barBg := tm.GetSemanticColor("bg.mantle").TrueColor()
	barFg := tm.GetSemanticColor("text.primary").TrueColor()
	pillBg := tm.GetSemanticColor("accent.primary").TrueColor()
	pillFg := tm.GetSemanticColor("text.inverse").TrueColor()
	spacerBg := tm.GetSemanticColor("bg.base").TrueColor()

	styleBase := tcell.StyleDefault.Background(barBg).Foreground(barFg)
	stylePill := tcell.StyleDefault.Background(pillBg).Foreground(pillFg)
	styleCap := tcell.StyleDefault.Background(barBg).Foreground(pillBg)
	styleSpacer := tcell.StyleDefault.Background(spacerBg).Foreground(barFg)

	buf := shell.NewBuffer(a.width, a.height, styleSpacer)
	if a.height == 0 || a.width == 0 {
		return buf
	}

	for x := 0; x < a.width; x++ {
		buf[0][x] = shell.Cell{Ch: ' ', Style: styleBase}
	}

	col := 0
	put := func(r rune, st tcell.Style) {
		if col < a.width {
			buf[0][col] = shell.Cell{Ch: r, Style: st}
			col++
		}
	}
	put(leftTabSeparator, styleCap)
	for _, r := range " " + string(brandIcon) + "  " + brandTitle + " " {
		put(r, stylePill)
	}
	put(rightTabSeparator, styleCap)

	return buf
}
