// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/adapter/uiapp.go
// Summary: Adapts a UIManager widget tree to the shell.App interface.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/shell"
	"github.com/framegrace/launchdeck/uikit/core"
)

// Compile-time interface checks
var _ shell.App = (*UIApp)(nil)
var _ shell.MouseHandler = (*UIApp)(nil)

// UIApp adapts a uikit UIManager to the shell.App interface.
type UIApp struct {
	title  string
	ui     *core.UIManager
	stopCh chan struct{}

	// OnResize runs after the widget surface has been resized; pages
	// use it to re-flow widget positions.
	OnResize func(w, h int)
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.OnResize != nil {
		a.OnResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]shell.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "UIApp"
	}
	return a.title
}

func (a *UIApp) HandleKey(ev *tcell.EventKey) { a.ui.HandleKey(ev) }

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

// Expose UI for composition
func (a *UIApp) UI() *core.UIManager { return a.ui }
