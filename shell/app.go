// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/app.go
// Summary: The App contract every region of the shell renders through.
// Usage: NavBar, launch page and footer all implement App; the layout
// composes their buffers into one frame.

package shell

import "github.com/gdamore/tcell/v2"

// App is a self-contained drawable region. Run blocks until Stop; Render
// returns the current cell buffer at the size set by the last Resize.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(ch chan<- bool)
}

// MouseHandler is implemented by apps that consume mouse events. Coordinates
// are local to the app's region.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}
