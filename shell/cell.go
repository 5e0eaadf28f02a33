// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/cell.go
// Summary: Cell buffer primitives shared by the shell and every app.

package shell

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell: a rune plus its style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a h×w buffer filled with blanks in the given style.
func NewBuffer(w, h int, style tcell.Style) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = Cell{Ch: ' ', Style: style}
		}
		buf[y] = row
	}
	return buf
}
