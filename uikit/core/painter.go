// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/core/painter.go
// Summary: Clipped cell painting over a shared frame buffer.
// Usage: The UIManager hands widgets a Painter scoped to the dirty region;
// widgets draw through it and never touch the buffer directly.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/launchdeck/shell"
)

// Rect is an integer rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// union returns the smallest rectangle covering both inputs.
func union(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.W, b.X+b.W)
	y1 := max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Painter paints cells into a buffer, clipped to one region.
type Painter struct {
	buf  [][]shell.Cell
	clip Rect
}

// NewPainter wraps the buffer with a clip region. Cells outside the clip
// are silently dropped.
func NewPainter(buf [][]shell.Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// SetCell writes one cell if it falls inside the clip and the buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) {
		return
	}
	row := p.buf[y]
	if x < 0 || x >= len(row) {
		return
	}
	row[x] = shell.Cell{Ch: ch, Style: style}
}

// Fill paints every cell of the rectangle with ch.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes a string starting at x,y. Wide runes advance two
// columns; the shadowed cell is blanked so stale content never shows
// through.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(col, y, r, style)
		if w == 2 {
			p.SetCell(col+1, y, ' ', style)
		}
		col += w
	}
}

// DrawBorder draws a rectangle outline with the charset
// {h, v, tl, tr, bl, br}.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	h, v, tl, tr, bl, br := charset[0], charset[1], charset[2], charset[3], charset[4], charset[5]
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, h, style)
		p.SetCell(x, y1, h, style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, v, style)
		p.SetCell(x1, y, v, style)
	}
	p.SetCell(r.X, r.Y, tl, style)
	p.SetCell(x1, r.Y, tr, style)
	p.SetCell(r.X, y1, bl, style)
	p.SetCell(x1, y1, br, style)
}
