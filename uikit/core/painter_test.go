// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/core/painter_test.go
// Summary: Clipping, text measurement and border drawing tests for Painter.

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/shell"
)

func newTestBuffer(w, h int) [][]shell.Cell {
	return shell.NewBuffer(w, h, tcell.StyleDefault)
}

func TestPainterClipsToRegion(t *testing.T) {
	buf := newTestBuffer(10, 4)
	p := NewPainter(buf, Rect{X: 2, Y: 1, W: 3, H: 2})

	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	p.SetCell(2, 1, 'a', style) // inside
	p.SetCell(4, 2, 'b', style) // inside (bottom-right corner of clip)
	p.SetCell(5, 1, 'x', style) // outside right
	p.SetCell(2, 3, 'y', style) // outside bottom
	p.SetCell(1, 1, 'z', style) // outside left

	if buf[1][2].Ch != 'a' {
		t.Errorf("Expected 'a' at (2,1), got %q", buf[1][2].Ch)
	}
	if buf[2][4].Ch != 'b' {
		t.Errorf("Expected 'b' at (4,2), got %q", buf[2][4].Ch)
	}
	if buf[1][5].Ch == 'x' {
		t.Error("Expected write at (5,1) to be clipped")
	}
	if buf[3][2].Ch == 'y' {
		t.Error("Expected write at (2,3) to be clipped")
	}
	if buf[1][1].Ch == 'z' {
		t.Error("Expected write at (1,1) to be clipped")
	}
}

func TestFillCoversRegion(t *testing.T) {
	buf := newTestBuffer(6, 3)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 6, H: 3})

	style := tcell.StyleDefault.Background(tcell.ColorBlue)
	p.Fill(Rect{X: 1, Y: 1, W: 3, H: 2}, '.', style)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			if inside && buf[y][x].Ch != '.' {
				t.Errorf("Expected '.' at (%d,%d), got %q", x, y, buf[y][x].Ch)
			}
			if !inside && buf[y][x].Ch == '.' {
				t.Errorf("Expected (%d,%d) untouched", x, y)
			}
		}
	}
}

func TestDrawTextAdvancesByRuneWidth(t *testing.T) {
	buf := newTestBuffer(10, 1)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 10, H: 1})

	// '界' is a double-width rune; 'a' should land two columns later
	// and the shadowed column must be cleared of stale content.
	buf[0][1].Ch = 'Z'
	p.DrawText(0, 0, "界a", tcell.StyleDefault)

	if buf[0][0].Ch != '界' {
		t.Errorf("Expected wide rune at column 0, got %q", buf[0][0].Ch)
	}
	if buf[0][1].Ch != ' ' {
		t.Errorf("Expected shadowed cell at column 1, got %q", buf[0][1].Ch)
	}
	if buf[0][2].Ch != 'a' {
		t.Errorf("Expected 'a' at column 2, got %q", buf[0][2].Ch)
	}
}

func TestDrawBorderCorners(t *testing.T) {
	buf := newTestBuffer(5, 4)
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 5, H: 4})

	charset := [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	p.DrawBorder(Rect{X: 0, Y: 0, W: 5, H: 4}, tcell.StyleDefault, charset)

	if buf[0][0].Ch != '┌' || buf[0][4].Ch != '┐' {
		t.Errorf("Expected top corners, got %q %q", buf[0][0].Ch, buf[0][4].Ch)
	}
	if buf[3][0].Ch != '└' || buf[3][4].Ch != '┘' {
		t.Errorf("Expected bottom corners, got %q %q", buf[3][0].Ch, buf[3][4].Ch)
	}
	if buf[0][2].Ch != '─' || buf[3][2].Ch != '─' {
		t.Error("Expected horizontal edges")
	}
	if buf[1][0].Ch != '│' || buf[2][4].Ch != '│' {
		t.Error("Expected vertical edges")
	}
	if buf[1][2].Ch == '─' || buf[1][2].Ch == '│' {
		t.Error("Expected interior untouched")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Expected corners inside rect")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Expected points outside rect")
	}
}
