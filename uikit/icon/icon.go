// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/icon/icon.go
// Summary: Cell-based icons for launcher tiles.
// Usage: Icons draw themselves into the box a widget hands them; Glyph
// wraps a single rune, Named resolves a symbolic name from the built-in
// Nerd Font table.

package icon

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/launchdeck/uikit/core"
)

// Icon renders itself inside box. Implementations must not draw
// outside the box.
type Icon interface {
	Draw(p *core.Painter, box core.Rect, style tcell.Style)
}

// Glyph is a single-rune icon, drawn centered in its box.
type Glyph rune

func (g Glyph) Draw(p *core.Painter, box core.Rect, style tcell.Style) {
	if box.W <= 0 || box.H <= 0 {
		return
	}
	r := rune(g)
	w := runewidth.RuneWidth(r)
	if w == 0 || w > box.W {
		return
	}
	x := box.X + (box.W-w)/2
	y := box.Y + box.H/2
	p.DrawText(x, y, string(r), style)
}

// Named resolves a symbolic icon name from an instance manifest against
// the glyph table. Unknown or empty names degrade to a generic marker
// rather than failing.
type Named string

func (n Named) Draw(p *core.Painter, box core.Rect, style tcell.Style) {
	g, ok := glyphs[string(n)]
	if !ok {
		g = fallbackGlyph
	}
	Glyph(g).Draw(p, box, style)
}

// These glyphs require a Nerd Font capable terminal, same as the
// footer separators.
const fallbackGlyph = '' // dot-circle

var glyphs = map[string]rune{
	"rocket":   '',
	"cube":     '',
	"cubes":    '',
	"gear":     '',
	"server":   '',
	"world":    '',
	"terminal": '',
	"game":     '',
	"book":     '',
	"archive":  '',
	"wrench":   '',
	"flask":    '',
}
