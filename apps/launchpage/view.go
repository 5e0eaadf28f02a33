// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launchpage/view.go
// Summary: The manifest preview widget shown under the instance list.

package launchpage

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/launchdeck/preview"
	"github.com/framegrace/launchdeck/uikit/core"
	"github.com/framegrace/launchdeck/uikit/theme"
)

const previewPlaceholder = "Select an instance to preview its manifest."

// manifestView paints highlighted manifest lines. The lines are produced
// by preview.Render; this widget only places them, clipped to its rect.
type manifestView struct {
	core.BaseWidget
	style       tcell.Style
	placeholder tcell.Style
	lines       []preview.Line
}

func newManifestView(tm theme.Config) *manifestView {
	bg := tm.GetSemanticColor("bg.mantle")
	return &manifestView{
		style:       tcell.StyleDefault.Background(bg).Foreground(tm.GetSemanticColor("text.primary")),
		placeholder: tcell.StyleDefault.Background(bg).Foreground(tm.GetSemanticColor("text.muted")),
	}
}

// SetLines replaces the preview content. nil shows the placeholder.
func (v *manifestView) SetLines(lines []preview.Line) {
	v.lines = lines
}

func (v *manifestView) Draw(p *core.Painter) {
	p.Fill(v.Rect, ' ', v.style)

	if len(v.lines) == 0 {
		p.DrawText(v.Rect.X+1, v.Rect.Y, runewidth.Truncate(previewPlaceholder, max(0, v.Rect.W-1), ""), v.placeholder)
		return
	}

	maxX := v.Rect.X + v.Rect.W
	for i, line := range v.lines {
		if i >= v.Rect.H {
			break
		}
		x := v.Rect.X
		y := v.Rect.Y + i
		for _, span := range line.Spans {
			if x >= maxX {
				break
			}
			text := runewidth.Truncate(span.Text, maxX-x, "")
			p.DrawText(x, y, text, span.Style)
			x += runewidth.StringWidth(text)
		}
	}
}
