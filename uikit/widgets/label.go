// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/widgets/label.go
// Summary: Single-line text widget, truncated to its rect.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/launchdeck/uikit/core"
)

type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
}

func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.Resize(runewidth.StringWidth(text), 1)
	return l
}

func (l *Label) Draw(p *core.Painter) {
	style := l.EffectiveStyle(l.Style)
	p.Fill(l.Rect, ' ', style)
	p.DrawText(l.Rect.X, l.Rect.Y, runewidth.Truncate(l.Text, l.Rect.W, ""), style)
}
