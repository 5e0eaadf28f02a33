// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/widgets/border.go
// Summary: Border frame widget with an optional child filling the interior.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/uikit/core"
)

// Border draws a frame around its Rect and keeps an optional child
// sized to the interior.
type Border struct {
	core.BaseWidget
	Style   tcell.Style
	Charset [6]rune // h, v, tl, tr, bl, br
	Child   core.Widget
}

func NewBorder() *Border {
	b := &Border{}
	// default single-line charset
	b.Charset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	return b
}

func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y, W: 0, H: 0}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layoutChild()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layoutChild()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layoutChild()
}

func (b *Border) layoutChild() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

func (b *Border) VisitChildren(visit func(core.Widget)) {
	if b.Child != nil {
		visit(b.Child)
	}
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.EffectiveStyle(b.Style), b.Charset)
	if b.Child != nil {
		b.Child.Draw(p)
	}
}
