// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/widgets/iconbutton.go
// Summary: Square icon tile that reports activation to its owner.
// Usage: The owner decides what "selected" means; the button only
// renders the state it is given and fires OnClick.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/uikit/core"
	"github.com/framegrace/launchdeck/uikit/icon"
)

// IconButton is a square tile of Spec.Dimension() cells. The fill color
// follows Selected, the icon is drawn in a centered box at 70% of the
// tile side. Selected is owned by the caller: the button never flips it,
// it only reports clicks through OnClick with the originating event.
type IconButton struct {
	core.BaseWidget
	Icon     icon.Icon
	Spec     core.StyleSpec
	Selected bool
	OnClick  func(ev tcell.Event)

	pressed bool
}

// NewIconButton creates a tile sized from spec. Position it with
// SetPosition.
func NewIconButton(ic icon.Icon, spec core.StyleSpec) *IconButton {
	b := &IconButton{Icon: ic, Spec: spec}
	side := spec.Dimension()
	b.Resize(side, side)
	b.SetFocusable(true)
	return b
}

// SetSpec replaces the style descriptor and re-sizes the tile.
func (b *IconButton) SetSpec(spec core.StyleSpec) {
	b.Spec = spec
	side := spec.Dimension()
	b.Resize(side, side)
}

// Draw renders the tile and its icon box.
func (b *IconButton) Draw(p *core.Painter) {
	style := b.EffectiveStyle(b.Spec.Resolve(b.Selected))
	p.Fill(b.Rect, ' ', style)

	if b.Icon == nil {
		return
	}
	box := b.IconBox()
	if box.Empty() {
		return
	}
	b.Icon.Draw(p, box, style)
}

// IconBox returns the centered box the icon is drawn into: 70% of the
// tile side, never below one cell.
func (b *IconButton) IconBox() core.Rect {
	side := min(b.Rect.W, b.Rect.H)
	if side <= 0 {
		return core.Rect{}
	}
	box := (side * 7) / 10
	if box < 1 {
		box = 1
	}
	return core.Rect{
		X: b.Rect.X + (b.Rect.W-box)/2,
		Y: b.Rect.Y + (b.Rect.H-box)/2,
		W: box,
		H: box,
	}
}

// HandleKey processes keyboard input. Space or Enter activates.
func (b *IconButton) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		b.fire(ev)
		return true
	}
	return false
}

// HandleMouse processes mouse input. A left press activates once; drag
// events arriving while the button stays held do not re-fire.
func (b *IconButton) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		b.pressed = false
		return false
	}

	x, y := ev.Position()
	if !b.HitTest(x, y) {
		return false
	}
	if b.pressed {
		return true
	}
	b.pressed = true
	b.fire(ev)
	return true
}

// fire reports activation with the event that caused it.
func (b *IconButton) fire(ev tcell.Event) {
	if b.OnClick != nil {
		b.OnClick(ev)
	}
}
