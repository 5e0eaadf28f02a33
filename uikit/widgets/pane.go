// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/widgets/pane.go
// Summary: Flat background pane widget.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/uikit/core"
)

type Pane struct {
	core.BaseWidget
	Style tcell.Style
}

func NewPane() *Pane {
	return &Pane{}
}

func (p *Pane) Draw(painter *core.Painter) {
	style := p.EffectiveStyle(p.Style)
	painter.Fill(p.Rect, ' ', style)
}
