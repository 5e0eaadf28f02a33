// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/core/style.go
// Summary: Structured style descriptor for widgets.
// Usage: Callers describe colors by name (semantic role, palette entry,
// hex or W3C name) and sizes in cells; resolution is silent — malformed
// values degrade to terminal defaults instead of erroring.

package core

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/launchdeck/uikit/theme"
)

// StyleSpec is a typed style descriptor: explicit fields instead of
// free-form style strings. The zero value is usable and resolves to
// terminal defaults.
type StyleSpec struct {
	// Color and SelectedColor name the container color for the unselected
	// and selected states.
	Color         string
	SelectedColor string
	// Size is the container dimension in cells (square widgets).
	Size int
}

// Resolve returns the concrete style for the given selection state,
// branching between SelectedColor and Color.
func (s StyleSpec) Resolve(selected bool) tcell.Style {
	name := s.Color
	if selected {
		name = s.SelectedColor
	}
	bg := theme.ResolveColor(name)
	fg := theme.Get().GetSemanticColor("text.inverse")
	return tcell.StyleDefault.Background(bg).Foreground(fg)
}

// Dimension returns the container size, never below 1.
func (s StyleSpec) Dimension() int {
	if s.Size < 1 {
		return 1
	}
	return s.Size
}
