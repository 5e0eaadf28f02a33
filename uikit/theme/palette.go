// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/theme/palette.go
// Summary: Built-in default theme (catppuccin mocha).

package theme

// defaultConfig is the built-in theme. Overrides from config are merged on
// top of it; it is never modified in place.
var defaultConfig = Config{
	"palette": {
		"base":     "#1e1e2e",
		"mantle":   "#181825",
		"crust":    "#11111b",
		"surface0": "#313244",
		"surface1": "#45475a",
		"overlay0": "#6c7086",
		"text":     "#cdd6f4",
		"subtext0": "#a6adc8",
		"blue":     "#89b4fa",
		"lavender": "#b4befe",
		"mauve":    "#cba6f7",
		"red":      "#f38ba8",
		"green":    "#a6e3a1",
		"yellow":   "#f9e2af",
		"peach":    "#fab387",
		"teal":     "#94e2d5",
	},
	"semantic": {
		"bg.base":        "base",
		"bg.mantle":      "mantle",
		"bg.crust":       "crust",
		"bg.surface":     "surface0",
		"bg.raised":      "surface1",
		"text.primary":   "text",
		"text.muted":     "subtext0",
		"text.faint":     "overlay0",
		"text.inverse":   "crust",
		"accent.primary": "blue",
		"accent.alt":     "mauve",
		"action.danger":  "red",
		"action.ok":      "green",
		"action.warn":    "yellow",
	},
	"ui": {
		"surface_bg":       "surface0",
		"surface_fg":       "text",
		"text_fg":          "text",
		"focus_text_fg":    "lavender",
		"focus_surface_bg": "surface1",
		"border_fg":        "overlay0",
	},
}
