// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultPage": "/",
		"activeTheme": "mocha",
	})
	cfg.RegisterDefaults("catalog", Section{
		"dir":                "",
		"instance_db":        "",
		"watch":              true,
		"reload_debounce_ms": 250,
	})
	cfg.RegisterDefaults("footer", Section{
		"show_progress": true,
		"show_output":   true,
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "launchpage":
		cfg.RegisterDefaults("launchpage", Section{
			"tile_size":      8,
			"tile_gap":       2,
			"show_preview":   true,
			"preview_height": 12,
		})
		cfg.RegisterDefaults("launchpage.colors", Section{
			"tile":          "bg.raised",
			"tile_selected": "accent.primary",
		})
	}
}
