// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: uikit/theme/theme.go
// Summary: Theme configuration: palette, semantic colors and overrides.
// Usage: Widgets and apps resolve colors through theme.Get (or the
// per-app view from internal/theming) instead of hardcoding styles.

package theme

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Config is a two-level map: section -> key -> value. The "palette" section
// holds hex colors, "semantic" maps role names to palette entries (or raw
// colors), and widget sections like "ui" hold per-widget keys.
type Config map[string]map[string]interface{}

var (
	mu     sync.RWMutex
	global Config
)

// Get returns the active theme. Before Configure it is the built-in
// default palette.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return defaultConfig
	}
	return global
}

// Configure installs the given overrides on top of the default theme for
// the whole process. Typically called once at startup from config.
func Configure(overrides Config) {
	mu.Lock()
	defer mu.Unlock()
	if len(overrides) == 0 {
		global = nil
		return
	}
	global = WithOverrides(defaultConfig, overrides)
}

// WithOverrides returns a deep copy of base with the override sections
// merged in. Neither input is modified.
func WithOverrides(base, overrides Config) Config {
	merged := make(Config, len(base))
	for section, keys := range base {
		cp := make(map[string]interface{}, len(keys))
		for k, v := range keys {
			cp[k] = v
		}
		merged[section] = cp
	}
	for section, keys := range overrides {
		dst, ok := merged[section]
		if !ok {
			dst = make(map[string]interface{}, len(keys))
			merged[section] = dst
		}
		for k, v := range keys {
			dst[k] = v
		}
	}
	return merged
}

// ParseOverrides converts a raw config value (as decoded from JSON) into a
// Config. Anything that is not a section map is ignored.
func ParseOverrides(raw interface{}) Config {
	sections, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(Config)
	for name, v := range sections {
		keys, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		section := make(map[string]interface{}, len(keys))
		for k, kv := range keys {
			section[k] = kv
		}
		out[name] = section
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// GetColor resolves section/key to a color. Values may name a palette
// entry, a hex color, or a W3C color name. Missing or malformed values
// fall back silently.
func (c Config) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	keys, ok := c[section]
	if !ok {
		return fallback
	}
	raw, ok := keys[key]
	if !ok {
		return fallback
	}
	name, ok := raw.(string)
	if !ok {
		return fallback
	}
	if col, ok := c.resolveName(name); ok {
		return col
	}
	return fallback
}

// GetSemanticColor resolves a role name like "bg.surface" or
// "accent.primary" through the semantic section. Unknown roles resolve to
// the terminal default color — wrong visuals, never an error.
func (c Config) GetSemanticColor(name string) tcell.Color {
	if col, ok := c.lookupSemantic(name); ok {
		return col
	}
	return tcell.ColorDefault
}

func (c Config) lookupSemantic(name string) (tcell.Color, bool) {
	keys, ok := c["semantic"]
	if !ok {
		return 0, false
	}
	raw, ok := keys[name]
	if !ok {
		return 0, false
	}
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	return c.resolveName(s)
}

// resolveName resolves a color value: palette entry first, then whatever
// tcell understands ("#rrggbb" or a named color).
func (c Config) resolveName(name string) (tcell.Color, bool) {
	if name == "" {
		return 0, false
	}
	if palette, ok := c["palette"]; ok {
		if raw, ok := palette[name]; ok {
			if s, ok := raw.(string); ok && s != name {
				return c.resolveName(s)
			}
		}
	}
	col := tcell.GetColor(name)
	if col == tcell.ColorDefault && name != "default" {
		return 0, false
	}
	return col, true
}

// ResolveColor resolves a free-form color value against the active theme:
// semantic role, palette entry, hex, or named color. Malformed input
// degrades to the terminal default color, silently.
func ResolveColor(name string) tcell.Color {
	c := Get()
	if col, ok := c.lookupSemantic(name); ok {
		return col
	}
	if col, ok := c.resolveName(name); ok {
		return col
	}
	return tcell.ColorDefault
}
