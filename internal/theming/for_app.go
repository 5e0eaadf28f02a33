package theming

import (
	"github.com/framegrace/launchdeck/config"
	"github.com/framegrace/launchdeck/uikit/theme"
)

// ForApp returns the base theme merged with any per-app overrides.
func ForApp(app string) theme.Config {
	base := theme.Get()
	overrides := overridesForApp(app)
	if len(overrides) == 0 {
		return base
	}
	return theme.WithOverrides(base, overrides)
}

func overridesForApp(app string) theme.Config {
	if app == "" {
		return nil
	}
	cfg := config.App(app)
	if cfg == nil {
		return nil
	}
	raw := cfg["theme_overrides"]
	if s, ok := raw.(config.Section); ok {
		raw = map[string]interface{}(s)
	}
	return theme.ParseOverrides(raw)
}
