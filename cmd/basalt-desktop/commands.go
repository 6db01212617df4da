package main

import (
	"fmt"

	"github.com/npiesco/basalt/internal/bridge"
)

// appVersion returns the semantic version baked into this build,
// verbatim, with no formatting applied.
func appVersion(host *bridge.Host, _ bridge.Args) (any, error) {
	return host.Meta.Version, nil
}

// settingsGet returns the persisted desktop settings with defaults
// applied.
func settingsGet(host *bridge.Host, _ bridge.Args) (any, error) {
	return host.Settings.Load()
}

// settingsSetTheme persists the theme preference from the frontend.
func settingsSetTheme(host *bridge.Host, args bridge.Args) (any, error) {
	theme := args.String("theme", "")
	if theme == "" {
		return nil, fmt.Errorf("settings_set_theme: missing theme argument")
	}
	if err := host.Settings.SetTheme(theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// settingsSetFontSize persists the editor font size from the frontend.
// JSON numbers arrive as float64 across the web-view boundary.
func settingsSetFontSize(host *bridge.Host, args bridge.Args) (any, error) {
	raw, ok := args["size"].(float64)
	if !ok {
		return nil, fmt.Errorf("settings_set_font_size: missing size argument")
	}
	size := int(raw)
	if float64(size) != raw {
		return nil, fmt.Errorf("settings_set_font_size: size must be a whole number, got %v", raw)
	}
	if err := host.Settings.SetFontSize(size); err != nil {
		return nil, err
	}
	return size, nil
}
