package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kelvane/dragpop/gesture"
)

// demoConfig is the TOML surface of the demo
type demoConfig struct {
	Friction     float64 `toml:"friction"`
	Direction    string  `toml:"direction"`
	ScrollOption string  `toml:"scroll_option"`
	Sound        bool    `toml:"sound"`
	Items        int     `toml:"items"`
}

const defaultConfigTOML = `# popdemo configuration
# friction divides pointer motion: > 1 dampens the drag, < 1 amplifies it
friction = 1.0

# direction wires raw drags on the panel chrome:
# none, to_top, to_bottom, to_left, to_right, horizontal, vertical
direction = "vertical"

# scroll_option gates which overscroll edge can start a pop:
# start, end, both, none
scroll_option = "start"

# sound plays audio cues on dismissal and settle
sound = true

# items is the inner list length
items = 40
`

func defaultDemoConfig() demoConfig {
	cfg, err := parseConfig([]byte(defaultConfigTOML))
	if err != nil {
		panic("default config must parse: " + err.Error())
	}
	return cfg
}

// parseConfig decodes TOML bytes into a demoConfig
func parseConfig(data []byte) (demoConfig, error) {
	var cfg demoConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return demoConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// gestureConfig maps the TOML names onto the machine configuration
func (c demoConfig) gestureConfig() (gesture.Config, error) {
	cfg := gesture.DefaultConfig()

	if c.Friction <= 0 {
		return cfg, fmt.Errorf("friction must be positive, got %v", c.Friction)
	}
	cfg.Friction = c.Friction

	switch c.Direction {
	case "none":
		cfg.Direction = gesture.DirectionNone
	case "to_top":
		cfg.Direction = gesture.DirectionToTop
	case "to_bottom":
		cfg.Direction = gesture.DirectionToBottom
	case "to_left":
		cfg.Direction = gesture.DirectionToLeft
	case "to_right":
		cfg.Direction = gesture.DirectionToRight
	case "horizontal":
		cfg.Direction = gesture.DirectionHorizontal
	case "vertical":
		cfg.Direction = gesture.DirectionVertical
	default:
		return cfg, fmt.Errorf("unknown direction %q", c.Direction)
	}

	switch c.ScrollOption {
	case "start":
		cfg.ScrollOption = gesture.ScrollPopStart
	case "end":
		cfg.ScrollOption = gesture.ScrollPopEnd
	case "both":
		cfg.ScrollOption = gesture.ScrollPopBoth
	case "none":
		cfg.ScrollOption = gesture.ScrollPopNone
	default:
		return cfg, fmt.Errorf("unknown scroll_option %q", c.ScrollOption)
	}

	return cfg, nil
}

// configPath returns the full path to the demo config file,
// using the platform user config dir
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "popdemo", "config.toml"), nil
}

// loadConfig reads the config file at path, or the user config location when
// path is empty. A missing file falls back to defaults silently
func loadConfig(path string) (demoConfig, error) {
	if path == "" {
		p, err := configPath()
		if err != nil {
			return defaultDemoConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultDemoConfig(), nil
		}
		return demoConfig{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}
