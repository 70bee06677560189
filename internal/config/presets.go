package config

import "sort"

// Presets are partial overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"fine": func(c *Config) {
		c.Grid.XCount, c.Grid.YCount = 100, 100
		c.Style.RowStride, c.Style.ColStride = 2, 2
		c.Style.LineWidth = 0.5
	},
	"coarse": func(c *Config) {
		c.Grid.XCount, c.Grid.YCount = 20, 20
	},
	"wide": func(c *Config) {
		c.Grid.XMin, c.Grid.XMax = -10, 10
		c.Grid.YMin, c.Grid.YMax = -10, 10
		c.Grid.XCount, c.Grid.YCount = 80, 80
	},
	"ripple": func(c *Config) {
		c.Grid.Function = "ripple"
		c.Grid.XMin, c.Grid.XMax = -15, 15
		c.Grid.YMin, c.Grid.YMax = -15, 15
		c.Labels.Title = "Ripple"
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
