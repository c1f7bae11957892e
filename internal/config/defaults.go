package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Default returns the hardcoded configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Tick: TickConfig{IntervalMS: 20},
		Seed: 0,
		Log: LogConfig{
			Level:  "info",
			Prefix: "shooter",
		},
		Keys: KeyConfig{
			Left:      []string{"left", "a"},
			Right:     []string{"right", "d"},
			Fire:      []string{" ", "space"},
			Basic:     []string{"1", "x"},
			Double:    []string{"2", "c"},
			Targeting: []string{"3", "v"},
			Laser:     []string{"4", "b"},
			God:       []string{"g"},
			Debug:     []string{"esc", "`"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
