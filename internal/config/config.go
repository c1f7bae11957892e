// Package config provides YAML and TOML configuration loading for the
// shooter platform: tick cadence, seed, logging and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Config contains everything the platform reads at startup.
type Config struct {
	Tick TickConfig `yaml:"tick" toml:"tick"`
	Seed int64      `yaml:"seed" toml:"seed"`
	Log  LogConfig  `yaml:"log" toml:"log"`
	Keys KeyConfig  `yaml:"keys" toml:"keys"`
}

// TickConfig defines the driver cadence.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms" toml:"interval_ms"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Prefix string `yaml:"prefix" toml:"prefix"`
}

// KeyConfig lists the key names bound to each command.
type KeyConfig struct {
	Left      []string `yaml:"left" toml:"left"`
	Right     []string `yaml:"right" toml:"right"`
	Fire      []string `yaml:"fire" toml:"fire"`
	Basic     []string `yaml:"basic" toml:"basic"`
	Double    []string `yaml:"double" toml:"double"`
	Targeting []string `yaml:"targeting" toml:"targeting"`
	Laser     []string `yaml:"laser" toml:"laser"`
	God       []string `yaml:"god" toml:"god"`
	Debug     []string `yaml:"debug" toml:"debug"`
	Restart   []string `yaml:"restart" toml:"restart"`
	Quit      []string `yaml:"quit" toml:"quit"`
}

// Binding pairs a command with its keys.
type Binding struct {
	Command core.Command
	Keys    []string
}

// Bindings returns the key bindings in help order.
func (k KeyConfig) Bindings() []Binding {
	return []Binding{
		{core.CmdMoveLeft, k.Left},
		{core.CmdMoveRight, k.Right},
		{core.CmdFire, k.Fire},
		{core.CmdSelectBasic, k.Basic},
		{core.CmdSelectDouble, k.Double},
		{core.CmdSelectTargeting, k.Targeting},
		{core.CmdSelectLaser, k.Laser},
		{core.CmdToggleGodMode, k.God},
		{core.CmdToggleDebug, k.Debug},
		{core.CmdRestart, k.Restart},
		{core.CmdQuit, k.Quit},
	}
}

// TickInterval returns the driver cadence as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// Runtime converts the config into engine runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickInterval = c.TickInterval()
	rc.Seed = c.Seed
	return rc
}

// Validate checks the config for values the platform cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Tick.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("tick.interval_ms must be positive, got %d", c.Tick.IntervalMS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	owner := make(map[string]core.Command)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", b.Command))
			continue
		}
		for _, k := range b.Keys {
			if prev, dup := owner[k]; dup {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, b.Command))
				continue
			}
			owner[k] = b.Command
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
