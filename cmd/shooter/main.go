// shooter is a terminal space shooter: defend against a descending swarm
// with switchable weapons.
//
// Usage:
//
//	shooter play             - Play in the terminal
//	shooter sim              - Run a headless deterministic simulation
//	shooter weapons          - List available weapons
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--seed <value>      - RNG seed for swarm fire (0 = from config or clock)
//	--tick-ms <ms>      - Override the tick interval
//	--log-level <level> - Override the log level
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTickMS   int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - defend against the swarm in your terminal",
	Long: `Space Shooter is a fixed-timestep arcade shooter. A swarm of enemies
bounces across the arena, dropping a row at each edge and speeding up as it
thins out. Pick a weapon, shoot it down before it reaches you.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation and print the outcome
  weapons  - Show all available weapons
  config   - Print the effective configuration

Examples:
  shooter play
  shooter play --seed 42 --log-file shooter.log
  shooter sim --ticks 5000 --weapon laser --dump
  shooter config --config ./shooter.toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick-ms", 0, "Tick interval in milliseconds (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
// It exits the process on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagTickMS != 0 {
		cfg.Tick.IntervalMS = flagTickMS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSeed picks a clock seed when none is configured.
func resolveSeed(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger from config.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Log.Prefix,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
