package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/session"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

var (
	flagTicks     int
	flagWeapon    string
	flagFireEvery int
	flagGod       bool
	flagDump      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless deterministic simulation",
	Long: `Runs the simulation without a terminal UI. An autopilot follows the
nearest enemy column and fires at a fixed cadence. The same seed and flags
always produce the same outcome and snapshot hash.

Examples:
  shooter sim --seed 1
  shooter sim --ticks 10000 --weapon double --fire-every 2
  shooter sim --weapon laser --god --dump`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Maximum number of ticks to run")
	simCmd.Flags().StringVar(&flagWeapon, "weapon", "basic", "Weapon id (see 'shooter weapons')")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 4, "Fire once every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagGod, "god", false, "Enable god mode")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the outcome as YAML")
}

// simResult is the YAML form of a finished run.
type simResult struct {
	Seed         int64  `yaml:"seed"`
	Weapon       string `yaml:"weapon"`
	Ticks        uint64 `yaml:"ticks"`
	Score        int    `yaml:"score"`
	Health       int    `yaml:"health"`
	GameOver     bool   `yaml:"game_over"`
	Enemies      int    `yaml:"enemies_left"`
	Projectiles  int    `yaml:"projectiles_in_flight"`
	SnapshotHash string `yaml:"snapshot_hash"`
	SnapshotSize int    `yaml:"snapshot_bytes"`
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	if flagTicks <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --ticks must be positive\n")
		os.Exit(1)
	}

	seed := resolveSeed(cfg)
	s := session.New(seed, logger)
	if err := s.SelectWeapon(flagWeapon); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGod {
		s.Dispatch(core.CmdToggleGodMode)
	}

	logger.Debug("simulating", "seed", seed, "weapon", flagWeapon, "ticks", flagTicks)

	frame := core.NewCommandFrame()
	for i := 0; i < flagTicks; i++ {
		e := s.Engine()
		if e.GameOver() {
			break
		}

		frame.Clear()
		autopilot(&frame, e, i)
		s.DispatchFrame(frame)
		s.Tick()
	}

	e := s.Engine()
	snap := e.Snapshot()
	data, err := shooter.MarshalSnapshot(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := simResult{
		Seed:         seed,
		Weapon:       e.ActiveFamily().String(),
		Ticks:        e.Tick(),
		Score:        e.Score(),
		Health:       e.Player().Health,
		GameOver:     e.GameOver(),
		Enemies:      len(e.Enemies()),
		Projectiles:  len(e.Projectiles()),
		SnapshotHash: fmt.Sprintf("%016x", snap.Hash()),
		SnapshotSize: len(data),
	}

	logger.Info("simulation finished", "ticks", res.Ticks, "score", res.Score, "game_over", res.GameOver)

	if !flagDump {
		fmt.Printf("Score: %d  Health: %d  Enemies left: %d  Ticks: %d\n",
			res.Score, res.Health, res.Enemies, res.Ticks)
		return
	}

	out, err := yaml.Marshal(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// autopilot steers under the nearest enemy and fires on a fixed cadence.
func autopilot(f *core.CommandFrame, e *shooter.Engine, tick int) {
	p := e.Player()
	center := p.X + shooter.PlayerWidth/2

	best := -1
	for _, en := range e.Enemies() {
		x := en.X + shooter.EnemyWidth/2
		if best < 0 || core.Abs(x-center) < core.Abs(best-center) {
			best = x
		}
	}

	switch {
	case best < 0:
	case best < center-shooter.PlayerStep:
		f.Push(core.CmdMoveLeft)
	case best > center+shooter.PlayerStep:
		f.Push(core.CmdMoveRight)
	}

	if flagFireEvery > 0 && tick%flagFireEvery == 0 {
		f.Push(core.CmdFire)
	}
}
