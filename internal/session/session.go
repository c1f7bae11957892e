// Package session dispatches input commands to a shooter engine and owns
// the engine's lifecycle across restarts.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

// Session holds the current engine. Renderers read from Engine(); all
// mutation goes through Dispatch and Tick.
type Session struct {
	engine *shooter.Engine
	seed   int64
	round  int
	logger *log.Logger

	overReported bool
}

// New creates a session and its first engine. A nil logger discards output.
func New(seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{seed: seed, logger: logger}
	s.engine = s.newEngine()
	return s
}

// newEngine seeds each round differently so restarts do not replay the
// same swarm fire.
func (s *Session) newEngine() *shooter.Engine {
	return shooter.New(shooter.WithSeed(s.seed + int64(s.round)))
}

// Engine returns the current engine. It changes after Restart.
func (s *Session) Engine() *shooter.Engine {
	return s.engine
}

// Round returns how many times the session has restarted.
func (s *Session) Round() int {
	return s.round
}

// Dispatch applies one command. It returns true for CmdQuit.
func (s *Session) Dispatch(cmd core.Command) bool {
	e := s.engine

	switch cmd {
	case core.CmdMoveLeft:
		e.MovePlayerLeft()
	case core.CmdMoveRight:
		e.MovePlayerRight()
	case core.CmdFire:
		if !e.FirePlayer() {
			s.logger.Debug("shot rejected", "weapon", e.ActiveFamily(), "ammo", e.Ammo(e.ActiveFamily()))
		}
	case core.CmdSelectBasic, core.CmdSelectDouble, core.CmdSelectTargeting, core.CmdSelectLaser:
		if err := s.SelectWeapon(cmd.WeaponID()); err != nil {
			s.logger.Error("weapon change failed", "error", err)
		}
	case core.CmdToggleGodMode:
		e.ToggleGodMode()
		s.logger.Info("god mode", "enabled", e.GodMode())
	case core.CmdToggleDebug:
		e.ToggleDebugMode()
		s.logger.Debug("debug overlay", "enabled", e.DebugMode())
	case core.CmdRestart:
		s.Restart()
	case core.CmdQuit:
		s.logger.Info("quit", "round", s.round, "score", e.Score())
		return true
	}
	return false
}

// DispatchFrame applies the commands of one frame in order and reports
// whether any of them was CmdQuit. Commands after a quit are dropped.
func (s *Session) DispatchFrame(f core.CommandFrame) bool {
	for _, cmd := range f.Commands {
		if s.Dispatch(cmd) {
			return true
		}
	}
	return false
}

// SelectWeapon switches the engine to a registered weapon by id.
func (s *Session) SelectWeapon(id string) error {
	if err := s.engine.SelectWeapon(id); err != nil {
		return err
	}
	s.logger.Debug("weapon selected", "weapon", id)
	return nil
}

// Tick advances the engine one step and logs the end of a round once.
func (s *Session) Tick() {
	s.engine.Update()

	if s.engine.GameOver() && !s.overReported {
		s.overReported = true
		s.logger.Info("game over",
			"round", s.round,
			"score", s.engine.Score(),
			"ticks", s.engine.Tick(),
			"cleared", len(s.engine.Enemies()) == 0,
		)
	}
}

// Restart discards the engine and starts a fresh round.
func (s *Session) Restart() {
	s.round++
	s.overReported = false
	s.engine = s.newEngine()
	s.logger.Info("restart", "round", s.round)
}
