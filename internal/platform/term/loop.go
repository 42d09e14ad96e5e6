package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Loop runs one game on a surface at a fixed tick rate.
type Loop struct {
	Game      registry.Game
	Surface   core.Surface
	Input     core.InputSource
	Runtime   core.RuntimeConfig
	Logger    *log.Logger
	AfterStep func(core.StepResult)
}

// Run cold-starts the game and steps it until it reaches Exiting.
// Cancelling ctx is delivered to the game as a Quit command.
func (l *Loop) Run(ctx context.Context) core.GameState {
	interval := l.Runtime.TickInterval
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}

	l.Game.Reset(l.Runtime, l.Surface)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		var cmd core.Command
		select {
		case <-ctx.Done():
			cmd = core.CommandQuit
		case <-ticker.C:
			cmd = l.Input.PollCommand()
		}

		res := l.Game.Step(cmd, l.Surface)
		if l.AfterStep != nil {
			l.AfterStep(res)
		}
		if res.State.Exiting() {
			if l.Logger != nil {
				l.Logger.Debug("loop finished", "game", l.Game.ID(), "score", res.State.Score)
			}
			return res.State
		}
	}
}
