package term

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options carries the optional collaborators of a session.
type Options struct {
	Player string
	Seed   int64
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
}

// Play runs the game on a fresh tcell screen until the player quits or ctx
// is cancelled. It returns the final game state.
func Play(ctx context.Context, game registry.Game, cfg config.SnakeConfig, opts Options) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	w, h := cfg.ScreenSize()
	sw, sh := screen.Size()
	if sw < w || sh < h {
		return core.GameState{}, fmt.Errorf("term: terminal is %dx%d, need at least %dx%d", sw, sh, w, h)
	}

	surface := NewSurface(screen, (sw-w)/2, (sh-h)/2)
	input := NewInput(screen, screen.Sync)

	return run(ctx, game, cfg, surface, input, opts), nil
}

// run wires the session bookkeeping around a Loop.
func run(ctx context.Context, game registry.Game, cfg config.SnakeConfig, surface core.Surface, input core.InputSource, opts Options) core.GameState {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rec := newRecorder(game.ID(), cfg, opts, logger)

	loop := &Loop{
		Game:    game,
		Surface: surface,
		Input:   input,
		Runtime: core.RuntimeConfig{
			TickInterval: cfg.TickInterval(),
			Seed:         opts.Seed,
		},
		Logger: logger,
		AfterStep: func(res core.StepResult) {
			if opts.Sound != nil {
				opts.Sound.Handle(res.Events)
			}
			rec.observe(res, surface)
		},
	}
	return loop.Run(ctx)
}

// recorder saves finished rounds and keeps the session best on the HUD.
type recorder struct {
	gameID string
	player string
	row    int
	store  *storage.Store
	logger *log.Logger
	best   int
}

func newRecorder(gameID string, cfg config.SnakeConfig, opts Options, logger *log.Logger) *recorder {
	player := opts.Player
	if player == "" {
		player = storage.DefaultPlayer
	}
	r := &recorder{
		gameID: gameID,
		player: player,
		row:    cfg.Board.Height + 3,
		store:  opts.Store,
		logger: logger,
	}
	if r.store != nil {
		if best, err := r.store.HighScore(gameID); err == nil {
			r.best = best
		}
	}
	return r
}

func (r *recorder) observe(res core.StepResult, dst core.Surface) {
	for _, ev := range res.Events {
		if ev != core.EventCrashed && ev != core.EventBoardFull {
			continue
		}
		score := int(res.State.Score)
		r.logger.Info("round ended", "game", r.gameID, "player", r.player, "score", score, "reason", ev)
		if r.store == nil {
			continue
		}
		if _, err := r.store.SaveScore(r.gameID, r.player, score, ev.String()); err != nil {
			r.logger.Warn("could not record score", "error", err)
			continue
		}
		if best, err := r.store.HighScore(r.gameID); err == nil {
			r.best = best
		}
	}

	// Presented by the next step's flush
	if r.store != nil && !res.State.Exiting() {
		dst.DrawText(r.row, 2, fmt.Sprintf("Best:  %-6d", r.best))
	}
}
