package snake

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ScoringPolicy decides what moves the score counter.
type ScoringPolicy string

const (
	// ScoreOnSpawn counts every fruit placement, including the first one of a
	// round. A fresh round shows 1 and the first eaten fruit makes it 2.
	ScoreOnSpawn ScoringPolicy = "spawn"
	// ScoreOnEat counts eaten fruit only, starting from 0.
	ScoreOnEat ScoringPolicy = "eat"
)

// round holds everything that is rebuilt from scratch on restart.
type round struct {
	snake *Snake
	fruit *Fruit
	score uint32
}

// Game implements the snake state machine.
type Game struct {
	cfg    config.SnakeConfig
	policy ScoringPolicy
	geom   core.Geometry
	rng    *RNG
	tick   uint64
	phase  core.Phase
	round  *round

	startDir   Direction
	snakeGlyph core.Glyph
	fruitGlyph core.Glyph
	endMessage string

	// Cells drawn for the snake on the previous frame
	drawn []core.Coordinate
}

// New creates a snake game that scores every fruit placement.
func New(cfg config.SnakeConfig) *Game {
	return NewWithPolicy(cfg, ScoreOnSpawn)
}

// NewFair creates a snake game that scores one point per eaten fruit.
func NewFair(cfg config.SnakeConfig) *Game {
	return NewWithPolicy(cfg, ScoreOnEat)
}

// NewWithPolicy creates a snake game. The config is expected to be validated.
func NewWithPolicy(cfg config.SnakeConfig, policy ScoringPolicy) *Game {
	dir, err := ParseDirection(cfg.Snake.Direction)
	if err != nil {
		dir = DirRight
	}
	return &Game{
		cfg:      cfg,
		policy:   policy,
		geom:     core.NewGeometry(cfg.Board.Width, cfg.Board.Height),
		startDir: dir,
		snakeGlyph: core.Glyph{
			Rune:  cfg.SnakeRune(),
			Color: core.ParseColor(cfg.Glyphs.SnakeColor),
		},
		fruitGlyph: core.Glyph{
			Rune:  cfg.FruitRune(),
			Color: core.ParseColor(cfg.Glyphs.FruitColor),
		},
	}
}

func init() {
	registry.Register("snake", func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("snake_fair", func(cfg config.SnakeConfig) registry.Game {
		return NewFair(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.policy == ScoreOnEat {
		return "snake_fair"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.policy == ScoreOnEat {
		return "Snake (one point per fruit)"
	}
	return "Snake"
}

// Reset performs a cold start and draws the first frame.
func (g *Game) Reset(cfg core.RuntimeConfig, dst core.Surface) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = NewRNG(seed, g.geom)
	g.tick = 0
	g.restart(dst)
	dst.Flush()
}

// restart discards the current round and builds a new one.
func (g *Game) restart(dst core.Surface) {
	g.phase = core.PhaseRestarting
	dst.Clear()
	g.drawn = g.drawn[:0]
	g.endMessage = ""

	r := &round{
		snake: NewSnake(core.Coordinate{Col: g.cfg.Snake.StartCol, Row: g.cfg.Snake.StartRow}, g.startDir),
		fruit: NewFruit(g.rng, g.geom, g.cfg.Fruit.MaxSpawnAttempts),
	}
	if g.policy == ScoreOnSpawn {
		r.fruit.OnPlaced = func() { r.score++ }
	}
	g.round = r

	g.drawFrame(dst)
	if err := r.fruit.Spawn(r.snake); err != nil {
		// Only possible on a board whose spawn region is covered by the start cell.
		g.end(dst, g.cfg.Messages.BoardFull)
		return
	}
	g.phase = core.PhaseRunning
	g.drawSnake(dst)
	g.drawFruit(dst)
	g.drawScore(dst)
}

// Step advances the game by one tick with the command polled for it.
func (g *Game) Step(cmd core.Command, dst core.Surface) core.StepResult {
	if g.phase == core.PhaseExiting {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Quit wins over every phase-specific handling
	if cmd == core.CommandQuit {
		g.phase = core.PhaseExiting
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	switch g.phase {
	case core.PhaseRunning:
		events = g.stepRunning(cmd, dst)
	case core.PhasePaused:
		if cmd == core.CommandResume {
			g.phase = core.PhaseRunning
		}
	case core.PhaseEnded:
		if cmd == core.CommandRestart {
			g.restart(dst)
			events = append(events, core.EventRestarted)
		} else {
			g.drawEndScreen(dst)
		}
	case core.PhaseRestarting:
		g.restart(dst)
		events = append(events, core.EventRestarted)
	}

	dst.Flush()
	return core.StepResult{State: g.State(), Events: events}
}

// stepRunning moves the snake one cell and resolves eating and collisions.
func (g *Game) stepRunning(cmd core.Command, dst core.Surface) []core.Event {
	r := g.round
	switch cmd {
	case core.CommandPause:
		g.phase = core.PhasePaused
		return nil
	case core.CommandMoveUp:
		r.snake.SetDirection(DirUp)
	case core.CommandMoveDown:
		r.snake.SetDirection(DirDown)
	case core.CommandMoveLeft:
		r.snake.SetDirection(DirLeft)
	case core.CommandMoveRight:
		r.snake.SetDirection(DirRight)
	}

	var events []core.Event
	g.clearSnake(dst)
	r.snake.Advance()

	ate, err := r.fruit.TryEat(r.snake)
	if ate {
		events = append(events, core.EventAte)
		if g.policy == ScoreOnEat {
			r.score++
		}
	} else {
		r.snake.ShrinkTail()
	}

	g.drawSnake(dst)
	g.drawFruit(dst)
	g.drawScore(dst)

	switch {
	case r.snake.HasSelfCollision() || r.snake.IsHeadOutOfBounds(g.geom):
		events = append(events, core.EventCrashed)
		g.end(dst, g.cfg.Messages.GameOver)
	case errors.Is(err, ErrSpawnExhausted):
		events = append(events, core.EventBoardFull)
		g.end(dst, g.cfg.Messages.BoardFull)
	}
	return events
}

// end finishes the round with the given headline.
func (g *Game) end(dst core.Surface, message string) {
	g.phase = core.PhaseEnded
	g.endMessage = message
	g.drawEndScreen(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score uint32
	if g.round != nil {
		score = g.round.score
	}
	return core.GameState{
		Score: score,
		Phase: g.phase,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// --- Rendering ---

// cellX converts a board column to a surface column.
func (g *Game) cellX(col int) int {
	return col * g.cfg.Board.CellWidth
}

// frameRight returns the surface column of the right frame edge.
func (g *Game) frameRight() int {
	return g.cellX(g.geom.Width + 1)
}

// drawFrame draws the border around the playfield.
func (g *Game) drawFrame(dst core.Surface) {
	right := g.frameRight()
	bottom := g.geom.Height + 1

	for x := 1; x < right; x++ {
		dst.DrawGlyph(x, 0, core.Glyph{Rune: '─'})
		dst.DrawGlyph(x, bottom, core.Glyph{Rune: '─'})
	}
	for y := 1; y < bottom; y++ {
		dst.DrawGlyph(0, y, core.Glyph{Rune: '│'})
		dst.DrawGlyph(right, y, core.Glyph{Rune: '│'})
	}
	dst.DrawGlyph(0, 0, core.Glyph{Rune: '┌'})
	dst.DrawGlyph(right, 0, core.Glyph{Rune: '┐'})
	dst.DrawGlyph(0, bottom, core.Glyph{Rune: '└'})
	dst.DrawGlyph(right, bottom, core.Glyph{Rune: '┘'})
}

// clearSnake blanks the cells drawn on the previous frame.
func (g *Game) clearSnake(dst core.Surface) {
	for _, c := range g.drawn {
		dst.ClearCell(g.cellX(c.Col), c.Row)
	}
	g.drawn = g.drawn[:0]
}

// drawSnake draws every in-bounds segment. Segments on the frame are skipped
// so a crash never erases the border.
func (g *Game) drawSnake(dst core.Surface) {
	for _, c := range g.round.snake.body {
		if g.geom.IsOutOfBounds(c) {
			continue
		}
		dst.DrawGlyph(g.cellX(c.Col), c.Row, g.snakeGlyph)
		g.drawn = append(g.drawn, c)
	}
}

func (g *Game) drawFruit(dst core.Surface) {
	f := g.round.fruit
	if !f.Active() {
		return
	}
	p := f.Position()
	dst.DrawGlyph(g.cellX(p.Col), p.Row, g.fruitGlyph)
}

// drawScore writes the score line below the frame.
func (g *Game) drawScore(dst core.Surface) {
	dst.DrawText(g.geom.Height+2, 2, fmt.Sprintf("Score: %-6d", g.round.score))
}

// drawEndScreen writes the end-of-round message centered in the frame.
func (g *Game) drawEndScreen(dst core.Surface) {
	row := (g.geom.Height + 1) / 2
	g.drawCentered(dst, row, g.endMessage)
	g.drawCentered(dst, row+1, g.cfg.Messages.RestartHint)
}

func (g *Game) drawCentered(dst core.Surface, row int, text string) {
	width := g.frameRight() + 1
	col := (width - utf8.RuneCountInString(text)) / 2
	if col < 1 {
		col = 1
	}
	dst.DrawText(row, col, text)
}
