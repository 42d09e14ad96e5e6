package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, cfg config.SnakeConfig, policy ScoringPolicy) (*Game, *core.Screen) {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	g := NewWithPolicy(cfg, policy)
	w, h := cfg.ScreenSize()
	screen := core.NewScreen(w, h)
	g.Reset(core.RuntimeConfig{Seed: 42}, screen)
	return g, screen
}

// placeFruit moves the fruit without touching the score.
func placeFruit(g *Game, c core.Coordinate) {
	g.round.fruit.pos = c
	g.round.fruit.active = true
}

func TestResetColdStart(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	snap := g.Snapshot()

	if snap.Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
	if snap.Head != (core.Coordinate{Col: 7, Row: 7}) || snap.SnakeLen != 1 {
		t.Errorf("Snake = %v len %d, expected (7,7) len 1", snap.Head, snap.SnakeLen)
	}
	if snap.Dir != DirRight {
		t.Errorf("Dir = %v, expected right", snap.Dir)
	}
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1 after the initial placement", snap.Score)
	}
	if !snap.FruitActive || snap.Fruit == snap.Head {
		t.Errorf("Fruit = %v (active %v), expected an active fruit off the snake", snap.Fruit, snap.FruitActive)
	}
	if screen.Frames() != 1 {
		t.Errorf("Reset should present one frame, got %d", screen.Frames())
	}

	if screen.Get(0, 0) != '┌' || screen.Get(34, 17) != '┘' {
		t.Error("Frame corners not drawn")
	}
	if screen.Get(14, 7) != 'o' {
		t.Errorf("Snake glyph missing at (14,7), got %q", screen.Get(14, 7))
	}
	if screen.Get(snap.Fruit.Col*2, snap.Fruit.Row) != 'x' {
		t.Errorf("Fruit glyph missing at %v", snap.Fruit)
	}
	if !strings.HasPrefix(strings.TrimLeft(screen.Row(18), " "), "Score: 1") {
		t.Errorf("Score row = %q", screen.Row(18))
	}
}

func TestEatOnce(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 8, Row: 7})

	res := g.Step(core.CommandNone, core.NewScreen(35, 20))

	if !res.Has(core.EventAte) {
		t.Fatal("Expected an EventAte")
	}
	body := g.round.snake.Body()
	want := []core.Coordinate{{Col: 7, Row: 7}, {Col: 8, Row: 7}}
	if len(body) != 2 || body[0] != want[0] || body[1] != want[1] {
		t.Errorf("Body = %v, expected %v", body, want)
	}
	if res.State.Score != 2 {
		t.Errorf("Score = %d, expected 2", res.State.Score)
	}
	f := g.round.fruit.Position()
	if g.round.snake.Occupies(f) {
		t.Errorf("New fruit %v lies on the snake", f)
	}
	if f.Col < 1 || f.Col > 14 || f.Row < 1 || f.Row > 14 {
		t.Errorf("New fruit %v outside the spawn region", f)
	}
}

func TestFairScoring(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnEat)
	if g.State().Score != 0 {
		t.Fatalf("Score = %d, expected 0 on a fresh fair round", g.State().Score)
	}
	if g.ID() != "snake_fair" {
		t.Errorf("ID() = %q", g.ID())
	}

	placeFruit(g, core.Coordinate{Col: 8, Row: 7})
	res := g.Step(core.CommandNone, screen)
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1 after one fruit", res.State.Score)
	}
}

func TestMovementWithoutEating(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 1, Row: 14})

	g.Step(core.CommandNone, screen)

	if g.round.snake.Len() != 1 || g.round.snake.Head() != (core.Coordinate{Col: 8, Row: 7}) {
		t.Errorf("Snake = %v, expected [(8,7)]", g.round.snake.Body())
	}
	if screen.Get(14, 7) != ' ' {
		t.Errorf("Old head cell should be blanked, got %q", screen.Get(14, 7))
	}
	if screen.Get(16, 7) != 'o' {
		t.Errorf("New head cell should be drawn, got %q", screen.Get(16, 7))
	}
}

func TestQuitFromPaused(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)

	g.Step(core.CommandPause, screen)
	if g.Phase() != core.PhasePaused {
		t.Fatalf("Phase = %v, expected paused", g.Phase())
	}

	res := g.Step(core.CommandQuit, screen)
	if res.State.Phase != core.PhaseExiting || !res.State.Exiting() {
		t.Errorf("Phase = %v, expected exiting", res.State.Phase)
	}

	// Terminal: nothing moves any more
	before := g.Snapshot()
	g.Step(core.CommandRestart, screen)
	if g.Snapshot() != before {
		t.Error("Step after exiting should be a no-op")
	}
}

func TestQuitFromEveryPhase(t *testing.T) {
	setups := map[string]func(g *Game, s *core.Screen){
		"running": func(g *Game, s *core.Screen) {},
		"paused":  func(g *Game, s *core.Screen) { g.Step(core.CommandPause, s) },
		"ended": func(g *Game, s *core.Screen) {
			g.round.snake.body = []core.Coordinate{{Col: 16, Row: 3}}
			placeFruit(g, core.Coordinate{Col: 1, Row: 1})
			g.Step(core.CommandNone, s)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
			setup(g, screen)
			g.Step(core.CommandQuit, screen)
			if g.Phase() != core.PhaseExiting {
				t.Errorf("Phase = %v, expected exiting", g.Phase())
			}
		})
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	g.round.snake.body = []core.Coordinate{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 3, Row: 1}}
	g.round.snake.direction = DirLeft
	placeFruit(g, core.Coordinate{Col: 10, Row: 10})

	res := g.Step(core.CommandNone, screen)

	if res.State.Phase != core.PhaseEnded {
		t.Fatalf("Phase = %v, expected ended", res.State.Phase)
	}
	if !res.Has(core.EventCrashed) {
		t.Error("Expected an EventCrashed")
	}
	if !strings.Contains(screen.String(), "YOU DIED") {
		t.Error("End message not drawn")
	}
	if !strings.Contains(screen.String(), "Press (r) to restart") {
		t.Error("Restart hint not drawn")
	}
}

func TestBoundaryCollision(t *testing.T) {
	tests := []struct {
		name  string
		start core.Coordinate
		dir   Direction
	}{
		{"right", core.Coordinate{Col: 16, Row: 5}, DirRight},
		{"left", core.Coordinate{Col: 1, Row: 5}, DirLeft},
		{"top", core.Coordinate{Col: 5, Row: 1}, DirUp},
		{"bottom", core.Coordinate{Col: 5, Row: 16}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
			g.round.snake.body = []core.Coordinate{tc.start}
			g.round.snake.direction = tc.dir
			placeFruit(g, core.Coordinate{Col: 10, Row: 10})

			res := g.Step(core.CommandNone, screen)
			if res.State.Phase != core.PhaseEnded || !res.Has(core.EventCrashed) {
				t.Errorf("Phase = %v events %v, expected ended with a crash", res.State.Phase, res.Events)
			}
			// The frame must survive the crash
			if screen.Get(0, 0) != '┌' || screen.Get(34, 0) != '┐' {
				t.Error("Frame damaged by crash")
			}
		})
	}
}

func TestRunIntoWallFromStart(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 1, Row: 1})

	// From (7,7) heading right the head leaves the board on the tenth move
	for i := 1; i <= 9; i++ {
		g.Step(core.CommandNone, screen)
		if g.Phase() != core.PhaseRunning {
			t.Fatalf("Round ended early at move %d", i)
		}
	}
	g.Step(core.CommandNone, screen)
	if g.Phase() != core.PhaseEnded {
		t.Errorf("Phase = %v, expected ended after leaving the board", g.Phase())
	}
}

func TestPauseResume(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 1, Row: 14})

	g.Step(core.CommandPause, screen)
	head := g.round.snake.Head()
	frame := screen.String()

	for _, cmd := range []core.Command{core.CommandNone, core.CommandMoveDown, core.CommandRestart, core.CommandPause} {
		g.Step(cmd, screen)
		if g.Phase() != core.PhasePaused {
			t.Fatalf("%v should not leave pause, phase = %v", cmd, g.Phase())
		}
	}
	if g.round.snake.Head() != head {
		t.Error("Snake moved while paused")
	}
	if g.round.snake.Direction() != DirRight {
		t.Error("Direction changed while paused")
	}
	if screen.String() != frame {
		t.Error("Screen changed while paused")
	}

	g.Step(core.CommandResume, screen)
	if g.Phase() != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected running after resume", g.Phase())
	}
	g.Step(core.CommandNone, screen)
	if g.round.snake.Head() == head {
		t.Error("Snake should move again after resume")
	}
}

func TestResumeIgnoredWhileRunning(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 1, Row: 14})

	g.Step(core.CommandResume, screen)
	if g.Phase() != core.PhaseRunning || g.round.snake.Head() != (core.Coordinate{Col: 8, Row: 7}) {
		t.Errorf("Resume while running should act as no input, got %s", g.DebugState())
	}
}

func TestRestartIdempotence(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	for _, policy := range []ScoringPolicy{ScoreOnSpawn, ScoreOnEat} {
		t.Run(string(policy), func(t *testing.T) {
			g, screen := newTestGame(t, cfg, policy)
			cold := g.Snapshot()

			// Grow a little, then crash
			placeFruit(g, core.Coordinate{Col: 8, Row: 7})
			g.Step(core.CommandNone, screen)
			g.round.snake.body = []core.Coordinate{{Col: 16, Row: 2}}
			placeFruit(g, core.Coordinate{Col: 1, Row: 1})
			g.Step(core.CommandNone, screen)
			if g.Phase() != core.PhaseEnded {
				t.Fatalf("Phase = %v, expected ended", g.Phase())
			}

			// Any non-restart command keeps the end screen up
			g.Step(core.CommandMoveUp, screen)
			if g.Phase() != core.PhaseEnded {
				t.Fatalf("Phase = %v, expected to stay ended", g.Phase())
			}

			res := g.Step(core.CommandRestart, screen)
			if !res.Has(core.EventRestarted) {
				t.Error("Expected an EventRestarted")
			}
			warm := g.Snapshot()
			if warm.Phase != core.PhaseRunning {
				t.Errorf("Phase = %v, expected running", warm.Phase)
			}
			if warm.Head != cold.Head || warm.SnakeLen != cold.SnakeLen || warm.Dir != cold.Dir {
				t.Errorf("Restarted snake %v len %d %v, expected %v len %d %v",
					warm.Head, warm.SnakeLen, warm.Dir, cold.Head, cold.SnakeLen, cold.Dir)
			}
			if warm.Score != cold.Score {
				t.Errorf("Score = %d, expected %d", warm.Score, cold.Score)
			}
			if !warm.FruitActive || warm.Fruit == warm.Head {
				t.Errorf("Fruit = %v, expected an active fruit off the snake", warm.Fruit)
			}
			if strings.Contains(screen.String(), "YOU DIED") {
				t.Error("End screen should be cleared on restart")
			}
		})
	}
}

func TestBoardFull(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 3
	cfg.Board.Height = 3
	cfg.Snake.StartCol = 2
	cfg.Snake.StartRow = 2
	g, screen := newTestGame(t, cfg, ScoreOnSpawn)

	// The spawn region of a 3x3 board is the single cell (1,1)
	if g.round.fruit.Position() != (core.Coordinate{Col: 1, Row: 1}) {
		t.Fatalf("Fruit = %v, expected (1,1)", g.round.fruit.Position())
	}

	g.Step(core.CommandMoveLeft, screen)
	res := g.Step(core.CommandMoveUp, screen)

	if !res.Has(core.EventAte) || !res.Has(core.EventBoardFull) {
		t.Errorf("Events = %v, expected ate and board-full", res.Events)
	}
	if res.State.Phase != core.PhaseEnded {
		t.Errorf("Phase = %v, expected ended", res.State.Phase)
	}
	snap := g.Snapshot()
	if snap.FruitActive {
		t.Error("Fruit should be inactive after exhaustion")
	}
	if snap.EndMessage != "BOARD FULL" {
		t.Errorf("EndMessage = %q", snap.EndMessage)
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	g1, s1 := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	g2, s2 := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)

	g1.Step(core.Command(42), s1)
	g2.Step(core.CommandNone, s2)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Unknown command should act as no input:\n%s\nvs\n%s", g1.DebugState(), g2.DebugState())
	}
}

func TestOneFlushPerStep(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	placeFruit(g, core.Coordinate{Col: 1, Row: 14})

	cmds := []core.Command{core.CommandNone, core.CommandPause, core.CommandNone, core.CommandResume, core.CommandMoveDown}
	for i, cmd := range cmds {
		g.Step(cmd, screen)
		if want := uint64(i + 2); screen.Frames() != want {
			t.Fatalf("After %d steps Frames() = %d, expected %d", i+1, screen.Frames(), want)
		}
	}
}

// scriptedCommand produces a fixed pseudo-random command stream.
func scriptedCommand(i int) core.Command {
	cmds := []core.Command{
		core.CommandNone, core.CommandNone, core.CommandMoveUp, core.CommandNone,
		core.CommandMoveLeft, core.CommandNone, core.CommandMoveDown, core.CommandNone,
		core.CommandMoveRight, core.CommandNone, core.CommandNone,
	}
	return cmds[(i*7+i/5)%len(cmds)]
}

func TestLongRunProperties(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultSnakeConfig(), ScoreOnSpawn)
	geom := core.NewGeometry(16, 16)

	for i := range 3000 {
		before := g.Phase()
		prevLen := g.round.snake.Len()

		cmd := scriptedCommand(i)
		if before == core.PhaseEnded {
			cmd = core.CommandRestart
		}
		res := g.Step(cmd, screen)

		if before != core.PhaseRunning {
			continue
		}

		// Growth
		wantLen := prevLen
		if res.Has(core.EventAte) {
			wantLen++
		}
		if g.round.snake.Len() != wantLen {
			t.Fatalf("tick %d: len = %d, expected %d", i, g.round.snake.Len(), wantLen)
		}

		if g.Phase() != core.PhaseRunning {
			continue
		}

		// Boundary
		if head := g.round.snake.Head(); geom.IsOutOfBounds(head) {
			t.Fatalf("tick %d: running with head %v out of bounds", i, head)
		}
		// Fruit exclusion
		if f := g.round.fruit; f.Active() && g.round.snake.Occupies(f.Position()) {
			t.Fatalf("tick %d: fruit %v on snake", i, f.Position())
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := config.DefaultSnakeConfig()
	g1, s1 := newTestGame(t, cfg, ScoreOnSpawn)
	g2, s2 := newTestGame(t, cfg, ScoreOnSpawn)

	for i := range 500 {
		cmd := scriptedCommand(i)
		if g1.Phase() == core.PhaseEnded {
			cmd = core.CommandRestart
		}
		g1.Step(cmd, s1)
		g2.Step(cmd, s2)

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("tick %d: snapshots diverged:\n%s\nvs\n%s", i, g1.DebugState(), g2.DebugState())
		}
	}
	if s1.String() != s2.String() {
		t.Error("Screens diverged")
	}
}
