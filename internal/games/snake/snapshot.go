package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	Score       uint32
	SnakeLen    int
	Head        core.Coordinate
	Dir         Direction
	Fruit       core.Coordinate
	FruitActive bool
	EndMessage  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		EndMessage: g.endMessage,
	}
	if g.round == nil {
		return snap
	}
	snap.Score = g.round.score
	snap.SnakeLen = g.round.snake.Len()
	snap.Head = g.round.snake.Head()
	snap.Dir = g.round.snake.Direction()
	snap.Fruit = g.round.fruit.Position()
	snap.FruitActive = g.round.fruit.Active()
	return snap
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d\n", s.Tick, s.Phase, s.Score)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.SnakeLen, s.Dir)
	fmt.Fprintf(&b, "Head: %s, Fruit: %s (active: %v)\n", s.Head, s.Fruit, s.FruitActive)
	return b.String()
}
