package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrSpawnExhausted is returned when every cell of the spawn region is
// covered by the snake and no fruit can be placed.
var ErrSpawnExhausted = errors.New("snake: no free cell left for fruit")

// Fruit is the single consumable on the board.
type Fruit struct {
	pos         core.Coordinate
	active      bool
	rng         *RNG
	geom        core.Geometry
	maxAttempts int

	// OnPlaced runs after every successful placement.
	OnPlaced func()
}

// NewFruit creates an unplaced fruit. Call Spawn to put it on the board.
func NewFruit(rng *RNG, geom core.Geometry, maxAttempts int) *Fruit {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Fruit{
		rng:         rng,
		geom:        geom,
		maxAttempts: maxAttempts,
	}
}

// Position returns the fruit cell. Only meaningful while Active.
func (f *Fruit) Position() core.Coordinate {
	return f.pos
}

// Active reports whether the fruit is on the board.
func (f *Fruit) Active() bool {
	return f.active
}

// Spawn places the fruit on a random spawn-region cell not covered by the
// snake. Random draws are tried first; once maxAttempts draws have all hit
// the snake, the free cells are enumerated and one is picked uniformly.
func (f *Fruit) Spawn(avoiding *Snake) error {
	for range f.maxAttempts {
		c := f.rng.InteriorCoordinate()
		if !avoiding.Occupies(c) {
			f.place(c)
			return nil
		}
	}

	free := f.freeCells(avoiding)
	if len(free) == 0 {
		f.active = false
		return ErrSpawnExhausted
	}
	f.place(free[f.rng.Intn(len(free))])
	return nil
}

// TryEat checks whether the snake's head is on the fruit. If so the fruit
// is respawned and true is returned; the caller must then skip ShrinkTail.
// A non-nil error means the fruit was eaten but could not be replaced.
func (f *Fruit) TryEat(s *Snake) (bool, error) {
	if !f.active || s.Head() != f.pos {
		return false, nil
	}
	return true, f.Spawn(s)
}

func (f *Fruit) place(c core.Coordinate) {
	f.pos = c
	f.active = true
	if f.OnPlaced != nil {
		f.OnPlaced()
	}
}

// freeCells collects every spawn-region cell the snake does not cover.
func (f *Fruit) freeCells(s *Snake) []core.Coordinate {
	minC, maxC := f.geom.SpawnRegion()
	var free []core.Coordinate
	for row := minC.Row; row <= maxC.Row; row++ {
		for col := minC.Col; col <= maxC.Col; col++ {
			c := core.Coordinate{Col: col, Row: row}
			if !s.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
