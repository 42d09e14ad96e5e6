package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RNG draws fruit positions from a seeded source.
type RNG struct {
	rng  *rand.Rand
	geom core.Geometry
}

// NewRNG creates an RNG for the given playfield.
func NewRNG(seed int64, geom core.Geometry) *RNG {
	return &RNG{
		rng:  rand.New(rand.NewSource(seed)),
		geom: geom,
	}
}

// InteriorCoordinate returns a coordinate uniformly distributed over the
// spawn region [1, W-2] x [1, H-2]. It never lands on the frame.
func (r *RNG) InteriorCoordinate() core.Coordinate {
	minC, maxC := r.geom.SpawnRegion()
	return core.Coordinate{
		Col: minC.Col + r.rng.Intn(maxC.Col-minC.Col+1),
		Row: minC.Row + r.rng.Intn(maxC.Row-minC.Row+1),
	}
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rng.Intn(n)
}
