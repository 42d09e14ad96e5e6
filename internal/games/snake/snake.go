package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// ParseDirection converts a config value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirRight, fmt.Errorf("snake: unknown direction %q", s)
	}
}

// delta returns the unit step for the direction.
func (d Direction) delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Snake is an ordered chain of segments. Index 0 is the tail, the last
// element is the head. The body is never empty.
type Snake struct {
	body      []core.Coordinate
	direction Direction
}

// NewSnake creates a single-segment snake.
func NewSnake(start core.Coordinate, dir Direction) *Snake {
	return &Snake{
		body:      []core.Coordinate{start},
		direction: dir,
	}
}

// Advance appends a new head one unit away in the current direction.
// The tail is left in place; callers shrink it when nothing was eaten.
func (s *Snake) Advance() {
	dc, dr := s.direction.delta()
	s.body = append(s.body, s.Head().Add(dc, dr))
}

// ShrinkTail removes the oldest segment. A single-segment body is kept.
func (s *Snake) ShrinkTail() {
	if len(s.body) <= 1 {
		return
	}
	s.body = s.body[1:]
}

// HasSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[:len(s.body)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// IsHeadOutOfBounds reports whether the head left the playable interior.
func (s *Snake) IsHeadOutOfBounds(g core.Geometry) bool {
	return g.IsOutOfBounds(s.Head())
}

// SetDirection changes the heading. Reversal onto the body is not prevented.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Head returns the newest segment.
func (s *Snake) Head() core.Coordinate {
	return s.body[len(s.body)-1]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() core.Coordinate {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, tail first.
func (s *Snake) Body() []core.Coordinate {
	out := make([]core.Coordinate, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies checks if any segment is at c.
func (s *Snake) Occupies(c core.Coordinate) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
