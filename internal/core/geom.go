// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to
// keep game logic pure and testable.
package core

import "fmt"

// Coordinate is a cell position on the playfield (column, row).
type Coordinate struct {
	Col, Row int
}

// String returns the coordinate as "(col,row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns the coordinate shifted by (dc, dr).
func (c Coordinate) Add(dc, dr int) Coordinate {
	return Coordinate{Col: c.Col + dc, Row: c.Row + dr}
}

// Geometry describes the playfield. The playable interior is
// columns [1, Width] and rows [1, Height]; column/row 0 and Width+1/Height+1
// belong to the frame.
type Geometry struct {
	Width  int
	Height int
}

// NewGeometry creates a playfield of the given interior size.
func NewGeometry(width, height int) Geometry {
	return Geometry{Width: width, Height: height}
}

// IsOutOfBounds returns true if c lies outside the playable interior.
func (g Geometry) IsOutOfBounds(c Coordinate) bool {
	return c.Col < 1 || c.Col > g.Width || c.Row < 1 || c.Row > g.Height
}

// Contains is the inverse of IsOutOfBounds.
func (g Geometry) Contains(c Coordinate) bool {
	return !g.IsOutOfBounds(c)
}

// SpawnRegion returns the inclusive bounds fruit may be placed in:
// [1, Width-2] x [1, Height-2]. It never touches the frame.
func (g Geometry) SpawnRegion() (minC, maxC Coordinate) {
	return Coordinate{Col: 1, Row: 1}, Coordinate{Col: g.Width - 2, Row: g.Height - 2}
}

// SpawnCells returns the number of cells in the spawn region.
func (g Geometry) SpawnCells() int {
	w, h := g.Width-2, g.Height-2
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
