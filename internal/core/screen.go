package core

import (
	"strings"
)

// Surface is the render sink the game draws into. Coordinates are cell
// addressed: col is the horizontal position, row the vertical one.
// Implementations own the actual display (Screen buffer, tcell, ...).
type Surface interface {
	// ClearCell blanks a single cell.
	ClearCell(col, row int)
	// DrawGlyph writes one glyph at (col, row).
	DrawGlyph(col, row int, g Glyph)
	// DrawText writes a string horizontally starting at (col, row).
	// Note the row-first argument order.
	DrawText(row, col int, text string)
	// Clear blanks the whole surface.
	Clear()
	// Flush presents everything drawn since the previous Flush.
	Flush()
}

// Cell is one character cell of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer implementing Surface.
// It decouples game rendering from the terminal, allowing the game to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	frames uint64
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// ClearCell blanks one cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) ClearCell(col, row int) {
	s.setCell(col, row, blankCell)
}

// DrawGlyph places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) DrawGlyph(col, row int, g Glyph) {
	s.setCell(col, row, Cell(g))
}

// Set places a rune with the default color.
func (s *Screen) Set(col, row int, r rune) {
	s.setCell(col, row, Cell{Rune: r})
}

func (s *Screen) setCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(col, row int) rune {
	return s.GetCell(col, row).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(col, row int) Cell {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return blankCell
	}
	return s.cells[row][col]
}

// DrawText writes a string horizontally starting at (col, row).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(row, col int, text string) {
	i := 0
	for _, r := range text {
		s.Set(col+i, row, r)
		i++
	}
}

// Flush counts a presented frame. The buffer itself is read by the platform.
func (s *Screen) Flush() {
	s.frames++
}

// Frames returns how many times Flush was called.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// String converts the screen buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Surface = (*Screen)(nil)
