// Package term drives the game directly on a tcell screen, without Bubble
// Tea. It is the lower-latency backend used by `snake play --backend tcell`.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWriter is the part of tcell.Screen the surface needs.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Surface implements core.Surface on a tcell screen. All coordinates are
// shifted by a fixed offset so the board can be centered.
type Surface struct {
	w    cellWriter
	offX int
	offY int
}

// NewSurface creates a surface drawing at the given offset of w.
func NewSurface(w cellWriter, offX, offY int) *Surface {
	return &Surface{w: w, offX: offX, offY: offY}
}

// ClearCell blanks one cell.
func (s *Surface) ClearCell(col, row int) {
	s.w.SetContent(col+s.offX, row+s.offY, ' ', nil, tcell.StyleDefault)
}

// DrawGlyph writes one glyph in its color.
func (s *Surface) DrawGlyph(col, row int, g core.Glyph) {
	style, ok := colorStyles[g.Color]
	if !ok {
		style = tcell.StyleDefault
	}
	s.w.SetContent(col+s.offX, row+s.offY, g.Rune, nil, style)
}

// DrawText writes text starting at (col, row), one rune per cell.
func (s *Surface) DrawText(row, col int, text string) {
	i := 0
	for _, r := range text {
		s.w.SetContent(col+i+s.offX, row+s.offY, r, nil, tcell.StyleDefault)
		i++
	}
}

// Clear blanks the whole screen.
func (s *Surface) Clear() {
	s.w.Clear()
}

// Flush shows everything drawn since the previous Flush.
func (s *Surface) Flush() {
	s.w.Show()
}

var _ core.Surface = (*Surface)(nil)
