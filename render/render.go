// Package render projects column state and menu text onto the terminal
// surface. It holds no state of its own.
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/EchoDynamis/rainfall/core"
	"github.com/EchoDynamis/rainfall/rain"
)

// Surface is the paint side of the terminal capability. *terminal.Terminal
// satisfies it; tests substitute an in-memory grid.
type Surface interface {
	Size() (width, height int)
	Clear()
	SetCell(x, y int, glyph rune, color core.RGB)
	Show()
}

// DrawColumn paints every lit cell of the column at (X*2, row). Blank
// cells are skipped: the controller clears the screen before each frame,
// so skipping leaves them empty rather than stale.
func DrawColumn(s Surface, c *rain.Column) {
	for y := range c.Cells {
		if c.Cells[y].Lifetime > 0 {
			s.SetCell(c.X*2, y, c.Cells[y].Glyph, c.Cells[y].Color)
		}
	}
}

// Print paints text starting at (x, y) in a single color. Newlines move to
// the next row at the starting column; wide glyphs advance two cells so
// mixed-width text stays aligned.
func Print(s Surface, x, y int, text string, color core.RGB) {
	col := x
	for _, r := range text {
		if r == '\n' {
			col = x
			y++
			continue
		}
		s.SetCell(col, y, r, color)
		col += runewidth.RuneWidth(r)
	}
}
