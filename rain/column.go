// Package rain implements the per-column animation state machine: head
// advancement, trailing fade, lifetime decay and reset once a stream has
// fully scrolled past the bottom of the screen.
package rain

import "github.com/EchoDynamis/rainfall/core"

// Stream length and per-column speed ranges, re-rolled on every reset
const (
	minStreamLength = 5
	minSpeedDivisor = 1
	maxSpeedDivisor = 4

	// brightBand is how many rows behind the head keep the trail color
	// before dropping to the fade color
	brightBand = 3
)

// MinHeight is the shortest terminal the simulation supports: below it the
// stream length range [minStreamLength, height/2] collapses. Enforced at
// startup instead of special-casing short columns.
const MinHeight = 2 * minStreamLength

// Blank marks an empty cell
const Blank = ' '

// GlyphSource supplies the next head character. *charset.Set satisfies it.
type GlyphSource interface {
	Pick(r core.Rand) rune
}

// Cell is one character slot in a column. Lifetime counts down once per
// head advance; a cell is visible while Lifetime > 0 and blank at 0.
type Cell struct {
	Glyph    rune
	Color    core.RGB
	Lifetime int
}

// Column owns one vertical stream. Created once per screen column and
// reused for the whole run; Reset re-rolls the randomized fields when the
// stream has fully exited the screen.
type Column struct {
	X     int // screen column index, painted at X*2
	Cells []Cell

	// Head is the row of the newest character. Starts at -1 so the first
	// glyph appears one advance after creation or reset.
	Head    int
	Length  int // lit rows trailing the head
	Divisor int // head advances once every Divisor ticks
	ticks   int // ticks since the last head advance

	rng core.Rand
}

// NewColumn creates a column for screen column x with one cell per row.
// height must be at least 2*minStreamLength so the stream length range
// [minStreamLength, height/2] stays valid; the controller enforces that
// at startup.
func NewColumn(x, height int, rng core.Rand) *Column {
	c := &Column{
		X:     x,
		Cells: make([]Cell, height),
		rng:   rng,
	}
	for i := range c.Cells {
		c.Cells[i].Glyph = Blank
	}
	c.Reset()
	return c
}

// Reset re-randomizes the stream without touching cell contents: the tail
// of the previous stream keeps decaying while the new head falls in above.
func (c *Column) Reset() {
	c.Head = -1
	c.Length = c.rng.Intn(len(c.Cells)/2-minStreamLength+1) + minStreamLength
	c.Divisor = c.rng.Intn(maxSpeedDivisor-minSpeedDivisor+1) + minSpeedDivisor
	c.ticks = 0
}

// Update advances the column by one logical tick. Called exactly once per
// controller tick for every column.
func (c *Column) Update(scheme core.ColorScheme, glyphs GlyphSource) {
	c.ticks++
	if c.ticks < c.Divisor {
		// per-column throttle: nothing changes this tick
		return
	}
	c.ticks = 0

	c.Head++

	for i := range c.Cells {
		if c.Cells[i].Lifetime > 0 {
			c.Cells[i].Lifetime--
			if c.Cells[i].Lifetime == 0 {
				c.Cells[i].Glyph = Blank
			}
		}
	}

	// Recolor the whole column: the near-head band stays bright, the rest
	// of the lit cells fade. Blank cells pick up stale colors too, which is
	// harmless since the renderer skips them.
	for i := range c.Cells {
		if c.Cells[i].Lifetime > c.Length-brightBand {
			c.Cells[i].Color = scheme.Trail
		} else {
			c.Cells[i].Color = scheme.Fade
		}
	}

	if c.Head >= 0 && c.Head < len(c.Cells) {
		c.Cells[c.Head] = Cell{
			Glyph:    glyphs.Pick(c.rng),
			Color:    scheme.Head,
			Lifetime: c.Length,
		}
	}

	// Fully scrolled past the bottom, fading tail included
	if c.Head >= len(c.Cells)+c.Length {
		c.Reset()
	}
}
