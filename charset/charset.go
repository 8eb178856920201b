// Package charset holds the selectable glyph pools for the rain streams.
// Sets are built once at startup and never mutated afterwards.
package charset

import "github.com/EchoDynamis/rainfall/core"

// Set is an ordered, immutable pool of selectable glyphs
type Set struct {
	name   string
	glyphs []rune
}

// Name returns the set's display name
func (s *Set) Name() string {
	return s.name
}

// Len returns the number of selectable glyphs
func (s *Set) Len() int {
	return len(s.glyphs)
}

// Pick draws one glyph uniformly at random
func (s *Set) Pick(r core.Rand) rune {
	return s.glyphs[r.Intn(len(s.glyphs))]
}

// NewSet builds a set from explicit glyphs. Panics on an empty pool, which
// is a construction bug, not a runtime condition.
func NewSet(name string, glyphs []rune) *Set {
	if len(glyphs) == 0 {
		panic("charset: empty glyph pool for set " + name)
	}
	return &Set{name: name, glyphs: glyphs}
}

// NewRangeSet builds a set from an inclusive Unicode code point range.
// Every scalar value in the range is eligible, including unassigned code
// points; whether the font renders them is not this package's concern.
func NewRangeSet(name string, lo, hi rune) *Set {
	glyphs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		glyphs = append(glyphs, r)
	}
	return NewSet(name, glyphs)
}

// English unions lowercase, uppercase, digits and punctuation
func English() *Set {
	glyphs := make([]rune, 0, 92)
	for r := 'a'; r <= 'z'; r++ {
		glyphs = append(glyphs, r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		glyphs = append(glyphs, r)
	}
	for r := '0'; r <= '9'; r++ {
		glyphs = append(glyphs, r)
	}
	glyphs = append(glyphs, []rune("!@#$%^&*()_+-=[]{}|;:',.<>/?`~")...)
	return NewSet("English", glyphs)
}

// TraditionalChinese covers the common CJK Unified Ideographs block
func TraditionalChinese() *Set {
	return NewRangeSet("Traditional Chinese", 0x4E00, 0x9FA5)
}

// SimplifiedChinese covers the full CJK Unified Ideographs block
func SimplifiedChinese() *Set {
	return NewRangeSet("Simplified Chinese", 0x4E00, 0x9FFF)
}
