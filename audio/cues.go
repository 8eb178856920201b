// Package audio plays short tone cues for mode and config changes. Audio
// is optional: if the speaker cannot be opened the player stays silent and
// the rest of the program is unaffected.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one of the tone cues
type Cue uint8

const (
	CuePause Cue = iota
	CueMenu
	CueAdjust
)

// cueFreqs gives each cue a distinct pitch
var cueFreqs = [...]float64{
	CuePause:  440,
	CueMenu:   660,
	CueAdjust: 880,
}

// Player owns the speaker. The zero value and a failed Init both behave as
// a silent player.
type Player struct {
	initialized bool
}

// NewPlayer returns an uninitialized, silent player
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker. Failure leaves the player silent; callers treat
// the error as informational.
func (p *Player) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play fires a 50ms sine blip for the cue. No-op on a silent player or an
// unknown cue.
func (p *Player) Play(c Cue) {
	if p == nil || !p.initialized || int(c) >= len(cueFreqs) {
		return
	}
	sine, err := generators.SineTone(sampleRate, cueFreqs[c])
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}
