// Package engine drives the application: it owns the columns, the config
// and the mode state machine, and runs the single sequential poll/update/
// render loop.
package engine

import (
	"fmt"
	"time"

	"github.com/EchoDynamis/rainfall/audio"
	"github.com/EchoDynamis/rainfall/charset"
	"github.com/EchoDynamis/rainfall/core"
	"github.com/EchoDynamis/rainfall/input"
	"github.com/EchoDynamis/rainfall/rain"
	"github.com/EchoDynamis/rainfall/render"
	"github.com/EchoDynamis/rainfall/terminal"
)

// Screen is the full terminal capability the engine needs: the paint
// surface plus the two key-read primitives.
type Screen interface {
	render.Surface
	PollKey(timeout time.Duration) (terminal.Key, bool, error)
	WaitKey() (terminal.Key, error)
}

// Options configures an Engine. Registry, Bindings and Rand are required;
// Sound may be nil for a silent run.
type Options struct {
	Registry      *charset.Registry
	Bindings      input.Bindings
	Rand          core.Rand
	PauseKeyLabel string // how the pause key reads in the paused status line
	Sound         *audio.Player
}

// Engine is the application controller. Not safe for concurrent use;
// everything happens on the caller's goroutine.
type Engine struct {
	screen   Screen
	registry *charset.Registry
	bindings input.Bindings
	rng      core.Rand
	sound    *audio.Player

	cfg        core.Config
	mode       core.AppMode
	columns    []*rain.Column
	pauseLabel string
}

// New sizes the column array to the terminal: one column per two screen
// columns, each as tall as the screen. The size is read once; resizing
// mid-run is not supported.
func New(screen Screen, opts Options) (*Engine, error) {
	width, height := screen.Size()
	if height < rain.MinHeight || width < 2 {
		return nil, fmt.Errorf("terminal too small: %dx%d, need at least 2x%d", width, height, rain.MinHeight)
	}

	columns := make([]*rain.Column, width/2)
	for x := range columns {
		columns[x] = rain.NewColumn(x, height, opts.Rand)
	}

	return &Engine{
		screen:     screen,
		registry:   opts.Registry,
		bindings:   opts.Bindings,
		rng:        opts.Rand,
		sound:      opts.Sound,
		cfg:        core.DefaultConfig(),
		mode:       core.ModeMatrix,
		columns:    columns,
		pauseLabel: opts.PauseKeyLabel,
	}, nil
}

// Mode returns the current application mode
func (e *Engine) Mode() core.AppMode {
	return e.mode
}

// Config returns the current configuration
func (e *Engine) Config() core.Config {
	return e.cfg
}

// Run loops until the quit key or a terminal failure. A nil return is a
// normal quit.
func (e *Engine) Run() error {
	for {
		var done bool
		var err error
		switch e.mode {
		case core.ModeMatrix:
			done, err = e.stepMatrix()
		case core.ModePaused:
			done, err = e.stepPaused()
		case core.ModeConfig:
			done, err = e.stepConfig()
		}
		if done || err != nil {
			return err
		}
	}
}

// stepMatrix polls with the tick timeout. A timeout is exactly one
// animation tick; any key press, handled or not, consumes the cycle
// without ticking, so the animation clock never runs while keys stream in.
func (e *Engine) stepMatrix() (bool, error) {
	key, ok, err := e.screen.PollKey(core.SpeedDuration(e.cfg.SpeedLevel))
	if err != nil {
		return false, err
	}
	if ok {
		switch input.Resolve(e.bindings.Matrix, key) {
		case input.ActionQuit:
			return true, nil
		case input.ActionPauseToggle:
			// leave the current frame on screen untouched
			e.mode = core.ModePaused
			e.sound.Play(audio.CuePause)
		case input.ActionConfigToggle:
			e.mode = core.ModeConfig
			e.sound.Play(audio.CueMenu)
		}
		return false, nil
	}

	e.tick()
	return false, nil
}

// tick advances and repaints every column
func (e *Engine) tick() {
	scheme := e.cfg.Scheme()
	set := e.registry.Set(e.cfg.CharSetIndex)

	e.screen.Clear()
	for _, col := range e.columns {
		col.Update(scheme, set)
		render.DrawColumn(e.screen, col)
	}
	e.screen.Show()
}

// stepPaused overlays the status line on the frozen frame and blocks for
// the next key
func (e *Engine) stepPaused() (bool, error) {
	render.Print(e.screen, 0, 0, render.PauseStatus(e.pauseLabel), core.RGBWhite)
	e.screen.Show()

	key, err := e.screen.WaitKey()
	if err != nil {
		return false, err
	}
	switch input.Resolve(e.bindings.Paused, key) {
	case input.ActionQuit:
		return true, nil
	case input.ActionPauseToggle:
		e.mode = core.ModeMatrix
		e.sound.Play(audio.CuePause)
	}
	return false, nil
}

// stepConfig redraws the menu from current config and blocks for the next
// key. Unbound keys re-render the menu unchanged.
func (e *Engine) stepConfig() (bool, error) {
	charSetName := ""
	if e.registry.Len() > 1 {
		charSetName = e.registry.Set(e.cfg.CharSetIndex).Name()
	}
	e.screen.Clear()
	render.Print(e.screen, 0, 0, render.MenuText(e.cfg, charSetName), core.RGBWhite)
	e.screen.Show()

	key, err := e.screen.WaitKey()
	if err != nil {
		return false, err
	}
	switch input.Resolve(e.bindings.Config, key) {
	case input.ActionConfigClose:
		e.mode = core.ModeMatrix
		e.sound.Play(audio.CueMenu)
	case input.ActionSpeedUp:
		e.cfg.SpeedUp()
		e.sound.Play(audio.CueAdjust)
	case input.ActionSpeedDown:
		e.cfg.SpeedDown()
		e.sound.Play(audio.CueAdjust)
	case input.ActionThemeNext:
		e.cfg.NextTheme()
		e.sound.Play(audio.CueAdjust)
	case input.ActionThemePrev:
		e.cfg.PrevTheme()
		e.sound.Play(audio.CueAdjust)
	case input.ActionCharSetNext:
		e.cfg.NextCharSet(e.registry.Len())
		e.sound.Play(audio.CueAdjust)
	case input.ActionCharSetPrev:
		e.cfg.PrevCharSet(e.registry.Len())
		e.sound.Play(audio.CueAdjust)
	}
	return false, nil
}
