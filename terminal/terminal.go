// Package terminal is the capability layer between the animation core and
// the tty: alternate screen and raw mode lifecycle, size query, key events
// with and without timeout, and colored cell painting. Everything rides on
// tcell; nothing above this package imports it.
package terminal

import (
	"errors"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/EchoDynamis/rainfall/core"
)

// ErrClosed reports that the terminal event stream ended underneath the
// application, e.g. the tty went away. Treated as a fatal I/O failure.
var ErrClosed = errors.New("terminal: event stream closed")

// Terminal wraps a tcell screen. Init enters the alternate screen, hides
// the cursor and enables raw input; Fini restores all of it.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New initializes the terminal and starts the event pump. The pump
// goroutine belongs to this capability layer; callers stay sequential.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Fini restores the terminal: cursor back, alternate screen left, raw mode
// off. Safe to call on every exit path.
func (t *Terminal) Fini() {
	close(t.quit)
	t.screen.Fini()
}

// Size returns the current dimensions in character cells
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Clear blanks the whole screen on the next Show
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// SetCell paints one glyph at (x, y) in the given foreground color
func (t *Terminal) SetCell(x, y int, glyph rune, color core.RGB) {
	style := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	t.screen.SetContent(x, y, glyph, nil, style)
}

// Show flushes pending paints to the tty
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollKey waits up to timeout for a key event. Returns ok=false when the
// timeout elapses without one. Non-key events (resize, paste) are ignored
// without restarting the timeout, so a burst of them cannot stall the
// animation clock.
func (t *Terminal) PollKey(timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, open := <-t.events:
			if !open {
				return Key{}, false, ErrClosed
			}
			if key, ok := decodeKey(ev); ok {
				return key, true, nil
			}
		case <-timer.C:
			return Key{}, false, nil
		}
	}
}

// WaitKey blocks until the next key event arrives
func (t *Terminal) WaitKey() (Key, error) {
	for {
		ev, open := <-t.events
		if !open {
			return Key{}, ErrClosed
		}
		if key, ok := decodeKey(ev); ok {
			return key, nil
		}
	}
}

// decodeKey maps a tcell event to a Key, dropping everything that is not
// a key press
func decodeKey(ev tcell.Event) (Key, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return Key{}, false
	}
	switch kev.Key() {
	case tcell.KeyRune:
		return Key{Code: KeyRune, Rune: kev.Rune()}, true
	case tcell.KeyEscape:
		return Key{Code: KeyEscape}, true
	case tcell.KeyLeft:
		return Key{Code: KeyLeft}, true
	case tcell.KeyRight:
		return Key{Code: KeyRight}, true
	case tcell.KeyUp:
		return Key{Code: KeyUp}, true
	case tcell.KeyDown:
		return Key{Code: KeyDown}, true
	}
	return Key{}, false
}

// Raw escape sequences for crash recovery, used when the screen state is
// unknown and tcell cannot be trusted to clean up
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset restores a sane terminal after a panic. Best effort,
// errors are ignored in a crash context.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
}
