// Package input maps decoded terminal keys to application actions. The
// two shipped binding tables differ only where the binaries differ: the
// pause key, and whether character set cycling exists at all.
package input

import "github.com/EchoDynamis/rainfall/terminal"

// Action is what a key press means in the current mode
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPauseToggle
	ActionConfigToggle
	ActionConfigClose
	ActionSpeedUp
	ActionSpeedDown
	ActionThemeNext
	ActionThemePrev
	ActionCharSetNext
	ActionCharSetPrev
)

// Bindings holds one key table per application mode. Escape deliberately
// means quit while animating or paused but only closes the menu while
// configuring, so the tables are kept separate rather than sharing one map.
type Bindings struct {
	Matrix map[terminal.Key]Action
	Paused map[terminal.Key]Action
	Config map[terminal.Key]Action
}

// Resolve looks key up in table, returning ActionNone for unbound keys
func Resolve(table map[terminal.Key]Action, key terminal.Key) Action {
	return table[key]
}

// Default is the full binding table: Space pauses, arrow keys cycle theme
// (left/right) and character set (up/down) in the config menu.
func Default() Bindings {
	return Bindings{
		Matrix: map[terminal.Key]Action{
			terminal.RuneKey('q'): ActionQuit,
			{Code: terminal.KeyEscape}: ActionQuit,
			terminal.RuneKey(' '): ActionPauseToggle,
			terminal.RuneKey('c'): ActionConfigToggle,
		},
		Paused: map[terminal.Key]Action{
			terminal.RuneKey('q'): ActionQuit,
			{Code: terminal.KeyEscape}: ActionQuit,
			terminal.RuneKey(' '): ActionPauseToggle,
		},
		Config: map[terminal.Key]Action{
			terminal.RuneKey('c'): ActionConfigClose,
			{Code: terminal.KeyEscape}: ActionConfigClose,
			terminal.RuneKey('+'): ActionSpeedUp,
			terminal.RuneKey('='): ActionSpeedUp,
			terminal.RuneKey('-'): ActionSpeedDown,
			{Code: terminal.KeyRight}: ActionThemeNext,
			{Code: terminal.KeyLeft}: ActionThemePrev,
			{Code: terminal.KeyUp}: ActionCharSetNext,
			{Code: terminal.KeyDown}: ActionCharSetPrev,
		},
	}
}

// Classic is the reduced binding table: p pauses and there is no character
// set cycling, matching the single hard-coded set of the classic binary.
func Classic() Bindings {
	return Bindings{
		Matrix: map[terminal.Key]Action{
			terminal.RuneKey('q'): ActionQuit,
			{Code: terminal.KeyEscape}: ActionQuit,
			terminal.RuneKey('p'): ActionPauseToggle,
			terminal.RuneKey('c'): ActionConfigToggle,
		},
		Paused: map[terminal.Key]Action{
			terminal.RuneKey('q'): ActionQuit,
			{Code: terminal.KeyEscape}: ActionQuit,
			terminal.RuneKey('p'): ActionPauseToggle,
		},
		Config: map[terminal.Key]Action{
			terminal.RuneKey('c'): ActionConfigClose,
			{Code: terminal.KeyEscape}: ActionConfigClose,
			terminal.RuneKey('+'): ActionSpeedUp,
			terminal.RuneKey('='): ActionSpeedUp,
			terminal.RuneKey('-'): ActionSpeedDown,
			{Code: terminal.KeyRight}: ActionThemeNext,
			{Code: terminal.KeyLeft}: ActionThemePrev,
		},
	}
}
