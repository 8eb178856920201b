package input

import (
	"testing"

	"github.com/EchoDynamis/rainfall/terminal"
)

func TestDefaultBindings(t *testing.T) {
	b := Default()
	tests := []struct {
		name     string
		table    map[terminal.Key]Action
		key      terminal.Key
		expected Action
	}{
		{"Quit on q", b.Matrix, terminal.RuneKey('q'), ActionQuit},
		{"Quit on escape", b.Matrix, terminal.Key{Code: terminal.KeyEscape}, ActionQuit},
		{"Space pauses", b.Matrix, terminal.RuneKey(' '), ActionPauseToggle},
		{"c opens menu", b.Matrix, terminal.RuneKey('c'), ActionConfigToggle},
		{"p unbound while animating", b.Matrix, terminal.RuneKey('p'), ActionNone},
		{"Space resumes", b.Paused, terminal.RuneKey(' '), ActionPauseToggle},
		{"Quit while paused", b.Paused, terminal.RuneKey('q'), ActionQuit},
		{"Escape closes menu", b.Config, terminal.Key{Code: terminal.KeyEscape}, ActionConfigClose},
		{"c closes menu", b.Config, terminal.RuneKey('c'), ActionConfigClose},
		{"Plus raises speed", b.Config, terminal.RuneKey('+'), ActionSpeedUp},
		{"Equals raises speed", b.Config, terminal.RuneKey('='), ActionSpeedUp},
		{"Minus lowers speed", b.Config, terminal.RuneKey('-'), ActionSpeedDown},
		{"Right cycles theme", b.Config, terminal.Key{Code: terminal.KeyRight}, ActionThemeNext},
		{"Left cycles theme back", b.Config, terminal.Key{Code: terminal.KeyLeft}, ActionThemePrev},
		{"Up cycles charset", b.Config, terminal.Key{Code: terminal.KeyUp}, ActionCharSetNext},
		{"Down cycles charset back", b.Config, terminal.Key{Code: terminal.KeyDown}, ActionCharSetPrev},
		{"q unbound in menu", b.Config, terminal.RuneKey('q'), ActionNone},
		{"Unbound rune", b.Matrix, terminal.RuneKey('z'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.table, tt.key); got != tt.expected {
				t.Errorf("Expected action %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestClassicBindings(t *testing.T) {
	b := Classic()
	tests := []struct {
		name     string
		table    map[terminal.Key]Action
		key      terminal.Key
		expected Action
	}{
		{"p pauses", b.Matrix, terminal.RuneKey('p'), ActionPauseToggle},
		{"Space unbound", b.Matrix, terminal.RuneKey(' '), ActionNone},
		{"p resumes", b.Paused, terminal.RuneKey('p'), ActionPauseToggle},
		{"Quit on q", b.Matrix, terminal.RuneKey('q'), ActionQuit},
		{"No charset next", b.Config, terminal.Key{Code: terminal.KeyUp}, ActionNone},
		{"No charset prev", b.Config, terminal.Key{Code: terminal.KeyDown}, ActionNone},
		{"Theme still cycles", b.Config, terminal.Key{Code: terminal.KeyRight}, ActionThemeNext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.table, tt.key); got != tt.expected {
				t.Errorf("Expected action %d, got %d", tt.expected, got)
			}
		})
	}
}
