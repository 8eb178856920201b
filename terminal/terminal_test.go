package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		event    tcell.Event
		expected Key
		ok       bool
	}{
		{"Rune key", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), RuneKey('q'), true},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), RuneKey(' '), true},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Key{Code: KeyEscape}, true},
		{"Left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Key{Code: KeyLeft}, true},
		{"Right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Key{Code: KeyRight}, true},
		{"Up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Key{Code: KeyUp}, true},
		{"Down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Key{Code: KeyDown}, true},
		{"Unmapped key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), Key{}, false},
		{"Resize event", tcell.NewEventResize(80, 24), Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := decodeKey(tt.event)
			if ok != tt.ok {
				t.Fatalf("Expected ok to be %v, got %v", tt.ok, ok)
			}
			if ok && key != tt.expected {
				t.Errorf("Expected key %+v, got %+v", tt.expected, key)
			}
		})
	}
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf strings.Builder
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
