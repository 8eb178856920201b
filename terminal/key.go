package terminal

// KeyCode identifies the non-rune keys the application reacts to.
// Everything else arrives as KeyRune with the rune set.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Key is one decoded key event, decoupled from the tcell event types so
// the controller and its tests never touch the backend.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a plain character key
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}
