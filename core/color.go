package core

// RGB stores explicit 8-bit color channels, decoupled from the terminal layer
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ColorScheme is one theme: brightest at the stream head, a bright band
// behind it, then the dimmer fading tail
type ColorScheme struct {
	Head  RGB
	Trail RGB
	Fade  RGB
}
