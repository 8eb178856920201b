package core

// Theme pairs a display name with its color scheme
type Theme struct {
	Name   string
	Scheme ColorScheme
}

// Themes is the fixed theme table, indexed by Config.ThemeIndex
var Themes = [4]Theme{
	{"Classic Green", ColorScheme{
		Head:  RGBWhite,
		Trail: RGB{0, 255, 0},
		Fade:  RGB{0, 135, 0},
	}},
	{"Ocean Blue", ColorScheme{
		Head:  RGBWhite,
		Trail: RGB{0, 135, 255},
		Fade:  RGB{0, 0, 139},
	}},
	{"Crimson Red", ColorScheme{
		Head:  RGBWhite,
		Trail: RGB{255, 0, 0},
		Fade:  RGB{139, 0, 0},
	}},
	{"Cyberpunk", ColorScheme{
		Head:  RGB{0, 255, 255},
		Trail: RGB{255, 0, 255},
		Fade:  RGB{139, 0, 139},
	}},
}
