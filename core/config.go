package core

// Config holds the user-adjustable settings. Single owner: only the
// controller mutates it, in response to config menu keys.
type Config struct {
	ThemeIndex   int // wraps over the theme table
	SpeedLevel   int // clamped to [MinSpeedLevel, MaxSpeedLevel]
	CharSetIndex int // wraps over the registered character sets
}

// DefaultConfig starts on the first theme and character set at mid speed
func DefaultConfig() Config {
	return Config{ThemeIndex: 0, SpeedLevel: 5, CharSetIndex: 0}
}

// Scheme returns the active color scheme
func (c *Config) Scheme() ColorScheme {
	return Themes[c.ThemeIndex].Scheme
}

// ThemeName returns the active theme's display name
func (c *Config) ThemeName() string {
	return Themes[c.ThemeIndex].Name
}

// SpeedUp raises the speed level, clamped at MaxSpeedLevel
func (c *Config) SpeedUp() {
	if c.SpeedLevel < MaxSpeedLevel {
		c.SpeedLevel++
	}
}

// SpeedDown lowers the speed level, clamped at MinSpeedLevel
func (c *Config) SpeedDown() {
	if c.SpeedLevel > MinSpeedLevel {
		c.SpeedLevel--
	}
}

// NextTheme advances the theme index with wraparound
func (c *Config) NextTheme() {
	c.ThemeIndex = (c.ThemeIndex + 1) % len(Themes)
}

// PrevTheme retreats the theme index with wraparound
func (c *Config) PrevTheme() {
	c.ThemeIndex = (c.ThemeIndex + len(Themes) - 1) % len(Themes)
}

// NextCharSet advances the character set index with wraparound over count sets
func (c *Config) NextCharSet(count int) {
	c.CharSetIndex = (c.CharSetIndex + 1) % count
}

// PrevCharSet retreats the character set index with wraparound over count sets
func (c *Config) PrevCharSet(count int) {
	c.CharSetIndex = (c.CharSetIndex + count - 1) % count
}
