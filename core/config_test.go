package core

import "testing"

func TestSpeedLevelClamps(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		ups      int
		downs    int
		expected int
	}{
		{"Up within range", 5, 2, 0, 7},
		{"Down within range", 5, 0, 3, 2},
		{"Clamped at max", 5, 15, 0, MaxSpeedLevel},
		{"Clamped at min", 5, 0, 20, MinSpeedLevel},
		{"Max then down", 9, 4, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{SpeedLevel: tt.start}
			for i := 0; i < tt.ups; i++ {
				cfg.SpeedUp()
			}
			for i := 0; i < tt.downs; i++ {
				cfg.SpeedDown()
			}
			if cfg.SpeedLevel != tt.expected {
				t.Errorf("Expected SpeedLevel to be %d, got %d", tt.expected, cfg.SpeedLevel)
			}
		})
	}
}

func TestThemeIndexWraps(t *testing.T) {
	cfg := DefaultConfig()

	// a full forward lap lands back on the starting theme
	for i := 0; i < len(Themes); i++ {
		cfg.NextTheme()
		if cfg.ThemeIndex < 0 || cfg.ThemeIndex >= len(Themes) {
			t.Fatalf("ThemeIndex out of range: %d", cfg.ThemeIndex)
		}
	}
	if cfg.ThemeIndex != 0 {
		t.Errorf("Expected ThemeIndex to be 0 after a full lap, got %d", cfg.ThemeIndex)
	}

	cfg.PrevTheme()
	if cfg.ThemeIndex != len(Themes)-1 {
		t.Errorf("Expected ThemeIndex to wrap to %d, got %d", len(Themes)-1, cfg.ThemeIndex)
	}
	cfg.NextTheme()
	if cfg.ThemeIndex != 0 {
		t.Errorf("Expected ThemeIndex to wrap to 0, got %d", cfg.ThemeIndex)
	}
}

func TestCharSetIndexWraps(t *testing.T) {
	const count = 3
	cfg := DefaultConfig()

	cfg.PrevCharSet(count)
	if cfg.CharSetIndex != count-1 {
		t.Errorf("Expected CharSetIndex to wrap to %d, got %d", count-1, cfg.CharSetIndex)
	}
	cfg.NextCharSet(count)
	if cfg.CharSetIndex != 0 {
		t.Errorf("Expected CharSetIndex to wrap to 0, got %d", cfg.CharSetIndex)
	}
	for i := 0; i < count; i++ {
		cfg.NextCharSet(count)
	}
	if cfg.CharSetIndex != 0 {
		t.Errorf("Expected CharSetIndex to be 0 after a full lap, got %d", cfg.CharSetIndex)
	}
}

func TestSchemeFollowsThemeIndex(t *testing.T) {
	cfg := DefaultConfig()
	for i, theme := range Themes {
		cfg.ThemeIndex = i
		if cfg.Scheme() != theme.Scheme {
			t.Errorf("Expected scheme of theme %d (%s)", i, theme.Name)
		}
		if cfg.ThemeName() != theme.Name {
			t.Errorf("Expected theme name %q, got %q", theme.Name, cfg.ThemeName())
		}
	}
}
