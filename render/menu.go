package render

import (
	"fmt"
	"strings"

	"github.com/EchoDynamis/rainfall/core"
)

// PauseStatus is the line overlaid on the frozen frame while paused.
// The pause key differs between the binaries.
func PauseStatus(pauseKey string) string {
	return fmt.Sprintf("Paused - Press %s to resume or 'q' to quit", pauseKey)
}

// MenuText builds the config menu. charSetName is empty when the binary
// ships a single hard-coded set, which drops the language line entirely.
func MenuText(cfg core.Config, charSetName string) string {
	var b strings.Builder
	b.WriteString("Configuration Menu\n\n")
	fmt.Fprintf(&b, "Speed: %d (use +/- to change)\n", cfg.SpeedLevel)
	fmt.Fprintf(&b, "Theme: %s (use left/right arrows to change)\n", cfg.ThemeName())
	if charSetName != "" {
		fmt.Fprintf(&b, "Language: %s (use up/down arrows to change)\n", charSetName)
	}
	b.WriteString("\nPress 'c' or 'Esc': Return to matrix")
	return b.String()
}
