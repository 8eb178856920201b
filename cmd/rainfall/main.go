package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/EchoDynamis/rainfall/audio"
	"github.com/EchoDynamis/rainfall/charset"
	"github.com/EchoDynamis/rainfall/engine"
	"github.com/EchoDynamis/rainfall/input"
	"github.com/EchoDynamis/rainfall/terminal"
)

var soundFlag = flag.Bool("sound", false, "play tone cues on pause and config changes")

func main() {
	// Restore the terminal even if the loop panics, then make the failure
	// visible after the reset
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nrainfall crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rainfall:", err)
		os.Exit(1)
	}
}

func run() error {
	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Fini()

	sound := audio.NewPlayer()
	if *soundFlag {
		// best effort, the animation runs fine without a speaker
		_ = sound.Init()
	}

	eng, err := engine.New(term, engine.Options{
		Registry: charset.NewRegistry(
			charset.English(),
			charset.TraditionalChinese(),
			charset.SimplifiedChinese(),
		),
		Bindings:      input.Default(),
		Rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
		PauseKeyLabel: "SPACE",
		Sound:         sound,
	})
	if err != nil {
		return err
	}
	return eng.Run()
}
