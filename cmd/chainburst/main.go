package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/chainburst/app"
	"github.com/lixenwraith/chainburst/render/window"
)

// windowScale enlarges the 480x320 world on desktop displays
var windowScale = flag.Int("scale", 2, "initial window scale factor")

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chainburst: %v\n", err)
		os.Exit(1)
	}

	cfg := a.Config
	ebiten.SetWindowSize(cfg.Window.Width * *windowScale, cfg.Window.Height * *windowScale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Simulation.FrameRate)

	runErr := ebiten.RunGame(window.NewGame(a.World, a.Scheduler))
	if err := a.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "chainburst: shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "chainburst: %v\n", runErr)
		os.Exit(1)
	}
}
