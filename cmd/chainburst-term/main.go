package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chainburst/app"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/render/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "chainburst-term: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *app.Options) error {
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashFinalizer(screen)
	defer func() {
		core.SetCrashFinalizer(nil)
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, a.World, a.Scheduler).Run(ctx, a.Config.FrameInterval())
}
