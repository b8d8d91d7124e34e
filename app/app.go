// Package app assembles the world, systems and services shared by the front-ends
package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/chainburst/audio"
	"github.com/lixenwraith/chainburst/config"
	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/logging"
	"github.com/lixenwraith/chainburst/service"
	"github.com/lixenwraith/chainburst/system"
)

// Options are the command-line overrides common to every front-end
type Options struct {
	ConfigPath string
	Debug      bool
	Parallel   bool
	Mute       bool
	NoAudio    bool
	Watch      bool
}

// RegisterFlags binds Options to fs
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.ConfigPath, "config", "chainburst.toml", "TOML settings file (missing file uses defaults)")
	fs.BoolVar(&o.Debug, "debug", false, "write debug log under the log directory")
	fs.BoolVar(&o.Parallel, "parallel", false, "use the parallel chain detector")
	fs.BoolVar(&o.Mute, "mute", false, "start with audio muted (m toggles)")
	fs.BoolVar(&o.NoAudio, "no-audio", false, "do not open the audio device")
	fs.BoolVar(&o.Watch, "watch", true, "reload gameplay settings when the config file changes")
	return o
}

// Apply writes the flag overrides over a loaded config, at start and on every reload
func (o *Options) Apply(cfg *config.Config) {
	if o.Debug {
		cfg.Log.Debug = true
	}
	if o.Parallel {
		cfg.Simulation.Parallel = true
	}
	if o.Mute {
		cfg.Audio.Enabled = false
	}
}

// App is a fully wired simulation ready to be driven by a front-end
type App struct {
	Config    *config.Config
	World     *engine.World
	Scheduler *engine.Scheduler
	Hub       *service.Hub

	logFile *os.File
}

// New loads configuration, starts logging and services and builds the world
func New(opts *Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	opts.Apply(cfg)

	logFile, err := logging.Setup(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	clock := engine.NewClock(nil)
	clock.SetMaxDelta(constant.MaxFrameDelta)

	w := engine.NewWorld(cfg.Resource(), clock)
	s := engine.NewScheduler(w)
	system.Register(s, w)

	a := &App{
		Config:    cfg,
		World:     w,
		Scheduler: s,
		Hub:       service.NewHub(),
		logFile:   logFile,
	}

	if !opts.NoAudio {
		if err := a.Hub.Register(audio.NewService(cfg.AudioConfig())); err != nil {
			return nil, a.fail(err)
		}
	}
	if opts.Watch && opts.ConfigPath != "" {
		if err := a.Hub.Register(config.NewWatchService(opts.ConfigPath, w, opts.Apply)); err != nil {
			return nil, a.fail(err)
		}
	}

	if err := a.Hub.InitAll(); err != nil {
		return nil, a.fail(err)
	}
	if err := a.Hub.StartAll(); err != nil {
		return nil, a.fail(err)
	}
	a.Hub.Contribute(w)
	w.InitSystems()

	slog.Info("chainburst started",
		"config", opts.ConfigPath,
		"parallel", cfg.Simulation.Parallel,
		"frame_interval", cfg.FrameInterval(),
	)
	return a, nil
}

// fail releases whatever New acquired before returning err
func (a *App) fail(err error) error {
	return errors.Join(err, a.Close())
}

// Close stops services and closes the log file
func (a *App) Close() error {
	err := a.Hub.StopAll()
	if a.logFile != nil {
		slog.Info("chainburst stopped", "frames", a.Scheduler.Frame())
		err = errors.Join(err, a.logFile.Close())
		a.logFile = nil
	}
	return err
}
