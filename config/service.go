package config

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
)

// WatchService hot-reloads gameplay tunables into a world while running
type WatchService struct {
	path   string
	world  *engine.World
	adjust func(*Config)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatchService watches path for w; adjust, when non-nil, reapplies
// command-line overrides to every reloaded config before it is published
func NewWatchService(path string, w *engine.World, adjust func(*Config)) *WatchService {
	return &WatchService{path: path, world: w, adjust: adjust}
}

func (s *WatchService) Name() string           { return "config-watch" }
func (s *WatchService) Dependencies() []string { return nil }
func (s *WatchService) Init() error            { return nil }

// Start launches the watcher goroutine
func (s *WatchService) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		if err := Watch(ctx, s.path, s.apply); err != nil {
			slog.Warn("config watch stopped", "error", err)
		}
	})
	return nil
}

// apply swaps the config resource between frames
func (s *WatchService) apply(c *Config) {
	if s.adjust != nil {
		s.adjust(c)
	}
	res := c.Resource()
	s.world.RunSafe(func() {
		s.world.Resource.Config = res
	})
}

// Stop cancels the watcher and waits for it to exit
func (s *WatchService) Stop() error {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
	return nil
}
