// chainburst-bench runs the chain reaction headless over a grid of bombs
// and compares the sequential and parallel chain detectors
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/chainburst/config"
	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/logging"
	"github.com/lixenwraith/chainburst/system"
	"github.com/lixenwraith/chainburst/vmath"
)

var (
	configPath = flag.String("config", "", "TOML settings file for gameplay tunables")
	cols       = flag.Int("cols", 60, "bomb grid columns")
	rows       = flag.Int("rows", 40, "bomb grid rows")
	spacing    = flag.Float64("spacing", 30, "distance between neighbouring bombs")
	workers    = flag.Int("workers", 0, "parallel detector workers (0 = GOMAXPROCS)")
	maxFrames  = flag.Int("frames", 100000, "frame limit per run")
	verbose    = flag.Bool("v", false, "print the metric registry after each run")
	debug      = flag.Bool("debug", false, "write debug log under logs/")
)

type result struct {
	name   string
	frames int64
	chain  int64
	wall   time.Duration
	left   int
}

func main() {
	flag.Parse()

	logFile, err := logging.Setup(*debug, logging.DefaultDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chainburst-bench: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chainburst-bench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("grid %dx%d spacing %.1f, %d bombs\n", *cols, *rows, *spacing, *cols * *rows)
	for _, parallel := range []bool{false, true} {
		r := runOnce(cfg, parallel)
		fmt.Printf("%-10s frames=%-6d chain=%-5d bombs_left=%-6d wall=%v\n", r.name, r.frames, r.chain, r.left, r.wall)
	}
}

// runOnce plays a full chain from one explosion at the grid corner until every explosion has expired
// Game time advances one frame interval per step regardless of wall time
func runOnce(cfg *config.Config, parallel bool) result {
	res := cfg.Resource()
	res.ParallelDetect = parallel
	res.DetectWorkers = *workers

	tp := engine.NewSteppedTimeProvider(time.Unix(0, 0))
	w := engine.NewWorld(res, engine.NewClock(tp))
	s := engine.NewScheduler(w)
	system.Register(s, w)
	w.InitSystems()

	origin := vmath.V2(10, 10)
	step := float32(*spacing)
	for r := 0; r < *rows; r++ {
		for c := 0; c < *cols; c++ {
			system.SpawnBomb(w, origin.Add(vmath.V2(float32(c)*step, float32(r)*step)), true)
		}
	}
	system.SpawnExplosion(w, origin, 0)

	interval := constant.FrameUpdateInterval
	start := time.Now()
	for i := 0; i < *maxFrames && w.Component.Explosion.Count() > 0; i++ {
		tp.Advance(interval)
		s.Step()
	}
	wall := time.Since(start)

	reg := w.Resource.Status
	reg.Floats.Get("bench.wall_ms").Set(float64(wall.Microseconds()) / 1000)

	name := "sequential"
	if parallel {
		name = "parallel"
	}
	if *verbose {
		fmt.Printf("--- %s\n", name)
		reg.WriteTo(os.Stdout)
	}

	return result{
		name:   name,
		frames: s.Frame(),
		chain:  reg.Ints.Get("chain.record").Load(),
		wall:   wall,
		left:   w.Component.Bomb.Count(),
	}
}
