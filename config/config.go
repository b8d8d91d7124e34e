// Package config loads the TOML settings file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/chainburst/audio"
	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Explosion  ExplosionConfig  `toml:"explosion"`
	Bomb       BombConfig       `toml:"bomb"`
	Simulation SimulationConfig `toml:"simulation"`
	Audio      AudioConfig      `toml:"audio"`
	Log        LogConfig        `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type ExplosionConfig struct {
	Radius     float32 `toml:"radius"`
	DurationMs int     `toml:"duration_ms"`
}

type BombConfig struct {
	Radius      float32 `toml:"radius"`
	WillExplode bool    `toml:"will_explode"`
}

type SimulationConfig struct {
	Parallel  bool `toml:"parallel"`
	Workers   int  `toml:"workers"` // 0 = GOMAXPROCS
	FrameRate int  `toml:"frame_rate"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constant.ScreenWidth,
			Height: constant.ScreenHeight,
			Title:  constant.WindowTitle,
		},
		Explosion: ExplosionConfig{
			Radius:     constant.ExplosionRadius,
			DurationMs: int(constant.ExplosionDuration / time.Millisecond),
		},
		Bomb: BombConfig{
			Radius:      constant.BombRadius,
			WillExplode: constant.BombWillExplode,
		},
		Simulation: SimulationConfig{
			FrameRate: int(time.Second / constant.FrameUpdateInterval),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  audio.DefaultAudioConfig().Volume,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error, unknown keys are
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Explosion.Radius <= 0:
		return fmt.Errorf("%w: explosion radius %v", ErrInvalidConfig, c.Explosion.Radius)
	case c.Explosion.DurationMs <= 0:
		return fmt.Errorf("%w: explosion duration %dms", ErrInvalidConfig, c.Explosion.DurationMs)
	case c.Bomb.Radius <= 0:
		return fmt.Errorf("%w: bomb radius %v", ErrInvalidConfig, c.Bomb.Radius)
	case c.Simulation.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Simulation.Workers)
	case c.Simulation.FrameRate <= 0 || c.Simulation.FrameRate > 1000:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.Simulation.FrameRate)
	}
	return nil
}

// FrameInterval is the fixed simulation step
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Simulation.FrameRate)
}

// Resource converts the gameplay settings into the world's config resource
func (c *Config) Resource() *engine.ConfigResource {
	return &engine.ConfigResource{
		Width:             c.Window.Width,
		Height:            c.Window.Height,
		ExplosionRadius:   c.Explosion.Radius,
		ExplosionDuration: time.Duration(c.Explosion.DurationMs) * time.Millisecond,
		BombRadius:        c.Bomb.Radius,
		BombWillExplode:   c.Bomb.WillExplode,
		ParallelDetect:    c.Simulation.Parallel,
		DetectWorkers:     c.Simulation.Workers,
	}
}

// AudioConfig converts the audio section for the audio engine
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}
