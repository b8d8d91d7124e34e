// Package render builds frame snapshots shared by the window and terminal front-ends
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/chainburst/constant"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/input"
	"github.com/lixenwraith/chainburst/vmath"
)

// Disc is a filled circle in world coordinates
type Disc struct {
	Center vmath.Vec2
	Radius float32
	Color  colorful.Color
	Chain  uint32
}

// Scene is an immutable copy of everything a front-end draws
// Built under the world lock so drawing never races the simulation
type Scene struct {
	Width, Height int
	Explosions    []Disc
	Bombs         []Disc
	Help          []string
	Chain         string
	Paused        bool
	Frame         int64
}

// ExplosionColor is the HSL colour of an explosion spawned at hue degrees
func ExplosionColor(hue float64) colorful.Color {
	return colorful.Hsl(hue, constant.ExplosionSaturation, constant.ExplosionLightness)
}

// BombColor is the fixed bomb colour
func BombColor() colorful.Color {
	return RgbBomb.Colorful()
}

// Capture snapshots the world under its update lock
func Capture(w *engine.World) *Scene {
	s := &Scene{}
	w.RunSafe(func() {
		s.capture(w)
	})
	return s
}

// capture fills s from w, caller holds the world lock
func (s *Scene) capture(w *engine.World) {
	cfg := w.Resource.Config
	s.Width, s.Height = cfg.Width, cfg.Height
	s.Help = input.HelpLines
	s.Chain = w.Resource.Chain.Display()
	s.Paused = w.Resource.Time.Paused
	s.Frame = w.Resource.Time.FrameNumber

	explosions := w.Component.Explosion.All()
	s.Explosions = make([]Disc, 0, len(explosions))
	for _, e := range explosions {
		ex, ok := w.Component.Explosion.Get(e)
		if !ok || ex.Radius <= 0 {
			continue
		}
		tr, ok := w.Component.Transform.Get(e)
		if !ok {
			continue
		}
		s.Explosions = append(s.Explosions, Disc{
			Center: tr.Translation,
			Radius: ex.Radius * cfg.ExplosionRadius,
			Color:  ExplosionColor(ex.Hue),
			Chain:  ex.Chain,
		})
	}

	bombs := w.Component.Bomb.All()
	s.Bombs = make([]Disc, 0, len(bombs))
	bombColor := BombColor()
	for _, e := range bombs {
		tr, ok := w.Component.Transform.Get(e)
		if !ok {
			continue
		}
		s.Bombs = append(s.Bombs, Disc{
			Center: tr.Translation,
			Radius: cfg.BombRadius,
			Color:  bombColor,
		})
	}
}
