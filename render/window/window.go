// Package window runs the simulation in a native ebiten window
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/input"
	"github.com/lixenwraith/chainburst/render"
	"github.com/lixenwraith/chainburst/vmath"
)

// lineHeight matches the 16px text rows of the help overlay
const lineHeight = 16

var (
	colBackground = color.RGBA{26, 26, 26, 0xff}
	mouseButtons  = [...]struct {
		ebiten ebiten.MouseButton
		button input.Button
	}{
		{ebiten.MouseButtonLeft, input.ButtonLeft},
		{ebiten.MouseButtonMiddle, input.ButtonMiddle},
		{ebiten.MouseButtonRight, input.ButtonRight},
	}
	keyRunes = [...]struct {
		key ebiten.Key
		r   rune
	}{
		{ebiten.KeyR, 'r'},
		{ebiten.KeyM, 'm'},
		{ebiten.KeyQ, 'q'},
	}
)

// Game implements ebiten.Game; one ebiten tick is one simulation frame
type Game struct {
	world     *engine.World
	scheduler *engine.Scheduler
	machine   *input.Machine
	scene     *render.Scene
}

func NewGame(w *engine.World, s *engine.Scheduler) *Game {
	return &Game{
		world:     w,
		scheduler: s,
		machine:   input.NewMachine(),
		scene:     render.Capture(w),
	}
}

// Update reads input, steps the simulation and captures the next scene
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range keyRunes {
		if inpututil.IsKeyJustPressed(k.key) && !input.Apply(g.world, g.machine.Rune(k.r)) {
			return ebiten.Termination
		}
	}

	x, y := ebiten.CursorPosition()
	point := vmath.V2(float32(x), float32(y))
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			input.Apply(g.world, g.machine.Press(mb.button, point))
		}
	}

	g.scheduler.Step()
	g.scene = render.Capture(g.world)
	return nil
}

// Draw paints the last captured scene
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	s := g.scene

	for _, d := range s.Explosions {
		vector.DrawFilledCircle(screen, d.Center.X, d.Center.Y, d.Radius, d.Color, true)
	}
	for _, d := range s.Bombs {
		vector.DrawFilledCircle(screen, d.Center.X, d.Center.Y, d.Radius, d.Color, true)
	}

	for i, line := range s.Help {
		ebitenutil.DebugPrintAt(screen, line, 0, lineHeight*i)
	}
	if s.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", s.Width-48, 0)
	}
	ebitenutil.DebugPrintAt(screen, s.Chain, 0, s.Height-lineHeight)
}

// Layout fixes the logical screen to the captured world size; ebiten scales the window
func (g *Game) Layout(_, _ int) (int, int) {
	return g.scene.Width, g.scene.Height
}
