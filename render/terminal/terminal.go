// Package terminal runs the simulation in a tcell screen
// The 480x320 world is stretched over the cell grid; one cell covers a
// world rectangle and is lit when its center falls inside a disc
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/input"
	"github.com/lixenwraith/chainburst/render"
	"github.com/lixenwraith/chainburst/vmath"
)

const (
	bombRune  = '●'
	pausedMsg = "PAUSED"

	// Pause overlay darkens every cell towards black
	pauseDim = 0.5
)

// bombHalo raises the background under a bomb glyph so it stays visible on dark cells
var bombHalo = render.RGB{R: 60, G: 60, B: 60}

// Frontend owns the screen for the lifetime of Run
type Frontend struct {
	screen    tcell.Screen
	world     *engine.World
	scheduler *engine.Scheduler
	machine   *input.Machine
	buf       *render.RenderBuffer

	// World extent mapped onto the grid, refreshed from each drawn scene
	worldW, worldH int
}

// New wraps an initialised screen, enabling mouse reporting
func New(screen tcell.Screen, w *engine.World, s *engine.Scheduler) *Frontend {
	screen.EnableMouse()
	cols, rows := screen.Size()
	f := &Frontend{
		screen:    screen,
		world:     w,
		scheduler: s,
		machine:   input.NewMachine(),
		buf:       render.NewRenderBuffer(cols, rows),
	}
	w.RunSafe(func() {
		f.worldW, f.worldH = w.Resource.Config.Width, w.Resource.Config.Height
	})
	return f
}

// cellSize is the world extent of one cell
func (f *Frontend) cellSize() (float32, float32) {
	cols, rows := f.buf.Size()
	return float32(f.worldW) / float32(max(cols, 1)), float32(f.worldH) / float32(max(rows, 1))
}

// ToWorld maps a cell to the world point at its center
func (f *Frontend) ToWorld(col, row int) vmath.Vec2 {
	sx, sy := f.cellSize()
	return vmath.V2((float32(col)+0.5)*sx, (float32(row)+0.5)*sy)
}

// ToCell maps a world point to the cell containing it
func (f *Frontend) ToCell(p vmath.Vec2) (int, int) {
	sx, sy := f.cellSize()
	return int(p.X / sx), int(p.Y / sy)
}

// HandleEvent applies one terminal event, false means quit
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			return input.Apply(f.world, f.machine.Rune(ev.Rune()))
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		for _, in := range f.machine.Mouse(buttonMask(ev.Buttons()), f.ToWorld(col, row)) {
			input.Apply(f.world, in)
		}

	case *tcell.EventResize:
		cols, rows := f.screen.Size()
		f.buf.Resize(cols, rows)
		f.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			f.machine.Reset()
		}
	}
	return true
}

// buttonMask converts tcell's held-button mask
func buttonMask(b tcell.ButtonMask) input.ButtonMask {
	var m input.ButtonMask
	if b&tcell.ButtonPrimary != 0 {
		m |= input.ButtonLeft
	}
	if b&tcell.ButtonMiddle != 0 {
		m |= input.ButtonMiddle
	}
	if b&tcell.ButtonSecondary != 0 {
		m |= input.ButtonRight
	}
	return m
}

// Draw renders one scene into the cell buffer and flushes it
func (f *Frontend) Draw(scene *render.Scene) {
	if scene.Width > 0 && scene.Height > 0 {
		f.worldW, f.worldH = scene.Width, scene.Height
	}
	f.buf.Clear()
	cols, rows := f.buf.Size()

	for _, d := range scene.Explosions {
		f.fillDisc(d, render.FromColorful(d.Color))
	}
	for _, d := range scene.Bombs {
		col, row := f.ToCell(d.Center)
		f.buf.SetBg(col, row, bombHalo, render.BlendMax, 1)
		f.buf.SetRune(col, row, bombRune, render.FromColorful(d.Color))
	}

	if scene.Paused {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				f.buf.SetBg(col, row, render.RGBBlack, render.BlendAlpha, pauseDim)
			}
		}
	}

	for i, line := range scene.Help {
		f.buf.SetText(0, i, line, render.RgbText)
	}
	if scene.Paused {
		x := cols - len(pausedMsg)
		for i := range len(pausedMsg) {
			f.buf.SetBg(x+i, 0, render.RgbBackground, render.BlendReplace, 1)
		}
		f.buf.SetText(x, 0, pausedMsg, render.RgbText)
	}
	f.buf.SetText(0, rows-1, scene.Chain, render.RgbText)

	f.buf.Flush(f.screen)
}

// fillDisc lights every cell whose center lies inside the disc
func (f *Frontend) fillDisc(d render.Disc, c render.RGB) {
	minCol, minRow := f.ToCell(d.Center.Sub(vmath.V2(d.Radius, d.Radius)))
	maxCol, maxRow := f.ToCell(d.Center.Add(vmath.V2(d.Radius, d.Radius)))
	r2 := d.Radius * d.Radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if f.ToWorld(col, row).DistanceSq(d.Center) <= r2 {
				f.buf.SetBg(col, row, c, render.BlendScreen, 1)
			}
		}
	}
}

// Run steps the simulation every interval and redraws until ctx is done or the user quits
func (f *Frontend) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			f.scheduler.Step()
			f.Draw(render.Capture(f.world))
		}
	}
}
