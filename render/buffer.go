package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of the compositor
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var emptyCell = Cell{Rune: ' ', Fg: RgbText, Bg: RgbBackground}

// RenderBuffer is a cell compositor flushed to a tcell.Screen in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, empty when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetBg composites a background colour, preserving rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = mode.apply(dst.Bg, bg, alpha)
}

// SetRune writes a glyph over the existing background
func (b *RenderBuffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetText writes a string left to right, clipped at the edge
func (b *RenderBuffer) SetText(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.SetRune(x, y, r, fg)
		x++
	}
}

// Flush writes the buffer to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
