package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour used by the cell compositor
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RgbBackground = RGB{26, 26, 26} // 0.1 grey
	RgbText       = RGBWhite
	RgbBomb       = RGBWhite
)

// FromColorful quantises a colorful.Color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts back for blending in linear space
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Tcell converts RGB to tcell.Color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend is linear alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns per-channel maximum
func Max(c, src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// Screen brightens: 1 - (1-a)(1-b) per channel
func Screen(c, src RGB) RGB {
	return RGB{
		R: screenChannel(c.R, src.R),
		G: screenChannel(c.G, src.G),
		B: screenChannel(c.B, src.B),
	}
}

func screenChannel(a, b uint8) uint8 {
	return 255 - fastDiv255((255-int(a))*(255-int(b)))
}

// fastDiv255 approximates x / 255 using integer math
func fastDiv255(x int) uint8 {
	return uint8((x + 1 + (x >> 8)) >> 8)
}
