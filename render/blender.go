package render

// BlendMode selects how a write composites onto a cell's background
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendMax
	BlendScreen
)

func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendMax:
		return Max(dst, src)
	case BlendScreen:
		return Screen(dst, src)
	}
	return src
}
