package render

import "github.com/lixenwraith/gravsim/core"

// BlendMode selects how a pixel write combines with what is already there
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendMax
)

// Blend returns src over dst at alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(dst, src core.RGB, alpha float64) core.RGB {
	return dst.Blend(src, alpha)
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add brightens dst by src per channel, saturating
func Add(dst, src core.RGB) core.RGB {
	return core.RGB{R: add(dst.R, src.R), G: add(dst.G, src.G), B: add(dst.B, src.B)}
}

// Max returns the per-channel maximum
func Max(dst, src core.RGB) core.RGB {
	return core.RGB{R: max(dst.R, src.R), G: max(dst.G, src.G), B: max(dst.B, src.B)}
}

func composite(dst, src core.RGB, mode BlendMode, alpha float64) core.RGB {
	switch mode {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src)
	case BlendMax:
		return Max(dst, src)
	default:
		return src
	}
}
