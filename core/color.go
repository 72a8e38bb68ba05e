package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBBlackHole = RGB{200, 200, 255}
)

// palette cycles body colors by ID
var palette = [...]RGB{
	{255, 80, 80},
	{80, 255, 120},
	{90, 140, 255},
	{255, 220, 60},
	{220, 120, 255},
	{60, 230, 230},
	{255, 160, 60},
}

// PaletteColor returns a stable color for id
func PaletteColor(id BodyID) RGB {
	return palette[uint64(id)%uint64(len(palette))]
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Mix returns the mass-weighted blend of two body colors
func (c RGB) Mix(other RGB, selfWeight, otherWeight float64) RGB {
	total := selfWeight + otherWeight
	if total <= 0 {
		return c
	}
	return c.Blend(other, otherWeight/total)
}

// Scale multiplies each channel by factor (for fading trails)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
