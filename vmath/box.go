package vmath

import "gonum.org/v1/gonum/spatial/r2"

// Box is an axis-aligned extent with Min as the lower-left and Max as the upper-right corner
type Box = r2.Box

// NewBox returns the box spanning origin with width w and height h
func NewBox(origin Vec, w, h float64) Box {
	return Box{Min: origin, Max: Vec{X: origin.X + w, Y: origin.Y + h}}
}

// BoxWidth returns horizontal span
func BoxWidth(b Box) float64 { return b.Max.X - b.Min.X }

// BoxHeight returns vertical span
func BoxHeight(b Box) float64 { return b.Max.Y - b.Min.Y }

// BoxCenter returns the midpoint
func BoxCenter(b Box) Vec {
	return Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// BoxContains reports whether p lies inside or on the boundary
func BoxContains(b Box, p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// BoxValid reports positive width and height
func BoxValid(b Box) bool {
	return BoxWidth(b) > 0 && BoxHeight(b) > 0
}
