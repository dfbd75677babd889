package theme

import (
	"image/color"
)

// Theme defines the colours of the canvas and the brush.
type Theme struct {
	Name string

	Canvas color.RGBA // Background the canvas is cleared to
	Brush  color.RGBA // Colour of each brush stamp
}

// Default returns the hardcoded forest green theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:   "Default",
		Canvas: color.RGBA{33, 138, 33, 255},
		Brush:  color.RGBA{255, 255, 255, 255},
	}
}
