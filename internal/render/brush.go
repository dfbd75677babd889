package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// BrushOptions configures the CPU rendition of the brush.
type BrushOptions struct {
	Size  int
	Sigma float64
	Color color.RGBA
}

// DefaultBrushOptions matches the texture baked on the GPU at start-up.
func DefaultBrushOptions() BrushOptions {
	return BrushOptions{
		Size:  128,
		Sigma: 0.35,
		Color: color.RGBA{255, 255, 255, 255},
	}
}

// Coverage returns the gaussian brush weight at texture coordinate (u, v).
// Coordinates outside the inscribed disc have no coverage.
func Coverage(u, v, sigma float64) float64 {
	dx := (u - 0.5) * 2
	dy := (v - 0.5) * 2
	d2 := dx*dx + dy*dy
	if d2 > 1 || sigma <= 0 {
		return 0
	}
	return math.Exp(-d2 / (2 * sigma * sigma))
}

// Gaussian draws the brush into a new straight-alpha image. Each pixel is
// sampled at its centre, the same way the bake shader is rasterised.
func Gaussian(opts BrushOptions) *image.RGBA {
	size := opts.Size
	if size <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		v := (float64(y) + 0.5) / float64(size)
		for x := 0; x < size; x++ {
			u := (float64(x) + 0.5) / float64(size)
			g := Coverage(u, v, opts.Sigma)
			a := uint8(math.Round(g * float64(opts.Color.A)))
			if a == 0 {
				continue
			}
			// image.RGBA is premultiplied.
			img.SetRGBA(x, y, color.RGBA{
				R: premul(opts.Color.R, a),
				G: premul(opts.Color.G, a),
				B: premul(opts.Color.B, a),
				A: a,
			})
		}
	}
	return img
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// Scale resamples img to w by h pixels.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || img == nil {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
