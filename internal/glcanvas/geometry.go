package glcanvas

import "image/color"

// minPathCapacity is the smallest path buffer allocation, in floats.
const minPathCapacity = 256

// growCapacity returns the buffer capacity, in floats, needed to hold need
// floats. Capacity doubles so uploads during a long drag stay amortised.
func growCapacity(cur, need int) int {
	if need <= cur {
		return cur
	}
	c := cur
	if c < minPathCapacity {
		c = minPathCapacity
	}
	for c < need {
		c *= 2
	}
	return c
}

// rect is a GL framebuffer rectangle given as two corners, origin bottom-left.
type rect struct {
	X0, Y0, X1, Y1 int32
}

// anchorTopLeft returns the source and destination rectangles for copying
// an ow by oh canvas into an nw by nh canvas so that the top-left corner
// stays in place. GL clips any part of dst outside the new canvas.
func anchorTopLeft(ow, oh, nw, nh int) (src, dst rect) {
	src = rect{0, 0, int32(ow), int32(oh)}
	dy := int32(nh - oh)
	dst = rect{0, dy, int32(ow), dy + int32(oh)}
	return src, dst
}

// halfSize returns half the extent of a brush of diameter px pixels in
// normalized device coordinates for a w by h viewport.
func halfSize(px, w, h int) (float32, float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float32(px) / float32(w), float32(px) / float32(h)
}

func colorToFloat(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
