package painter

// Size is a window or framebuffer size in pixels.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ToNDC maps a window pixel position to normalized device coordinates.
// The y axis is flipped because window rows grow downwards.
func ToNDC(x, y float32, s Size) (float32, float32) {
	if s.Empty() {
		return 0, 0
	}
	px := x*2/float32(s.Width) - 1
	py := 1 - y*2/float32(s.Height)
	return px, py
}
