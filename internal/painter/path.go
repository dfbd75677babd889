package painter

// Path is the ordered list of brush positions collected since the last
// display pass. Positions are stored interleaved as x, y pairs in normalized
// device coordinates so the slice can be uploaded to a vertex buffer as is.
type Path struct {
	pts []float32
}

// Append adds a single position to the end of the path.
func (p *Path) Append(x, y float32) {
	p.pts = append(p.pts, x, y)
}

// Len reports the number of positions held by the path.
func (p *Path) Len() int {
	return len(p.pts) / 2
}

// Floats returns the interleaved coordinates without copying them.
func (p *Path) Floats() []float32 {
	return p.pts
}

// Drain returns a copy of the interleaved coordinates and empties the path.
// The backing array is kept for reuse by the next stroke.
func (p *Path) Drain() []float32 {
	if len(p.pts) == 0 {
		return nil
	}
	out := make([]float32, len(p.pts))
	copy(out, p.pts)
	p.pts = p.pts[:0]
	return out
}

// Reset empties the path without returning its contents.
func (p *Path) Reset() {
	p.pts = p.pts[:0]
}
