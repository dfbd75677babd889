package glcanvas

import (
	"image/color"
	"testing"
)

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		cur, need, want int
	}{
		{0, 0, 0},
		{0, 8, 256},
		{256, 200, 256},
		{256, 257, 512},
		{512, 5000, 8192},
	}
	for _, tc := range tests {
		if got := growCapacity(tc.cur, tc.need); got != tc.want {
			t.Errorf("growCapacity(%d, %d) = %d, want %d", tc.cur, tc.need, got, tc.want)
		}
	}
}

func TestAnchorTopLeft(t *testing.T) {
	src, dst := anchorTopLeft(600, 600, 800, 700)
	if src != (rect{0, 0, 600, 600}) {
		t.Fatalf("src = %+v", src)
	}
	if dst != (rect{0, 100, 600, 700}) {
		t.Fatalf("dst = %+v", dst)
	}

	// Shrinking pushes the bottom rows below the new canvas.
	_, dst = anchorTopLeft(600, 600, 300, 400)
	if dst != (rect{0, -200, 600, 400}) {
		t.Fatalf("shrunk dst = %+v", dst)
	}
}

func TestHalfSize(t *testing.T) {
	x, y := halfSize(32, 640, 320)
	if x != 0.05 || y != 0.1 {
		t.Fatalf("halfSize = (%v, %v), want (0.05, 0.1)", x, y)
	}
	if x, y := halfSize(32, 0, 10); x != 0 || y != 0 {
		t.Fatalf("empty viewport gave (%v, %v)", x, y)
	}
}

func TestColorToFloat(t *testing.T) {
	got := colorToFloat(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	want := [4]float32{1, 0, 0.2, 1}
	if got != want {
		t.Fatalf("colorToFloat = %v, want %v", got, want)
	}
}
