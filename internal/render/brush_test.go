package render

import (
	"image"
	"image/color"
	"testing"
)

func TestGaussianShape(t *testing.T) {
	opts := DefaultBrushOptions()
	img := Gaussian(opts)
	if !img.Bounds().Eq(image.Rect(0, 0, 128, 128)) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	centre := img.RGBAAt(64, 64).A
	if centre < 250 {
		t.Fatalf("centre alpha = %d, want close to 255", centre)
	}
	if corner := img.RGBAAt(0, 0).A; corner != 0 {
		t.Fatalf("corner alpha = %d, want 0 outside the disc", corner)
	}
	mid := img.RGBAAt(96, 64).A
	if mid == 0 || mid >= centre {
		t.Fatalf("alpha should fall off from the centre: centre=%d mid=%d", centre, mid)
	}
	// Symmetric about both axes.
	if a, b := img.RGBAAt(40, 64), img.RGBAAt(87, 64); a != b {
		t.Fatalf("not symmetric: %+v vs %+v", a, b)
	}
}

func TestGaussianTint(t *testing.T) {
	opts := BrushOptions{Size: 8, Sigma: 1, Color: color.RGBA{R: 255, A: 255}}
	img := Gaussian(opts)
	c := img.RGBAAt(4, 4)
	if c.G != 0 || c.B != 0 || c.R != c.A {
		t.Fatalf("unexpected tinted pixel %+v", c)
	}
}

func TestGaussianDegenerate(t *testing.T) {
	if img := Gaussian(BrushOptions{Size: 0}); !img.Bounds().Empty() {
		t.Fatalf("expected empty image, got %v", img.Bounds())
	}
	if got := Coverage(0.5, 0.5, 0); got != 0 {
		t.Fatalf("zero sigma coverage = %v", got)
	}
	if got := Coverage(0.5, 0.5, 0.35); got != 1 {
		t.Fatalf("centre coverage = %v, want 1", got)
	}
}

func TestScale(t *testing.T) {
	img := Gaussian(BrushOptions{Size: 16, Sigma: 0.5, Color: color.RGBA{255, 255, 255, 255}})
	out := Scale(img, 64, 64)
	if !out.Bounds().Eq(image.Rect(0, 0, 64, 64)) {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	if out.RGBAAt(32, 32).A == 0 {
		t.Fatal("scaled brush lost its centre")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	top := color.RGBA{R: 255, A: 255}
	bottom := color.RGBA{B: 255, A: 255}
	img.SetRGBA(0, 0, top)
	img.SetRGBA(1, 2, bottom)
	FlipVertical(img)
	if got := img.RGBAAt(0, 2); got != top {
		t.Fatalf("top row not moved down: %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != bottom {
		t.Fatalf("bottom row not moved up: %+v", got)
	}
	FlipVertical(nil)
}
