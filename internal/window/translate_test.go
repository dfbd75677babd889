package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

func TestSizeEvent(t *testing.T) {
	e := sizeEvent(600, 400, 1200, 800)
	if e.WidthPx != 1200 || e.HeightPx != 800 {
		t.Fatalf("pixel size = %dx%d", e.WidthPx, e.HeightPx)
	}
	if e.PixelsPerPt != 2 {
		t.Fatalf("PixelsPerPt = %v, want 2", e.PixelsPerPt)
	}
	if e := sizeEvent(0, 0, 0, 0); e.PixelsPerPt != 1 {
		t.Fatalf("zero window PixelsPerPt = %v", e.PixelsPerPt)
	}
}

func TestMouseTranslation(t *testing.T) {
	if mouseButton(glfw.MouseButtonLeft) != mouse.ButtonLeft {
		t.Error("left button")
	}
	if mouseButton(glfw.MouseButtonRight) != mouse.ButtonRight {
		t.Error("right button")
	}
	if mouseButton(glfw.MouseButton4) != mouse.ButtonNone {
		t.Error("extra buttons map to none")
	}
	if mouseDirection(glfw.Press) != mouse.DirPress || mouseDirection(glfw.Release) != mouse.DirRelease {
		t.Error("direction")
	}
}

func TestKeyEvent(t *testing.T) {
	e := keyEvent(glfw.KeyS, glfw.Press, glfw.ModShift)
	if e.Rune != 's' || e.Code != key.CodeS || e.Direction != key.DirPress {
		t.Fatalf("unexpected event %+v", e)
	}
	if e.Modifiers&key.ModShift == 0 {
		t.Fatal("shift modifier lost")
	}
	esc := keyEvent(glfw.KeyEscape, glfw.Press, 0)
	if esc.Code != key.CodeEscape || esc.Rune != -1 {
		t.Fatalf("escape = %+v", esc)
	}
	if rel := keyEvent(glfw.KeyQ, glfw.Release, 0); rel.Direction != key.DirRelease {
		t.Fatalf("release = %+v", rel)
	}
	if rep := keyEvent(glfw.KeyQ, glfw.Repeat, 0); rep.Direction != key.DirNone {
		t.Fatalf("repeat = %+v", rep)
	}
}

func TestFramebufferScale(t *testing.T) {
	cases := []struct {
		name           string
		ww, wh, fw, fh int
		sx, sy         float64
	}{
		{"identity", 600, 600, 600, 600, 1, 1},
		{"hidpi", 600, 400, 1200, 800, 2, 2},
		{"non-uniform", 600, 400, 900, 1200, 1.5, 3},
		{"minimised", 0, 0, 0, 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := framebufferScale(tc.ww, tc.wh, tc.fw, tc.fh)
			if sx != tc.sx || sy != tc.sy {
				t.Fatalf("framebufferScale() = (%v, %v), want (%v, %v)", sx, sy, tc.sx, tc.sy)
			}
		})
	}
}
