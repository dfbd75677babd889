package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"
)

// sizeEvent describes a window of ww by wh screen units backed by an fw by
// fh pixel framebuffer.
func sizeEvent(ww, wh, fw, fh int) size.Event {
	ppp := float32(1)
	if ww > 0 {
		ppp = float32(fw) / float32(ww)
	}
	return size.Event{
		WidthPx:     fw,
		HeightPx:    fh,
		WidthPt:     geom.Pt(ww),
		HeightPt:    geom.Pt(wh),
		PixelsPerPt: ppp,
	}
}

// framebufferScale returns the framebuffer pixels per screen unit along
// each axis. An axis with no size scales by 1.
func framebufferScale(ww, wh, fw, fh int) (sx, sy float64) {
	sx, sy = 1, 1
	if ww > 0 {
		sx = float64(fw) / float64(ww)
	}
	if wh > 0 {
		sy = float64(fh) / float64(wh)
	}
	return sx, sy
}

func mouseButton(b glfw.MouseButton) mouse.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return mouse.ButtonLeft
	case glfw.MouseButtonRight:
		return mouse.ButtonRight
	case glfw.MouseButtonMiddle:
		return mouse.ButtonMiddle
	}
	return mouse.ButtonNone
}

func mouseDirection(a glfw.Action) mouse.Direction {
	switch a {
	case glfw.Press:
		return mouse.DirPress
	case glfw.Release:
		return mouse.DirRelease
	}
	return mouse.DirNone
}

func keyDirection(a glfw.Action) key.Direction {
	switch a {
	case glfw.Press:
		return key.DirPress
	case glfw.Release:
		return key.DirRelease
	}
	return key.DirNone
}

func modifiers(m glfw.ModifierKey) key.Modifiers {
	var out key.Modifiers
	if m&glfw.ModShift != 0 {
		out |= key.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= key.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= key.ModMeta
	}
	return out
}

// keyEvent maps a glfw key to a key.Event. Printable keys carry their
// lower-case rune; glfw reports letters by their upper-case key code.
func keyEvent(k glfw.Key, a glfw.Action, m glfw.ModifierKey) key.Event {
	e := key.Event{Rune: -1, Direction: keyDirection(a), Modifiers: modifiers(m)}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		e.Rune = 'a' + rune(k-glfw.KeyA)
		e.Code = key.CodeA + key.Code(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		e.Rune = '0' + rune(k-glfw.Key0)
	case k == glfw.KeyEscape:
		e.Code = key.CodeEscape
	case k == glfw.KeySpace:
		e.Rune = ' '
		e.Code = key.CodeSpacebar
	}
	return e
}
