package painter

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// Action tells the caller what to do after an event has been handled.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionResize
	ActionSave
	ActionCopy
	ActionClear
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionRedraw:
		return "redraw"
	case ActionResize:
		return "resize"
	case ActionSave:
		return "save"
	case ActionCopy:
		return "copy"
	case ActionClear:
		return "clear"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Painter turns input events into brush positions.
//
// The zero value is ready to use but has no size, so every motion maps to
// the origin until a size.Event arrives.
type Painter struct {
	drawing bool
	size    Size
	path    Path
}

// New returns a Painter for a window of the given size.
func New(s Size) *Painter {
	return &Painter{size: s}
}

// Size returns the last size reported by a size.Event.
func (p *Painter) Size() Size { return p.size }

// Drawing reports whether the left button is currently held.
func (p *Painter) Drawing() bool { return p.drawing }

// Pending reports how many positions wait for the next display pass.
func (p *Painter) Pending() int { return p.path.Len() }

// Drain hands the accumulated positions to the display pass.
func (p *Painter) Drain() []float32 { return p.path.Drain() }

// Handle updates the painter with e and returns the follow-up action.
// Unknown event types are ignored.
func (p *Painter) Handle(e interface{}) Action {
	switch e := e.(type) {
	case size.Event:
		p.size = Size{Width: e.WidthPx, Height: e.HeightPx}
		return ActionResize
	case mouse.Event:
		return p.handleMouse(e)
	case key.Event:
		return p.handleKey(e)
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			p.drawing = false
			return ActionQuit
		}
	case paint.Event:
		return ActionRedraw
	}
	return ActionNone
}

func (p *Painter) handleMouse(e mouse.Event) Action {
	switch e.Direction {
	case mouse.DirPress, mouse.DirRelease:
		// Any button event other than a left press ends the stroke.
		p.drawing = e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
		return ActionNone
	case mouse.DirNone:
		if p.drawing {
			p.path.Append(ToNDC(e.X, e.Y, p.size))
		}
		return ActionRedraw
	}
	return ActionNone
}

func (p *Painter) handleKey(e key.Event) Action {
	if e.Direction != key.DirPress {
		return ActionNone
	}
	if e.Code == key.CodeEscape {
		return ActionQuit
	}
	switch e.Rune {
	case 's', 'S':
		return ActionSave
	case 'c', 'C':
		return ActionCopy
	case 'x', 'X':
		p.path.Reset()
		return ActionClear
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
