// Package window opens the painter's glfw window and turns its callbacks
// into golang.org/x/mobile events.
package window

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Options configures the window.
type Options struct {
	Width  int
	Height int
	Title  string
}

// DefaultOptions returns the classic 600x600 painter window.
func DefaultOptions() Options {
	return Options{Width: 600, Height: 600, Title: "Simple 2D Painter"}
}

// Handler receives translated events. It returns true when the window
// should be repainted.
type Handler interface {
	Handle(e interface{}) (redraw bool)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(e interface{}) bool

// Handle calls f(e).
func (f HandlerFunc) Handle(e interface{}) bool { return f(e) }

// Window is an open glfw window with a current GL 3.3 core context.
type Window struct {
	win     *glfw.Window
	h       Handler
	redraw  bool
	closing bool

	posted chan interface{}
}

// New opens the window and initialises GL.
func New(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL version %s supported", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Window{win: win, posted: make(chan interface{}, 16)}, nil
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// Close asks the event loop to stop after the current iteration.
func (w *Window) Close() { w.closing = true }

// Destroy releases the window and terminates glfw.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

// Post queues e for delivery on the event loop and wakes it. It is safe to
// call from any goroutine. Events are dropped while the queue is full.
func (w *Window) Post(e interface{}) {
	select {
	case w.posted <- e:
	default:
		log.Printf("window: dropped posted %T", e)
	}
	glfw.PostEmptyEvent()
}

func (w *Window) drainPosted() {
	for {
		select {
		case e := <-w.posted:
			w.send(e)
		default:
			return
		}
	}
}

func (w *Window) send(e interface{}) {
	if w.h == nil {
		return
	}
	if w.h.Handle(e) {
		w.redraw = true
	}
}

func (w *Window) install() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, fw, fh int) {
		ww, wh := w.win.GetSize()
		w.send(sizeEvent(ww, wh, fw, fh))
		w.redraw = true
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, m glfw.ModifierKey) {
		x, y := w.cursorPx()
		w.send(mouse.Event{
			X:         x,
			Y:         y,
			Button:    mouseButton(b),
			Direction: mouseDirection(a),
			Modifiers: modifiers(m),
		})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, _, _ float64) {
		x, y := w.cursorPx()
		w.send(mouse.Event{X: x, Y: y, Direction: mouse.DirNone})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, m glfw.ModifierKey) {
		w.send(keyEvent(k, a, m))
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.send(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})
		w.closing = true
	})
}

// cursorPx returns the cursor position in framebuffer pixels.
func (w *Window) cursorPx() (float32, float32) {
	cx, cy := w.win.GetCursorPos()
	ww, wh := w.win.GetSize()
	fw, fh := w.win.GetFramebufferSize()
	sx, sy := framebufferScale(ww, wh, fw, fh)
	return float32(cx * sx), float32(cy * sy)
}

// Run delivers events to h until the window closes or ctx is done. The
// first event h sees is the initial size.Event.
func (w *Window) Run(ctx context.Context, h Handler) error {
	w.h = h
	w.install()
	defer func() { w.h = nil }()

	ww, wh := w.win.GetSize()
	fw, fh := w.win.GetFramebufferSize()
	w.send(sizeEvent(ww, wh, fw, fh))
	w.redraw = true

	for !w.closing && !w.win.ShouldClose() {
		select {
		case <-ctx.Done():
			w.send(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})
			return ctx.Err()
		default:
		}
		w.drainPosted()
		if w.redraw {
			w.redraw = false
			w.send(paint.Event{})
			w.win.SwapBuffers()
		}
		glfw.WaitEventsTimeout(0.1)
	}
	return nil
}
