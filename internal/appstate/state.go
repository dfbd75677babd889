// Package appstate runs the interactive painter.
package appstate

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/mobile/event/paint"

	"github.com/example/brushpaint/internal/clipboard"
	"github.com/example/brushpaint/internal/glcanvas"
	"github.com/example/brushpaint/internal/notify"
	"github.com/example/brushpaint/internal/painter"
	"github.com/example/brushpaint/internal/shader"
	"github.com/example/brushpaint/internal/theme"
	"github.com/example/brushpaint/internal/window"
)

// ProgramTitle is the base window title.
const ProgramTitle = "Simple 2D Painter"

// DefaultOutput is the file name used by the save action.
const DefaultOutput = "painting.png"

// Canvas is the drawing surface the painter renders into.
type Canvas interface {
	Resize(w, h int)
	DrawPath(points []float32)
	Present()
	Clear()
	Snapshot() *image.RGBA
}

// Surface is the window hosting the canvas.
type Surface interface {
	SetTitle(title string)
	Close()
}

// AppState holds the painter's configuration and runtime state.
type AppState struct {
	Output     string
	SaveDir    string
	Theme      *theme.Theme
	Shaders    fs.FS
	Window     window.Options
	BrushSize  int
	BrushSigma float64

	watchDir string

	notifier *notify.Notifier
	titleFn  func(lastSaved string) string
	onClose  func()

	painter   *painter.Painter
	canvas    Canvas
	surface   Surface
	lastSaved string
	closeOnce sync.Once

	writeClipboard func(image.Image) error
	reload         func(name string)
}

// ShaderChanged is posted to the event loop when a watched shader file is
// modified.
type ShaderChanged struct {
	Name string
}

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Output:         DefaultOutput,
		Theme:          theme.Default(),
		Window:         window.DefaultOptions(),
		BrushSize:      32,
		BrushSigma:     0.35,
		writeClipboard: clipboard.WriteImage,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	a.painter = painter.New(painter.Size{Width: a.Window.Width, Height: a.Window.Height})
	return a
}

// Run loads the shaders, opens the window, bakes the brush and paints until
// the window closes or ctx is done. A missing shader file is returned as an
// error before any window is created. Compile and link failures are logged
// and painting continues.
func (a *AppState) Run(ctx context.Context) error {
	if a.Shaders == nil {
		return fmt.Errorf("no shader source configured")
	}
	bakeSrc, err := shader.Load(a.Shaders, shader.BrushBake)
	if err != nil {
		return err
	}
	stampSrc, err := shader.Load(a.Shaders, shader.BrushStamp)
	if err != nil {
		return err
	}

	win, err := window.New(a.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	r := glcanvas.New(glcanvas.Options{
		BrushSize:  a.BrushSize,
		BrushSigma: float32(a.BrushSigma),
		Background: a.Theme.Canvas,
		Brush:      a.Theme.Brush,
	})
	defer r.Close()
	r.Resize(win.FramebufferSize())

	if err := bakeBrush(r, bakeSrc); err != nil {
		return err
	}
	r.Clear()
	r.SetStamp(buildProgram(stampSrc))
	r.EnableBlending()

	a.canvas = r
	a.surface = win
	a.reload = func(name string) { a.reloadShader(r, name) }
	defer a.notifyClose()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.watchDir != "" {
		wait, err := a.watchShaders(ctx, win.Post)
		if err != nil {
			log.Printf("shader reload disabled: %v", err)
		} else {
			// Runs before win.Destroy so no Post reaches a terminated glfw.
			defer func() {
				cancel()
				wait()
			}()
		}
	}
	return win.Run(ctx, a)
}

// Handle feeds e to the painter and carries out the resulting action. It
// reports whether the window should be repainted.
func (a *AppState) Handle(e interface{}) bool {
	if sc, ok := e.(ShaderChanged); ok {
		if a.reload != nil {
			a.reload(sc.Name)
		}
		return true
	}
	switch a.painter.Handle(e) {
	case painter.ActionResize:
		s := a.painter.Size()
		if a.canvas != nil {
			a.canvas.Resize(s.Width, s.Height)
		}
		return true
	case painter.ActionRedraw:
		if _, ok := e.(paint.Event); ok {
			a.display()
			return false
		}
		return true
	case painter.ActionSave:
		if _, err := a.Save(); err != nil {
			log.Printf("save: %v", err)
		}
	case painter.ActionCopy:
		if err := a.Copy(); err != nil {
			log.Printf("copy: %v", err)
		}
	case painter.ActionClear:
		if a.canvas != nil {
			a.canvas.Clear()
		}
		return true
	case painter.ActionQuit:
		if a.surface != nil {
			a.surface.Close()
		}
		a.notifyClose()
	}
	return false
}

// buildProgram links src. Failures are logged and the returned program is
// used as is.
func buildProgram(src shader.Sources) shader.Program {
	prog, err := shader.Build(src)
	if err != nil {
		log.Printf("%s shader: %v", src.Spec.Name, err)
	}
	return prog
}

func bakeBrush(r *glcanvas.Renderer, src shader.Sources) error {
	prog := buildProgram(src)
	defer prog.Delete()
	return r.BakeBrush(prog)
}

// watchShaders posts a ShaderChanged event for every modified shader file.
// The returned wait blocks until forwarding has stopped, which happens once
// ctx ends.
func (a *AppState) watchShaders(ctx context.Context, post func(interface{})) (wait func(), err error) {
	changes, err := shader.Watch(ctx, a.watchDir, shader.BrushBake, shader.BrushStamp)
	if err != nil {
		return nil, err
	}
	log.Printf("watching %s for shader changes", a.watchDir)
	return forwardChanges(ctx, changes, post), nil
}

// forwardChanges delivers names from changes to post until the channel
// closes or ctx ends. Nothing is posted after ctx ends.
func forwardChanges(ctx context.Context, changes <-chan string, post func(interface{})) (wait func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case name, ok := <-changes:
				if !ok || ctx.Err() != nil {
					return
				}
				post(ShaderChanged{Name: name})
			}
		}
	}()
	return func() { <-done }
}

// reloadShader rebuilds every program that reads name. The previous program
// stays in use when the new sources cannot be read.
func (a *AppState) reloadShader(r *glcanvas.Renderer, name string) {
	if shader.BrushBake.Uses(name) {
		if src, err := shader.Load(a.Shaders, shader.BrushBake); err != nil {
			log.Printf("reload %s: %v", name, err)
		} else if err := bakeBrush(r, src); err != nil {
			log.Printf("rebake brush: %v", err)
		}
	}
	if shader.BrushStamp.Uses(name) {
		if src, err := shader.Load(a.Shaders, shader.BrushStamp); err != nil {
			log.Printf("reload %s: %v", name, err)
		} else {
			r.SetStamp(buildProgram(src))
		}
	}
}

// display stamps every pending brush position and presents the canvas.
func (a *AppState) display() {
	if a.canvas == nil {
		return
	}
	if pts := a.painter.Drain(); len(pts) > 0 {
		a.canvas.DrawPath(pts)
	}
	a.canvas.Present()
}

// OutputPath resolves the save location. Relative names are placed under
// SaveDir when one is configured.
func (a *AppState) OutputPath() string {
	out := a.Output
	if out == "" {
		out = DefaultOutput
	}
	if a.SaveDir != "" && !filepath.IsAbs(out) {
		out = filepath.Join(a.SaveDir, out)
	}
	return out
}

// Save writes the canvas as a PNG and returns the path written.
func (a *AppState) Save() (string, error) {
	if a.canvas == nil {
		return "", fmt.Errorf("no canvas to save")
	}
	path := a.OutputPath()
	if err := writePNG(path, a.canvas.Snapshot()); err != nil {
		return "", err
	}
	log.Printf("saved %s", path)
	a.lastSaved = path
	if a.surface != nil && a.titleFn != nil {
		a.surface.SetTitle(a.titleFn(path))
	}
	a.notifier.Save(path)
	return path, nil
}

// Copy publishes the canvas to the system clipboard.
func (a *AppState) Copy() error {
	if a.canvas == nil {
		return fmt.Errorf("no canvas to copy")
	}
	img := a.canvas.Snapshot()
	if err := a.writeClipboard(img); err != nil {
		return fmt.Errorf("copy canvas to clipboard: %w", err)
	}
	a.notifier.Copy("canvas", img)
	return nil
}

// LastSaved returns the path of the most recent save, if any.
func (a *AppState) LastSaved() string { return a.lastSaved }

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
