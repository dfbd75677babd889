package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/example/brushpaint/assets"
	"github.com/example/brushpaint/internal/appstate"
	"github.com/example/brushpaint/internal/window"
)

type paintCmd struct {
	*root
	fs         *flag.FlagSet
	output     string
	saveDir    string
	shaderDir  string
	watch      bool
	title      string
	width      int
	height     int
	brushSize  int
	brushSigma float64
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.Usage = usageFunc(p)
	cfg := r.config
	fs.StringVar(&p.output, "output", appstate.DefaultOutput, "file written when s is pressed")
	fs.StringVar(&p.saveDir, "save-dir", cfg.SaveDir, "directory relative output paths are saved under")
	fs.StringVar(&p.shaderDir, "shaders", cfg.ShaderDir, "read shader sources from this directory instead of the built-in set")
	fs.BoolVar(&p.watch, "watch", false, "rebuild shaders when files in the -shaders directory change")
	fs.StringVar(&p.title, "title", cfg.Title, "window title")
	fs.IntVar(&p.width, "width", cfg.Width, "initial window width in pixels")
	fs.IntVar(&p.height, "height", cfg.Height, "initial window height in pixels")
	fs.IntVar(&p.brushSize, "brush-size", cfg.BrushSize, "stamped brush diameter in pixels")
	fs.Float64Var(&p.brushSigma, "brush-sigma", cfg.BrushSigma, "gaussian falloff of the brush, relative to its radius")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.width <= 0 || p.height <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", p.width, p.height)
	}
	if p.watch && p.shaderDir == "" {
		return nil, fmt.Errorf("-watch requires -shaders")
	}
	if p.brushSize <= 0 {
		return nil, fmt.Errorf("brush size must be positive, got %d", p.brushSize)
	}
	if p.brushSigma <= 0 {
		return nil, fmt.Errorf("brush sigma must be positive, got %g", p.brushSigma)
	}
	return p, nil
}

// shaderSource picks the directory shader files are read from.
func (p *paintCmd) shaderSource() (fs.FS, error) {
	if p.shaderDir != "" {
		return os.DirFS(p.shaderDir), nil
	}
	return assets.Shaders()
}

func (p *paintCmd) Run() error {
	shaders, err := p.shaderSource()
	if err != nil {
		return err
	}
	title := p.title
	opts := []appstate.Option{
		appstate.WithOutput(p.output),
		appstate.WithSaveDir(p.saveDir),
		appstate.WithTheme(p.activeTheme),
		appstate.WithShaders(shaders),
		appstate.WithWindow(window.Options{Width: p.width, Height: p.height, Title: windowTitle(titleOptions{Title: title})}),
		appstate.WithBrush(p.brushSize, p.brushSigma),
		appstate.WithNotifier(p.notifier),
		appstate.WithTitle(func(lastSaved string) string {
			return windowTitle(titleOptions{Title: title, LastSaved: lastSaved})
		}),
	}
	if p.watch {
		opts = append(opts, appstate.WithShaderWatch(p.shaderDir))
	}
	state := appstate.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := state.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
