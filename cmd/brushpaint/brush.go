package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/example/brushpaint/internal/render"
)

type brushCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	size   int
	scale  int
	sigma  float64
}

func (b *brushCmd) FlagSet() *flag.FlagSet {
	return b.fs
}

func parseBrushCmd(args []string, r *root) (*brushCmd, error) {
	fs := flag.NewFlagSet("brush", flag.ExitOnError)
	b := &brushCmd{root: r, fs: fs}
	fs.Usage = usageFunc(b)
	defaults := render.DefaultBrushOptions()
	fs.StringVar(&b.output, "output", "brush.png", "write the brush to this file path")
	fs.IntVar(&b.size, "size", defaults.Size, "edge length of the rendered brush in pixels")
	fs.IntVar(&b.scale, "scale", 1, "resample the brush by this factor after rendering")
	fs.Float64Var(&b.sigma, "sigma", defaults.Sigma, "gaussian falloff relative to the brush radius")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: b}
	}
	if b.size <= 0 {
		return nil, fmt.Errorf("brush size must be positive, got %d", b.size)
	}
	if b.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %d", b.scale)
	}
	if b.sigma <= 0 {
		return nil, fmt.Errorf("sigma must be positive, got %g", b.sigma)
	}
	return b, nil
}

func (b *brushCmd) image() image.Image {
	opts := render.DefaultBrushOptions()
	opts.Size = b.size
	opts.Sigma = b.sigma
	if b.activeTheme != nil {
		opts.Color = b.activeTheme.Brush
	}
	img := render.Gaussian(opts)
	if b.scale > 1 {
		return render.Scale(img, b.size*b.scale, b.size*b.scale)
	}
	return img
}

func (b *brushCmd) Run() error {
	f, err := os.Create(b.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", b.output, err)
	}
	if err := png.Encode(f, b.image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", b.output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", b.output, err)
	}
	fmt.Fprintf(os.Stderr, "brush written to %s\n", b.output)
	return nil
}
