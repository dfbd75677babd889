package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/brushpaint/assets"
)

type shadersCmd struct {
	*root
	fs    *flag.FlagSet
	dump  string
	force bool
}

func (c *shadersCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseShadersCmd(args []string, r *root) (*shadersCmd, error) {
	fs := flag.NewFlagSet("shaders", flag.ExitOnError)
	c := &shadersCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.dump, "dump", "", "write the built-in shaders into this directory")
	fs.BoolVar(&c.force, "force", false, "overwrite files that already exist when dumping")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *shadersCmd) Run() error {
	names := assets.ShaderNames()
	if c.dump == "" {
		for _, name := range names {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}
	if err := os.MkdirAll(c.dump, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.dump, err)
	}
	for _, name := range names {
		path := filepath.Join(c.dump, name)
		if !c.force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use -force to overwrite", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		data, err := assets.ShaderSource(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	fmt.Fprintf(os.Stderr, "%d shaders written to %s\n", len(names), c.dump)
	return nil
}
