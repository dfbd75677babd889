package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves theme names against the embedded set and the theme
// directories on disk.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "brushpaint", "themes"),
		SystemDir: "/usr/share/brushpaint/themes",
	}
}

// Load returns the theme called name. Lookup order: an existing file path,
// the embedded themes, ConfigDir, then SystemDir. An empty name is the
// default theme.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	sources := []fs.FS{mustSub(EmbeddedThemes, "defaults")}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir != "" {
			sources = append(sources, os.DirFS(dir))
		}
	}
	for _, fsys := range sources {
		t, err := parseFile(fsys, filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return t, err
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(fsys fs.FS, name string) (*Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
