package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// Embedded default shader sources for brushpaint.
//
//go:embed shaders/*.vert shaders/*.frag shaders/*.geom
var embeddedShaders embed.FS

var (
	shadersOnce sync.Once
	shadersFS   fs.FS
	shadersErr  error
)

func loadShaders() {
	shadersFS, shadersErr = fs.Sub(embeddedShaders, "shaders")
}

// Shaders returns the embedded shader directory. File names are the bare
// names the renderer asks for, such as "backdrop.vert".
func Shaders() (fs.FS, error) {
	shadersOnce.Do(loadShaders)
	return shadersFS, shadersErr
}

// ShaderSource returns a copy of one embedded shader file.
func ShaderSource(name string) ([]byte, error) {
	fsys, err := Shaders()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("shader %s not embedded", name)
	}
	return data, nil
}

// ShaderNames lists the embedded shader files in lexical order.
func ShaderNames() []string {
	fsys, err := Shaders()
	if err != nil {
		return nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
