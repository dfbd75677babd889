// Package shader loads GLSL source files and links them into GL programs.
package shader

import (
	"fmt"
	"io/fs"
	"log"
)

// Spec names the source files of one program. Geometry is optional.
type Spec struct {
	Name     string
	Vertex   string
	Fragment string
	Geometry string
}

// BrushBake renders the gaussian brush into the offscreen texture.
var BrushBake = Spec{
	Name:     "brush bake",
	Vertex:   "backdrop.vert",
	Fragment: "backdrop.frag",
	Geometry: "PassThru.geom",
}

// BrushStamp expands each brush position into a textured quad.
var BrushStamp = Spec{
	Name:     "brush stamp",
	Vertex:   "PassThruFarPlane.vert",
	Fragment: "SolidColor.frag",
	Geometry: "PassThru_hw3.geom",
}

// Files lists the file names referenced by s.
func (s Spec) Files() []string {
	files := []string{s.Vertex, s.Fragment}
	if s.Geometry != "" {
		files = append(files, s.Geometry)
	}
	return files
}

// Sources holds the verbatim text of a Spec's files.
type Sources struct {
	Spec     Spec
	Vertex   string
	Fragment string
	Geometry string
}

// Load reads every file named by spec from fsys. A missing file is returned
// as an error wrapping fs.ErrNotExist.
func Load(fsys fs.FS, spec Spec) (Sources, error) {
	src := Sources{Spec: spec}
	var err error
	if src.Vertex, err = loadFile(fsys, spec.Vertex); err != nil {
		return Sources{}, err
	}
	if src.Fragment, err = loadFile(fsys, spec.Fragment); err != nil {
		return Sources{}, err
	}
	if spec.Geometry != "" {
		if src.Geometry, err = loadFile(fsys, spec.Geometry); err != nil {
			return Sources{}, err
		}
	}
	return src, nil
}

func loadFile(fsys fs.FS, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("shader file name is empty")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("unable to open file %s: %w", name, err)
	}
	log.Printf("file %s loaded", name)
	return string(data), nil
}

// Uses reports whether name is one of the files s reads.
func (s Spec) Uses(name string) bool {
	for _, f := range s.Files() {
		if f == name {
			return true
		}
	}
	return false
}
