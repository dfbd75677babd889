package shader

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// PositionAttrib is the attribute location bound to in_Position.
const PositionAttrib = 0

// Program is a linked GL program.
type Program struct {
	ID   uint32
	Name string
}

// Build compiles and links src. The program id is returned even when
// compilation or linking fails so the caller can decide whether to keep
// rendering with it; the returned error then joins every CompileError and
// LinkError reported by the driver.
func Build(src Sources) (Program, error) {
	var errs []error
	type stage struct {
		kind  uint32
		stage Stage
		file  string
		text  string
	}
	stages := []stage{
		{gl.VERTEX_SHADER, StageVertex, src.Spec.Vertex, src.Vertex},
		{gl.FRAGMENT_SHADER, StageFragment, src.Spec.Fragment, src.Fragment},
	}
	if src.Spec.Geometry != "" {
		stages = append(stages, stage{gl.GEOMETRY_SHADER, StageGeometry, src.Spec.Geometry, src.Geometry})
	}

	prog := Program{ID: gl.CreateProgram(), Name: src.Spec.Name}
	name := gl.Str("in_Position\x00")
	gl.BindAttribLocation(prog.ID, PositionAttrib, name)

	shaders := make([]uint32, 0, len(stages))
	for _, s := range stages {
		id, err := compile(s.kind, s.text)
		if err != nil {
			errs = append(errs, &CompileError{Stage: s.stage, File: s.file, Log: err.Error()})
		}
		gl.AttachShader(prog.ID, id)
		shaders = append(shaders, id)
	}

	gl.LinkProgram(prog.ID)
	var status int32
	gl.GetProgramiv(prog.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		errs = append(errs, &LinkError{Program: src.Spec.Name, Log: programLog(prog.ID)})
	}

	for _, id := range shaders {
		gl.DetachShader(prog.ID, id)
		gl.DeleteShader(id)
	}
	gl.UseProgram(0)
	return prog, errors.Join(errs...)
}

func compile(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return shader, errors.New(shaderLog(shader))
	}
	return shader, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

// Use makes p the active program.
func (p Program) Use() { gl.UseProgram(p.ID) }

// Uniform returns the location of the named uniform, or -1.
func (p Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

// Delete releases the program.
func (p Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
}
