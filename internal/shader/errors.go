package shader

import "fmt"

// Stage identifies a shader stage in error reports.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageGeometry Stage = "geometry"
)

// CompileError carries the driver's info log for a shader that failed to
// compile.
type CompileError struct {
	Stage Stage
	File  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %s not compiled: %s", e.Stage, e.File, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %s not linked: %s", e.Program, e.Log)
}
