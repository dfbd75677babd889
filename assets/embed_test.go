package assets

import (
	"strings"
	"testing"

	"github.com/example/brushpaint/internal/shader"
)

func TestEmbeddedShadersComplete(t *testing.T) {
	fsys, err := Shaders()
	if err != nil {
		t.Fatalf("Shaders: %v", err)
	}
	for _, spec := range []shader.Spec{shader.BrushBake, shader.BrushStamp} {
		src, err := shader.Load(fsys, spec)
		if err != nil {
			t.Fatalf("load %s: %v", spec.Name, err)
		}
		for _, text := range []string{src.Vertex, src.Fragment, src.Geometry} {
			if !strings.HasPrefix(text, "#version 330") {
				t.Errorf("%s: shader does not target GLSL 3.30: %.40q", spec.Name, text)
			}
		}
	}
}

func TestShaderSourceCopy(t *testing.T) {
	a, err := ShaderSource("SolidColor.frag")
	if err != nil {
		t.Fatalf("ShaderSource: %v", err)
	}
	a[0] = 'X'
	b, err := ShaderSource("SolidColor.frag")
	if err != nil {
		t.Fatalf("ShaderSource: %v", err)
	}
	if b[0] == 'X' {
		t.Fatal("ShaderSource returned shared storage")
	}
	if _, err := ShaderSource("missing.frag"); err == nil {
		t.Fatal("expected error for missing shader")
	}
	if got := len(ShaderNames()); got != 6 {
		t.Fatalf("ShaderNames() has %d entries, want 6", got)
	}
}
