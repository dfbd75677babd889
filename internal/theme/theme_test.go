package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#218A21", color.RGBA{0x21, 0x8A, 0x21, 0xFF}},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}},
		{"forestgreen", color.RGBA{34, 139, 34, 255}},
		{"ForestGreen", color.RGBA{34, 139, 34, 255}},
		{"ivory", color.RGBA{255, 255, 240, 255}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "not-a-colour"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestParseMaterialName(t *testing.T) {
	c, err := ParseColor("grey900")
	if err != nil {
		t.Fatalf("material name: %v", err)
	}
	if c.A != 255 || c.R > 0x40 {
		t.Fatalf("unexpected Grey900 %+v", c)
	}
}

func TestParseTheme(t *testing.T) {
	input := `
# comment
Name: custom
Canvas: #000000
brush: #FF0000
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Canvas != (color.RGBA{0, 0, 0, 255}) || th.Brush != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("unexpected colours %+v", th)
	}
	if _, err := Parse(strings.NewReader("Canvas: #12")); err == nil {
		t.Fatal("expected error for bad colour")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\nCanvas: #010203\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, SystemDir: filepath.Join(dir, "missing")}

	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load(mine): %v", err)
	}
	if th.Canvas != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("canvas = %+v", th.Canvas)
	}

	th, err = l.Load("night")
	if err != nil {
		t.Fatalf("Load(night): %v", err)
	}
	if th.Name != "night" {
		t.Fatalf("embedded theme name = %q", th.Name)
	}

	th, err = l.Load(filepath.Join(dir, "mine.theme"))
	if err != nil || th.Name != "mine" {
		t.Fatalf("Load(path) = %+v, %v", th, err)
	}

	if th, err := l.Load(""); err != nil || th.Name != Default().Name {
		t.Fatalf("Load(\"\") = %+v, %v", th, err)
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	names := EmbeddedNames()
	if len(names) == 0 {
		t.Fatal("no embedded themes")
	}
	l := &Loader{}
	for _, name := range names {
		if _, err := l.Load(name); err != nil {
			t.Errorf("embedded theme %s: %v", name, err)
		}
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(color.RGBA{0x21, 0x8A, 0x21, 0xFF}); got != "#218A21" {
		t.Errorf("opaque = %s", got)
	}
	if got := ToHex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("translucent = %s", got)
	}
}
