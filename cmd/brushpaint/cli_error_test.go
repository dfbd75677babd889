package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/brushpaint/internal/config"
	"github.com/example/brushpaint/internal/theme"
)

func testRoot() *root {
	return &root{program: "brushpaint", config: config.New(), activeTheme: theme.Default()}
}

func TestParsePaintRejectsBadSize(t *testing.T) {
	_, err := parsePaintCmd([]string{"-width", "0"}, testRoot())
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "window size must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParsePaintRejectsOperands(t *testing.T) {
	_, err := parsePaintCmd([]string{"extra"}, testRoot())
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if help := uerr.Error(); !strings.Contains(help, "brushpaint paint") {
		t.Fatalf("help does not name the command: %q", help)
	}
}

func TestPaintUsesConfigDefaults(t *testing.T) {
	r := testRoot()
	r.config.Width = 320
	r.config.ShaderDir = "/opt/shaders"
	p, err := parsePaintCmd(nil, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.width != 320 || p.height != config.DefaultHeight {
		t.Fatalf("size = %dx%d", p.width, p.height)
	}
	if p.shaderDir != "/opt/shaders" {
		t.Fatalf("shader dir = %q", p.shaderDir)
	}
}

func TestPaintShaderSourceFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "backdrop.vert"), []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := parsePaintCmd([]string{"-shaders", dir}, testRoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fsys, err := p.shaderSource()
	if err != nil {
		t.Fatalf("shaderSource: %v", err)
	}
	data, err := readFS(fsys, "backdrop.vert")
	if err != nil || data != "custom" {
		t.Fatalf("read = %q, %v", data, err)
	}
	if _, err := readFS(fsys, "SolidColor.frag"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file, got %v", err)
	}
}

func TestPaintShaderSourceEmbedded(t *testing.T) {
	p, err := parsePaintCmd(nil, testRoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fsys, err := p.shaderSource()
	if err != nil {
		t.Fatalf("shaderSource: %v", err)
	}
	if data, err := readFS(fsys, "PassThru_hw3.geom"); err != nil || !strings.Contains(data, "#version 330") {
		t.Fatalf("embedded geometry shader = %q, %v", data, err)
	}
}

func TestBrushCmdWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "brush.png")
	cmd, err := parseBrushCmd([]string{"-output", out, "-size", "16", "-scale", "2"}, testRoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}
}

func TestBrushCmdRejectsBadSigma(t *testing.T) {
	if _, err := parseBrushCmd([]string{"-sigma", "0"}, testRoot()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestConfigWithoutSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd(nil, testRoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var uerr *UsageError
	if err := cmd.Run(); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestConfigSaveWritesDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv(config.EnvConfigPath, "")
	t.Chdir(home)

	r := testRoot()
	r.config.Theme = "night"
	cmd, err := parseConfigCmd([]string{"save"}, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(home, "xdg", "brushpaint", "config.rc"))
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "theme = night") {
		t.Fatalf("saved config missing theme:\n%s", data)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	r := newRoot()
	var uerr *UsageError
	if err := r.Run([]string{"bogus"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestResolveThemePrecedence(t *testing.T) {
	t.Setenv("BRUSHPAINT_THEME", "night")
	r := testRoot()
	r.config.Theme = "paper"
	if got := r.resolveTheme().Name; got != "night" {
		t.Fatalf("env theme = %q, want night", got)
	}
	r.themeName = "paper"
	if got := r.resolveTheme().Name; got != "paper" {
		t.Fatalf("flag theme = %q, want paper", got)
	}
	t.Setenv("BRUSHPAINT_THEME", "")
	r.themeName = ""
	r.config.Themes["paper"] = &theme.Theme{Name: "custom-paper"}
	if got := r.resolveTheme().Name; got != "custom-paper" {
		t.Fatalf("config theme = %q, want custom-paper", got)
	}
}

func TestThemesListsConfigExtras(t *testing.T) {
	r := testRoot()
	r.config.Themes["zebra"] = &theme.Theme{Name: "zebra"}
	r.config.Themes["night"] = &theme.Theme{Name: "night"}
	cmd, err := parseThemesCmd(nil, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := cmd.names()
	if names[len(names)-1] != "zebra" {
		t.Fatalf("names = %v, want zebra last", names)
	}
	count := 0
	for _, n := range names {
		if n == "night" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("night listed %d times in %v", count, names)
	}
}

func TestParsePaintWatchNeedsShaders(t *testing.T) {
	_, err := parsePaintCmd([]string{"-watch"}, testRoot())
	if err == nil || !strings.Contains(err.Error(), "-watch requires -shaders") {
		t.Fatalf("expected -watch error, got %v", err)
	}
	if _, err := parsePaintCmd([]string{"-watch", "-shaders", t.TempDir()}, testRoot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigPrintRejectsUnknownFormat(t *testing.T) {
	cmd, err := parseConfigCmd([]string{"-format", "ini", "print"}, testRoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown config format") {
		t.Fatalf("expected format error, got %v", err)
	}
}
