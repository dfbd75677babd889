package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/brushpaint/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme      string
	SaveDir    string
	ShaderDir  string
	Title      string
	Width      int
	Height     int
	BrushSize  int
	BrushSigma float64
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// Defaults used when the config file leaves a value unset.
const (
	DefaultTitle      = "Simple 2D Painter"
	DefaultWidth      = 600
	DefaultHeight     = 600
	DefaultBrushSize  = 32
	DefaultBrushSigma = 0.35
)

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:      "", // Default to empty to allow fallback to Env/Default
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		BrushSize:  DefaultBrushSize,
		BrushSigma: DefaultBrushSigma,
		Themes:     make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.ShaderDir != "" {
		fmt.Fprintf(&sb, "shader_dir = %s\n", c.ShaderDir)
	}
	fmt.Fprintf(&sb, "title = %q\n", c.Title)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "brush_size = %d\n", c.BrushSize)
	fmt.Fprintf(&sb, "brush_sigma = %s\n", strconv.FormatFloat(c.BrushSigma, 'g', -1, 64))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Canvas: %s\n", theme.ToHex(t.Canvas))
		fmt.Fprintf(&sb, "Brush: %s\n", theme.ToHex(t.Brush))
		sb.WriteString("\n")
	}

	return sb.String()
}
