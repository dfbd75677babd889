package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/example/brushpaint/internal/theme"
)

type yamlTheme struct {
	Name   string `yaml:"name"`
	Canvas string `yaml:"canvas"`
	Brush  string `yaml:"brush"`
}

type yamlConfig struct {
	Theme      string               `yaml:"theme,omitempty"`
	SaveDir    string               `yaml:"save_dir,omitempty"`
	ShaderDir  string               `yaml:"shader_dir,omitempty"`
	Title      string               `yaml:"title"`
	Width      int                  `yaml:"width"`
	Height     int                  `yaml:"height"`
	BrushSize  int                  `yaml:"brush_size"`
	BrushSigma float64              `yaml:"brush_sigma"`
	Notify     yamlNotify           `yaml:"notify"`
	Themes     map[string]yamlTheme `yaml:"themes,omitempty"`
}

type yamlNotify struct {
	Save bool `yaml:"save"`
	Copy bool `yaml:"copy"`
}

// YAML renders the configuration as YAML using the same key names as the
// rc format. Colours are written as hex.
func (c *Config) YAML() ([]byte, error) {
	out := yamlConfig{
		Theme:      c.Theme,
		SaveDir:    c.SaveDir,
		ShaderDir:  c.ShaderDir,
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		BrushSize:  c.BrushSize,
		BrushSigma: c.BrushSigma,
		Notify:     yamlNotify{Save: c.Notify.Save, Copy: c.Notify.Copy},
	}
	if len(c.Themes) > 0 {
		out.Themes = make(map[string]yamlTheme, len(c.Themes))
		for name, t := range c.Themes {
			out.Themes[name] = yamlTheme{Name: t.Name, Canvas: theme.ToHex(t.Canvas), Brush: theme.ToHex(t.Brush)}
		}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
