package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/brushpaint/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value. Colour values may start with '#', so
		// the first separator wins.
		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		value := strings.TrimSpace(line[sep+1:])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			if unq, err := strconv.Unquote(value); err == nil {
				value = unq
			} else {
				value = value[1 : len(value)-1]
			}
		}

		switch {
		case currentTheme != nil:
			if err := theme.SetField(currentTheme, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "shader_dir":
		cfg.ShaderDir = value
	case "title":
		cfg.Title = value
	case "width":
		return setPositiveInt(&cfg.Width, key, value)
	case "height":
		return setPositiveInt(&cfg.Height, key, value)
	case "brush_size":
		return setPositiveInt(&cfg.BrushSize, key, value)
	case "brush_sigma":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
		if f <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
		cfg.BrushSigma = f
	}
	return nil
}

func setPositiveInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n <= 0 {
		return fmt.Errorf("%s must be positive", key)
	}
	*dst = n
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
