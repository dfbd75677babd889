package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/colornames"
	csscolors "golang.org/x/image/colornames"
)

// Parse reads a theme definition from an io.Reader.
// The format is a simple key-value pair per line: Key: colour, where colour
// is #RRGGBB, #RRGGBBAA, a CSS colour name or a material design name.
func Parse(r io.Reader) (*Theme, error) {
	t := Default() // Start with defaults
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if err := SetField(t, key, value); err != nil {
			return nil, err
		}
	}

	return t, scanner.Err()
}

// SetField assigns value to the theme field named key, ignoring case.
// Unknown keys are ignored for forward compatibility.
func SetField(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}

	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var field reflect.Value
	for i := 0; i < typ.NumField(); i++ {
		if strings.EqualFold(typ.Field(i).Name, key) {
			field = val.Field(i)
			break
		}
	}
	if !field.IsValid() {
		return nil
	}

	if field.Type() == reflect.TypeOf(color.RGBA{}) {
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		field.Set(reflect.ValueOf(col))
	}
	return nil
}

// ParseColor parses a hex colour string or a colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := csscolors.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		for name, c := range colornames.Map {
			if strings.EqualFold(name, s) {
				return c, nil
			}
		}
		return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		// #RRGGBB
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	} else if len(hex) == 8 {
		// #RRGGBBAA
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// ToHex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func ToHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
