package hexmap

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with components in [0, 1], the layout the hex
// shader reads per instance.
type Color [4]float32

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
// A missing alpha component defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: hex string must have 6 or 8 digits", s)
	}
	var c Color
	c[3] = 1
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		c[i] = float32(v) / 255
	}
	return c, nil
}

// MustColor is ParseColor for compile-time constants; it panics on error.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", b[0], b[1], b[2], b[3])
}

// Bytes returns the color quantized to 0..255 per component.
func (c Color) Bytes() [4]uint8 {
	var b [4]uint8
	for i, v := range c {
		b[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return b
}

// Mix linearly interpolates toward other; weight 0 keeps c, weight 1
// gives other. The weight is clamped to [0, 1].
func (c Color) Mix(other Color, weight float32) Color {
	w := clamp01(weight)
	var out Color
	for i := range c {
		out[i] = c[i]*(1-w) + other[i]*w
	}
	return out
}

// Clamped returns the color with every component forced into [0, 1].
func (c Color) Clamped() Color {
	var out Color
	for i, v := range c {
		out[i] = clamp01(v)
	}
	return out
}

// Transparent reports whether the color is fully transparent.
func (c Color) Transparent() bool {
	return c[3] == 0
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// UnmarshalYAML accepts a hex color string, so config files can say
// outline_color: "#9999996A".
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML emits the hex string form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
