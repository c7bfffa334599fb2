// SPDX-License-Identifier: MIT

// Package colors implements the color math used by the bag designer:
// hex/RGB/HSV conversion, harmony derivation and validation, and
// WCAG contrast ratios.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a hex string is not exactly six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is a color as three channels in [0,255].
type RGB struct {
	R, G, B int
}

// HSV is a color as hue in degrees [0,360) and saturation/value as percentages [0,100].
type HSV struct {
	H, S, V float64
}

// Color is an opaque sRGB color. The zero value is black.
type Color struct {
	r, g, b uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// ParseHex parses "rrggbb" or "#rrggbb" (any case).
func ParseHex(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	return Color{r: uint8(n >> 16), g: uint8(n >> 8), b: uint8(n)}, nil
}

// MustParseHex is ParseHex for constants and tests.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(fmt.Sprintf("invalid color %q: %v", s, err))
	}
	return c
}

// FromRGB builds a Color, clamping each channel into [0,255].
func FromRGB(rgb RGB) Color {
	return Color{r: clamp255(rgb.R), g: clamp255(rgb.G), b: clamp255(rgb.B)}
}

// FromHSV builds a Color from hue/saturation/value.
func FromHSV(hsv HSV) Color {
	return FromRGB(HSVToRGB(hsv))
}

// Hex returns the canonical form: six lowercase digits without '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.r, c.g, c.b)
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return "#" + c.Hex()
}

func (c Color) RGB() RGB {
	return RGB{R: int(c.r), G: int(c.g), B: int(c.b)}
}

func (c Color) HSV() HSV {
	return RGBToHSV(c.RGB())
}

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseHex accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HexToRGB parses a hex string into its channels.
func HexToRGB(hex string) (RGB, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB(), nil
}

// RGBToHex clamps the channels and encodes them as six lowercase hex digits.
func RGBToHex(rgb RGB) string {
	return FromRGB(rgb).Hex()
}

// RGBToHSV converts 0-255 channels to hue degrees and percentages.
func RGBToHSV(rgb RGB) HSV {
	c := colorful.Color{
		R: float64(clampInt(rgb.R)) / 255,
		G: float64(clampInt(rgb.G)) / 255,
		B: float64(clampInt(rgb.B)) / 255,
	}
	h, s, v := c.Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}
}

// HSVToRGB converts back to 0-255 channels. Channels are truncated, not
// rounded, so a round trip may lose one unit per channel.
func HSVToRGB(hsv HSV) RGB {
	c := colorful.Hsv(normalizeHue(hsv.H), clampUnit(hsv.S/100), clampUnit(hsv.V/100))
	return RGB{R: truncate255(c.R), G: truncate255(c.G), B: truncate255(c.B)}
}

// normalizeHue maps any angle into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// truncate255 scales a unit channel to 0-255 and truncates. The epsilon
// absorbs float noise like 0.99999999 * 255.
func truncate255(v float64) int {
	return clampInt(int(math.Floor(v*255 + 1e-9)))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clamp255(v int) uint8 {
	return uint8(clampInt(v))
}
