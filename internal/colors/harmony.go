// SPDX-License-Identifier: MIT
package colors

import (
	"math"
	"strings"
)

// Scheme names a harmony rule.
type Scheme string

const (
	Complementary Scheme = "complementary"
	Analogous     Scheme = "analogous"
	Harmonic      Scheme = "harmonic"
)

// DefaultAnalogousAngle is the hue offset used for analogous colors.
const DefaultAnalogousAngle = 30.0

// ParseScheme normalizes a scheme tag. The Spanish tags stored by older
// catalogs map onto their English names; unknown tags pass through unchanged
// and validate permissively.
func ParseScheme(s string) Scheme {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return Harmonic
	case "complementario":
		return Complementary
	case "analogo", "análogo":
		return Analogous
	case "armonico", "armónico":
		return Harmonic
	default:
		return Scheme(v)
	}
}

// Schemes lists the known schemes in display order.
func Schemes() []Scheme {
	return []Scheme{Harmonic, Complementary, Analogous}
}

// ComplementaryOf rotates the hue by 180 degrees.
func ComplementaryOf(c Color) Color {
	return rotate(c, 180)
}

// AnalogousOf returns the colors at hue-angle and hue+angle.
func AnalogousOf(c Color, angle float64) [2]Color {
	return [2]Color{rotate(c, -angle), rotate(c, angle)}
}

// TriadicOf returns the colors at hue+120 and hue+240.
func TriadicOf(c Color) [2]Color {
	return [2]Color{rotate(c, 120), rotate(c, 240)}
}

func rotate(c Color, degrees float64) Color {
	hsv := c.HSV()
	hsv.H = normalizeHue(hsv.H + degrees)
	return FromHSV(hsv)
}

// HueDistance is the shortest arc between two hues on the color wheel.
func HueDistance(a, b Color) float64 {
	diff := math.Abs(a.HSV().H - b.HSV().H)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// ValidateHarmony reports whether colors satisfy scheme. Fewer than two
// colors always pass.
//
// complementary checks only the first two colors (150-210 degrees apart),
// analogous requires every consecutive pair within 60 degrees, and harmonic
// only rejects consecutive pairs closer than 10 degrees.
func ValidateHarmony(colors []Color, scheme Scheme) bool {
	if len(colors) < 2 {
		return true
	}

	switch ParseScheme(string(scheme)) {
	case Complementary:
		diff := HueDistance(colors[0], colors[1])
		return diff >= 150 && diff <= 210
	case Analogous:
		for i := 0; i < len(colors)-1; i++ {
			if HueDistance(colors[i], colors[i+1]) > 60 {
				return false
			}
		}
		return true
	case Harmonic:
		for i := 0; i < len(colors)-1; i++ {
			if HueDistance(colors[i], colors[i+1]) < 10 {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Suggest proposes replacement colors derived from the first color when the
// set fails its scheme. Valid sets and schemes without a derivation yield nil.
func Suggest(colors []Color, scheme Scheme) []Color {
	if len(colors) == 0 || ValidateHarmony(colors, scheme) {
		return nil
	}

	switch ParseScheme(string(scheme)) {
	case Complementary:
		return []Color{ComplementaryOf(colors[0])}
	case Analogous:
		pair := AnalogousOf(colors[0], DefaultAnalogousAngle)
		return pair[:]
	default:
		return nil
	}
}
