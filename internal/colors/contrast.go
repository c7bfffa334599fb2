// SPDX-License-Identifier: MIT
package colors

import "math"

// ContrastRatio computes the WCAG contrast ratio between two colors. The
// result is symmetric and at least 1.
func ContrastRatio(a, b Color) float64 {
	la := luminance(a)
	lb := luminance(b)

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05)
}

func luminance(c Color) float64 {
	rgb := c.RGB()
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// SuggestHandleColor picks white or black handles for a bag body. White wins
// only when its mean contrast against the body colors is strictly greater;
// ties and an empty body fall back to black.
func SuggestHandleColor(body []Color) Color {
	if len(body) == 0 {
		return Black
	}

	var whiteSum, blackSum float64
	for _, c := range body {
		whiteSum += ContrastRatio(c, White)
		blackSum += ContrastRatio(c, Black)
	}

	n := float64(len(body))
	if whiteSum/n > blackSum/n {
		return White
	}
	return Black
}

// IsNeutral reports whether c is pure white or pure black. Handles default to
// these and they are left out of harmony checks.
func IsNeutral(c Color) bool {
	return c == White || c == Black
}
