// SPDX-License-Identifier: MIT
package themes

import "github.com/chromabags/chromabags/internal/colors"

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text drawn on top of Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Harmonic design
	Error           string // Rejected design
	Warning         string // Harmony warning
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	if palette == nil {
		palette = GetPalette("basica")
	}
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// contrastFor picks black or white text for a fill, the same way bag handles are picked
func contrastFor(fill colors.Color) string {
	return colors.SuggestHandleColor([]colors.Color{fill}).String()
}

// generateLightColors creates colors for light mode
func generateLightColors(palette *Palette) *Colors {
	primary := palette.Primary()
	return &Colors{
		Primary:         primary.String(),
		PrimaryContrast: contrastFor(primary),
		Secondary:       palette.Secondary().String(),
		Background:      "#ffffff",
		Surface:         "#f9fafb",
		Text:            "#000000",
		TextMuted:       "#6b7280",
		Border:          "#e5e7eb",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

// generateDarkColors keeps the palette hues and swaps the surfaces
func generateDarkColors(palette *Palette) *Colors {
	primary := palette.Primary()
	return &Colors{
		Primary:         primary.String(),
		PrimaryContrast: contrastFor(primary),
		Secondary:       palette.Secondary().String(),
		Background:      "#0f172a",
		Surface:         "#1e293b",
		Text:            "#f1f5f9",
		TextMuted:       "#94a3b8",
		Border:          "#334155",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}
