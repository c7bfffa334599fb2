// SPDX-License-Identifier: MIT
package themes

import "github.com/chromabags/chromabags/internal/colors"

// Swatch is a named workshop color
type Swatch struct {
	Name string
	Hex  string // #RRGGBB
}

// Palette is a set of workshop colors chosen around one harmony scheme
type Palette struct {
	Name        string // "basica", "tierra", etc.
	Scheme      colors.Scheme
	Description string
	Swatches    []Swatch
}

// Colors parses the palette swatches in order
func (p *Palette) Colors() []colors.Color {
	out := make([]colors.Color, 0, len(p.Swatches))
	for _, s := range p.Swatches {
		out = append(out, colors.MustParseHex(s.Hex))
	}
	return out
}

// Primary returns the first non-neutral swatch
func (p *Palette) Primary() colors.Color {
	return p.accent(0)
}

// Secondary returns the second non-neutral swatch, or the primary when there is only one
func (p *Palette) Secondary() colors.Color {
	return p.accent(1)
}

func (p *Palette) accent(n int) colors.Color {
	var found []colors.Color
	for _, c := range p.Colors() {
		if !colors.IsNeutral(c) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return colors.Black
	}
	if n >= len(found) {
		return found[0]
	}
	return found[n]
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"basica": {
			Name:        "basica",
			Scheme:      colors.Harmonic,
			Description: "Colores básicos",
			Swatches: []Swatch{
				{"Rojo", "#FF0000"},
				{"Verde", "#00FF00"},
				{"Azul", "#0000FF"},
				{"Amarillo", "#FFFF00"},
				{"Rosa", "#FF69B4"},
				{"Blanco", "#FFFFFF"},
				{"Negro", "#000000"},
			},
		},
		"tierra": {
			Name:        "tierra",
			Scheme:      colors.Analogous,
			Description: "Cueros y ocres",
			Swatches: []Swatch{
				{"Cuero", "#8B4513"},
				{"Chocolate", "#D2691E"},
				{"Camel", "#CD853F"},
				{"Mostaza", "#DAA520"},
				{"Oliva", "#6B8E23"},
			},
		},
		"oceano": {
			Name:        "oceano",
			Scheme:      colors.Analogous,
			Description: "Azules y verdes de mar",
			Swatches: []Swatch{
				{"Marino", "#000080"},
				{"Azul cielo intenso", "#1E90FF"},
				{"Turquesa", "#20B2AA"},
				{"Petróleo", "#008080"},
				{"Celeste", "#87CEEB"},
			},
		},
		"contraste": {
			Name:        "contraste",
			Scheme:      colors.Complementary,
			Description: "Pares opuestos en el círculo cromático",
			Swatches: []Swatch{
				{"Azul", "#0000FF"},
				{"Amarillo", "#FFFF00"},
				{"Blanco", "#FFFFFF"},
				{"Negro", "#000000"},
			},
		},
	}

	return palettes[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{"basica", "tierra", "oceano", "contraste"}
	var palettes []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
