// SPDX-License-Identifier: MIT
package designer

import (
	"fmt"

	"github.com/chromabags/chromabags/internal/colors"
)

const (
	DefaultWidth  = 300
	DefaultHeight = 400

	handleStrokeWidth = 10
	handleRise        = 30
	upperPanelShare   = 0.25
)

// Generator builds designs on a fixed canvas size.
type Generator struct {
	Width  float64
	Height float64
}

// NewGenerator returns a generator for a width x height canvas.
func NewGenerator(width, height float64) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidDimensions, width, height)
	}
	return &Generator{Width: width, Height: height}, nil
}

// DefaultGenerator returns a generator for the standard 300x400 canvas.
func DefaultGenerator() *Generator {
	return &Generator{Width: DefaultWidth, Height: DefaultHeight}
}

// Single builds a one-color bag. A nil handle color is chosen for contrast
// against the body.
func (g *Generator) Single(principal colors.Color, handle *colors.Color) *Design {
	h := resolveHandle(handle, principal)

	d := g.empty(Single)
	d.Elements = append(d.Elements, Panel{
		Name:   "body",
		Width:  g.Width,
		Height: g.Height,
		Fill:   principal,
	})
	d.Elements = append(d.Elements, g.handles(h)...)
	d.ColorsUsed.Set(RolePrincipal, principal)
	d.ColorsUsed.Set(RoleHandle, h)
	return d
}

// TwoTone builds a bag with the top quarter in secondary and the rest in
// principal.
func (g *Generator) TwoTone(principal, secondary colors.Color, handle *colors.Color) *Design {
	h := resolveHandle(handle, principal, secondary)
	quarter := g.Height * upperPanelShare

	d := g.empty(TwoTone)
	d.Elements = append(d.Elements,
		Panel{
			Name:   "upper",
			Width:  g.Width,
			Height: quarter,
			Fill:   secondary,
		},
		Panel{
			Name:   "lower",
			Y:      quarter,
			Width:  g.Width,
			Height: g.Height - quarter,
			Fill:   principal,
		},
	)
	d.Elements = append(d.Elements, g.handles(h)...)
	d.ColorsUsed.Set(RolePrincipal, principal)
	d.ColorsUsed.Set(RoleSecondary, secondary)
	d.ColorsUsed.Set(RoleHandle, h)
	return d
}

// Freeform returns an empty custom design to be filled with AddElement.
func (g *Generator) Freeform() *Design {
	return g.empty(Freeform)
}

func (g *Generator) empty(a Archetype) *Design {
	return &Design{
		Archetype: a,
		Width:     g.Width,
		Height:    g.Height,
		Elements:  []Element{},
	}
}

// handles returns the left and right straps at 25-35% and 65-75% of the width.
func (g *Generator) handles(c colors.Color) []Element {
	return []Element{
		Handle{
			Name:        "left_handle",
			X1:          g.Width * 0.25,
			X2:          g.Width * 0.35,
			Y2:          -handleRise,
			StrokeWidth: handleStrokeWidth,
			Stroke:      c,
		},
		Handle{
			Name:        "right_handle",
			X1:          g.Width * 0.65,
			X2:          g.Width * 0.75,
			Y2:          -handleRise,
			StrokeWidth: handleStrokeWidth,
			Stroke:      c,
		},
	}
}

func resolveHandle(handle *colors.Color, body ...colors.Color) colors.Color {
	if handle != nil {
		return *handle
	}
	return colors.SuggestHandleColor(body)
}
