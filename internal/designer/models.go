// SPDX-License-Identifier: MIT
package designer

import (
	"fmt"

	"github.com/chromabags/chromabags/internal/colors"
)

// Model describes an archetype for pickers and price lists.
type Model struct {
	Archetype      Archetype `json:"archetype"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	RequiredColors int       `json:"required_colors"` // -1 means variable
}

// AvailableModels lists the archetypes in display order.
func AvailableModels() []Model {
	return []Model{
		{
			Archetype:      Single,
			Name:           "Simple",
			Description:    "One body color with white or black handles",
			RequiredColors: 1,
		},
		{
			Archetype:      TwoTone,
			Name:           "Combinado",
			Description:    "Top quarter in one color, the rest in another",
			RequiredColors: 2,
		},
		{
			Archetype:      Freeform,
			Name:           "Especial",
			Description:    "Custom design drawn element by element",
			RequiredColors: -1,
		},
	}
}

// Request is everything needed to build a design in one call.
type Request struct {
	Archetype Archetype
	Width     float64 // zero means DefaultWidth
	Height    float64 // zero means DefaultHeight
	Colors    []colors.Color
	Handle    *colors.Color
	Elements  []Element // freeform only
}

// Build constructs the design described by req.
func Build(req Request) (*Design, error) {
	width, height := req.Width, req.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	g, err := NewGenerator(width, height)
	if err != nil {
		return nil, err
	}

	if req.Archetype != Freeform && len(req.Elements) > 0 {
		return nil, fmt.Errorf("%w: elements are only accepted for freeform designs", ErrInvalidOperation)
	}

	switch req.Archetype {
	case Single:
		if len(req.Colors) < 1 {
			return nil, fmt.Errorf("%w: single design needs 1 color", ErrMissingColors)
		}
		return g.Single(req.Colors[0], req.Handle), nil
	case TwoTone:
		if len(req.Colors) < 2 {
			return nil, fmt.Errorf("%w: two-tone design needs 2 colors", ErrMissingColors)
		}
		return g.TwoTone(req.Colors[0], req.Colors[1], req.Handle), nil
	case Freeform:
		d := g.Freeform()
		for i, e := range req.Elements {
			if err := d.AddElement(e); err != nil {
				return nil, fmt.Errorf("element %d: %w", i+1, err)
			}
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown archetype %q", ErrInvalidOperation, req.Archetype)
	}
}
