// SPDX-License-Identifier: MIT

// Package designer builds bag designs for the three bag archetypes, checks
// them against a harmony scheme and renders them to SVG.
package designer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chromabags/chromabags/internal/colors"
)

var (
	// ErrOutOfBounds is returned when a freeform element does not fit the canvas.
	ErrOutOfBounds = errors.New("element out of bounds")
	// ErrInvalidOperation is returned for operations the design's archetype does not allow.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidDimensions is returned for non-positive canvas sizes.
	ErrInvalidDimensions = errors.New("invalid canvas dimensions")
	// ErrMissingColors is returned when a build request lacks required body colors.
	ErrMissingColors = errors.New("missing colors")
)

// Archetype is one of the three bag templates.
type Archetype string

const (
	Single   Archetype = "single"
	TwoTone  Archetype = "two_tone"
	Freeform Archetype = "freeform"
)

// ParseArchetype accepts the archetype tags and the business names used on
// the shop floor ("simple", "combinado", "especial").
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "simple":
		return Single, nil
	case "two_tone", "two-tone", "combinado":
		return TwoTone, nil
	case "freeform", "especial", "custom":
		return Freeform, nil
	default:
		return "", fmt.Errorf("%w: unknown archetype %q", ErrInvalidOperation, s)
	}
}

// Role labels used in ColorsUsed.
const (
	RolePrincipal = "principal"
	RoleSecondary = "secondary"
	RoleHandle    = "handle"
)

// Element is a drawable shape. Panel and Handle are the only implementations.
type Element interface {
	Role() string
	Color() colors.Color
	element()
}

// Panel is an axis-aligned filled rectangle.
type Panel struct {
	Name          string
	X, Y          float64
	Width, Height float64
	Fill          colors.Color
}

func (p Panel) Role() string        { return p.Name }
func (p Panel) Color() colors.Color { return p.Fill }
func (Panel) element()              {}

// Handle is an arched strap anchored at (X1,Y1) and (X2,Y1), peaking at
// height Y2. Y2 above the canvas top is negative.
type Handle struct {
	Name        string
	X1, Y1      float64
	X2, Y2      float64
	StrokeWidth float64
	Stroke      colors.Color
}

func (h Handle) Role() string        { return h.Name }
func (h Handle) Color() colors.Color { return h.Stroke }
func (Handle) element()              {}

// RoleColor is one entry of ColorRoles.
type RoleColor struct {
	Role  string
	Color colors.Color
}

// ColorRoles maps role labels to colors, keeping insertion order.
type ColorRoles []RoleColor

// Set adds role or replaces its color in place.
func (r *ColorRoles) Set(role string, c colors.Color) {
	for i := range *r {
		if (*r)[i].Role == role {
			(*r)[i].Color = c
			return
		}
	}
	*r = append(*r, RoleColor{Role: role, Color: c})
}

func (r ColorRoles) Get(role string) (colors.Color, bool) {
	for _, rc := range r {
		if rc.Role == role {
			return rc.Color, true
		}
	}
	return colors.Color{}, false
}

func (r ColorRoles) Roles() []string {
	roles := make([]string, 0, len(r))
	for _, rc := range r {
		roles = append(roles, rc.Role)
	}
	return roles
}

func (r ColorRoles) Colors() []colors.Color {
	cs := make([]colors.Color, 0, len(r))
	for _, rc := range r {
		cs = append(cs, rc.Color)
	}
	return cs
}

func (r ColorRoles) Len() int { return len(r) }

// Design is a bag drawing. Elements are painted in order, so later elements
// sit on top of earlier ones. Only freeform designs grow after construction,
// through AddElement.
type Design struct {
	Archetype  Archetype
	Width      float64
	Height     float64
	Elements   []Element
	ColorsUsed ColorRoles
}

// AddElement appends e to a freeform design. Panels must fit inside the
// canvas; handles only need their anchors on it since the arch rises above
// the top edge. A failed call leaves the design unchanged.
func (d *Design) AddElement(e Element) error {
	if d.Archetype != Freeform {
		return fmt.Errorf("%w: elements can only be added to freeform designs, not %s", ErrInvalidOperation, d.Archetype)
	}
	if e == nil {
		return fmt.Errorf("%w: nil element", ErrInvalidOperation)
	}

	if err := d.checkBounds(e); err != nil {
		return err
	}

	n := len(d.Elements) + 1
	switch v := e.(type) {
	case Panel:
		if v.Name == "" {
			v.Name = fmt.Sprintf("element_%d", n)
		}
		e = v
	case Handle:
		if v.Name == "" {
			v.Name = fmt.Sprintf("element_%d", n)
		}
		e = v
	}

	d.Elements = append(d.Elements, e)
	d.ColorsUsed.Set(fmt.Sprintf("color_%d", n), e.Color())
	return nil
}

func (d *Design) checkBounds(e Element) error {
	switch v := e.(type) {
	case Panel:
		if v.X < 0 || v.Y < 0 {
			return fmt.Errorf("%w: position (%g,%g) is negative", ErrOutOfBounds, v.X, v.Y)
		}
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("%w: size %gx%g must be positive", ErrOutOfBounds, v.Width, v.Height)
		}
		if v.X+v.Width > d.Width {
			return fmt.Errorf("%w: x+width %g exceeds canvas width %g", ErrOutOfBounds, v.X+v.Width, d.Width)
		}
		if v.Y+v.Height > d.Height {
			return fmt.Errorf("%w: y+height %g exceeds canvas height %g", ErrOutOfBounds, v.Y+v.Height, d.Height)
		}
	case Handle:
		if v.X1 < 0 || v.X2 < 0 || v.Y1 < 0 {
			return fmt.Errorf("%w: handle anchor is negative", ErrOutOfBounds)
		}
		if v.X1 > d.Width || v.X2 > d.Width || v.Y1 > d.Height {
			return fmt.Errorf("%w: handle anchor is off the canvas", ErrOutOfBounds)
		}
		if v.StrokeWidth <= 0 {
			return fmt.Errorf("%w: stroke width must be positive", ErrOutOfBounds)
		}
	default:
		return fmt.Errorf("%w: unsupported element %T", ErrInvalidOperation, e)
	}
	return nil
}

// BodyColors returns the harmony-bearing colors: everything in ColorsUsed
// except pure white and black, in insertion order.
func (d *Design) BodyColors() []colors.Color {
	var body []colors.Color
	for _, rc := range d.ColorsUsed {
		if colors.IsNeutral(rc.Color) {
			continue
		}
		body = append(body, rc.Color)
	}
	return body
}

// ValidateDesign checks the design's body colors against scheme. The result
// is advisory; callers surface a failure as a warning.
func ValidateDesign(d *Design, scheme colors.Scheme) bool {
	body := d.BodyColors()
	if len(body) < 2 {
		return true
	}
	return colors.ValidateHarmony(body, scheme)
}
