// SPDX-License-Identifier: MIT
package designer

import (
	"encoding/json"
	"fmt"

	"github.com/chromabags/chromabags/internal/colors"
	"gopkg.in/yaml.v3"
)

// Element type tags used in serialized designs.
const (
	TypePanel  = "panel"
	TypeHandle = "handle"
)

// ElementSpec is the serialized form of an Element. Panels use X, Y, Width
// and Height; handles use X1, Y1, X2, Y2 and StrokeWidth.
type ElementSpec struct {
	Type        string       `json:"type" yaml:"type"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	X           float64      `json:"x,omitempty" yaml:"x,omitempty"`
	Y           float64      `json:"y,omitempty" yaml:"y,omitempty"`
	Width       float64      `json:"width,omitempty" yaml:"width,omitempty"`
	Height      float64      `json:"height,omitempty" yaml:"height,omitempty"`
	X1          float64      `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1          float64      `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2          float64      `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2          float64      `json:"y2,omitempty" yaml:"y2,omitempty"`
	StrokeWidth float64      `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Color       colors.Color `json:"color" yaml:"color"`
}

// Element converts the spec into a Panel or Handle.
func (s ElementSpec) Element() (Element, error) {
	switch s.Type {
	case TypePanel:
		return Panel{Name: s.Name, X: s.X, Y: s.Y, Width: s.Width, Height: s.Height, Fill: s.Color}, nil
	case TypeHandle:
		return Handle{Name: s.Name, X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2, StrokeWidth: s.StrokeWidth, Stroke: s.Color}, nil
	default:
		return nil, fmt.Errorf("%w: unknown element type %q", ErrInvalidOperation, s.Type)
	}
}

// SpecOf converts an Element into its serialized form.
func SpecOf(e Element) ElementSpec {
	switch v := e.(type) {
	case Panel:
		return ElementSpec{Type: TypePanel, Name: v.Name, X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, Color: v.Fill}
	case Handle:
		return ElementSpec{Type: TypeHandle, Name: v.Name, X1: v.X1, Y1: v.Y1, X2: v.X2, Y2: v.Y2, StrokeWidth: v.StrokeWidth, Color: v.Stroke}
	default:
		return ElementSpec{}
	}
}

// Elements converts a list of specs, reporting the first bad entry.
func Elements(specs []ElementSpec) ([]Element, error) {
	elements := make([]Element, 0, len(specs))
	for i, s := range specs {
		e, err := s.Element()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		elements = append(elements, e)
	}
	return elements, nil
}

type roleColorDoc struct {
	Role  string       `json:"role" yaml:"role"`
	Color colors.Color `json:"color" yaml:"color"`
}

type designDoc struct {
	Archetype  Archetype      `json:"archetype" yaml:"archetype"`
	Width      float64        `json:"width" yaml:"width"`
	Height     float64        `json:"height" yaml:"height"`
	Elements   []ElementSpec  `json:"elements" yaml:"elements"`
	ColorsUsed []roleColorDoc `json:"colors_used" yaml:"colors_used"`
}

func (d Design) toDoc() designDoc {
	doc := designDoc{
		Archetype:  d.Archetype,
		Width:      d.Width,
		Height:     d.Height,
		Elements:   make([]ElementSpec, 0, len(d.Elements)),
		ColorsUsed: make([]roleColorDoc, 0, len(d.ColorsUsed)),
	}
	for _, e := range d.Elements {
		doc.Elements = append(doc.Elements, SpecOf(e))
	}
	for _, rc := range d.ColorsUsed {
		doc.ColorsUsed = append(doc.ColorsUsed, roleColorDoc{Role: rc.Role, Color: rc.Color})
	}
	return doc
}

func (d *Design) fromDoc(doc designDoc) error {
	archetype, err := ParseArchetype(string(doc.Archetype))
	if err != nil {
		return err
	}
	g, err := NewGenerator(doc.Width, doc.Height)
	if err != nil {
		return err
	}

	elements, err := Elements(doc.Elements)
	if err != nil {
		return err
	}

	// freeform designs are replayed so bounds and color_N roles hold
	if archetype == Freeform {
		rebuilt := g.Freeform()
		for i, e := range elements {
			if err := rebuilt.AddElement(e); err != nil {
				return fmt.Errorf("element %d: %w", i+1, err)
			}
		}
		*d = *rebuilt
		return nil
	}

	var roles ColorRoles
	for _, rc := range doc.ColorsUsed {
		roles.Set(rc.Role, rc.Color)
	}

	*d = Design{
		Archetype:  archetype,
		Width:      doc.Width,
		Height:     doc.Height,
		Elements:   elements,
		ColorsUsed: roles,
	}
	return nil
}

func (d Design) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toDoc())
}

func (d *Design) UnmarshalJSON(data []byte) error {
	var doc designDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return d.fromDoc(doc)
}

func (d Design) MarshalYAML() (interface{}, error) {
	return d.toDoc(), nil
}

func (d *Design) UnmarshalYAML(value *yaml.Node) error {
	var doc designDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	return d.fromDoc(doc)
}
