// SPDX-License-Identifier: MIT
package designer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HandleMargin is the space above the canvas reserved for handle arches.
const HandleMargin = 50

const outlineColor = "#333333"

// RenderSVG draws the design as a standalone SVG document. The document is
// HandleMargin units taller than the canvas and its viewBox starts at
// y=-HandleMargin, so design coordinates are used unchanged. Output depends
// only on the design.
func RenderSVG(d *Design) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg width="%s" height="%s" viewBox="0 %s %s %s" xmlns="http://www.w3.org/2000/svg">`,
		num(d.Width), num(d.Height+HandleMargin), num(-HandleMargin), num(d.Width), num(d.Height+HandleMargin))

	for _, e := range d.Elements {
		b.WriteByte('\n')
		switch v := e.(type) {
		case Panel:
			fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="1"/>`,
				num(v.X), num(v.Y), num(v.Width), num(v.Height), v.Fill, outlineColor)
		case Handle:
			// quadratic arch: control point at the horizontal midpoint, peak height
			fmt.Fprintf(&b, `<path d="M %s,%s Q %s,%s %s,%s" stroke="%s" stroke-width="%s" fill="none" stroke-linecap="round"/>`,
				num(v.X1), num(v.Y1), num((v.X1+v.X2)/2), num(v.Y2), num(v.X2), num(v.Y1), v.Stroke, num(v.StrokeWidth))
		}
	}

	b.WriteString("\n</svg>")
	return b.String()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
