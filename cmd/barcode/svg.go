/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package main

import (
	"fmt"
	"strings"

	"github.com/okapi-go/barcode/geom"
)

// renderSVG draws a geom.Symbol as a minimal SVG document, one module unit
// per user unit, for the preview subcommand. It is a debugging aid, not a
// renderer this module's consumers are meant to depend on: real rendering
// (colour, scaling, print resolution) is the downstream renderer's job,
// per the module-unit/colour-free geometric output contract.
func renderSVG(s geom.Symbol) string {
	var b strings.Builder
	w := s.Width + 2*s.QuietZoneH
	h := s.Height + 2*s.QuietZoneV
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, w, h)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`, w, h)

	ox, oy := s.QuietZoneH, s.QuietZoneV
	for _, r := range s.Rectangles {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="black"/>`,
			r.X+ox, r.Y+oy, r.Width, r.Height)
	}
	for _, hx := range s.Hexagons {
		pts := hx.Vertices()
		b.WriteString(`<polygon points="`)
		for _, p := range pts {
			fmt.Fprintf(&b, "%g,%g ", p[0]+float64(ox), p[1]+float64(oy))
		}
		b.WriteString(`" fill="black"/>`)
	}
	for _, c := range s.Target {
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="black"/>`,
			c.CX+float64(ox), c.CY+float64(oy), c.Radius)
	}
	for _, t := range s.Texts {
		anchor := "start"
		switch t.Alignment {
		case geom.AlignRight:
			anchor = "end"
		case geom.AlignCenter:
			anchor = "middle"
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="%s" font-size="8">%s</text>`,
			t.X+ox, t.Y+oy, anchor, t.Text)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
