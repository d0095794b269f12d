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
// Package geom holds the immutable geometric model produced by every
// symbology encoder in this module. It has no knowledge of rasterisation,
// colour, or fonts; a renderer consumes these value types and draws them.
package geom

// Alignment is the text alignment of a TextBox.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// Rectangle is a contiguous run of ink modules in one logical row, in module
// coordinates.
type Rectangle struct {
	X, Y, Width, Height int
}

// Hexagon is a single MaxiCode module, carrying only its centre; a renderer
// derives the six vertices from HexagonVertexOffsets.
type Hexagon struct {
	CX, CY float64
}

// HexagonVertexOffsets are the six unit-hexagon vertex offsets (pointy-top,
// flat left/right sides), scaled by the ink-spread factor before use.
var HexagonVertexOffsets = [6][2]float64{
	{0, 1},
	{0.86, 0.5},
	{0.86, -0.5},
	{0, -1},
	{-0.86, -0.5},
	{-0.86, 0.5},
}

// HexInkSpread is the fixed scale factor applied to HexagonVertexOffsets.
const HexInkSpread = 1.25

// Vertices returns the six vertex coordinates of a hexagon centred at (CX, CY).
func (h Hexagon) Vertices() [6][2]float64 {
	var v [6][2]float64
	for i, o := range HexagonVertexOffsets {
		v[i][0] = h.CX + o[0]*HexInkSpread
		v[i][1] = h.CY + o[1]*HexInkSpread
	}
	return v
}

// Circle is one ring of a MaxiCode bullseye target; consecutive pairs in
// Symbol.Target form an annulus.
type Circle struct {
	CX, CY, Radius float64
}

// TextBox is a single human-readable text annotation.
type TextBox struct {
	X, Y, Width int
	Text        string
	Alignment   Alignment
}

// DataType classifies how Symbol.Content should be interpreted.
type DataType int

const (
	DataTypeECIText DataType = iota
	DataTypeGS1
	DataTypeHIBC
)

// Symbol is the aggregate root of an encoding result (spec.md §3). It is
// built once by an encoder's Encode function and is immutable thereafter.
type Symbol struct {
	Content    string
	Readable   string
	Width      int
	Height     int
	Rectangles []Rectangle
	Hexagons   []Hexagon
	Target     []Circle
	Texts      []TextBox
	EncodeInfo string
	QuietZoneH int
	QuietZoneV int
	DataType   DataType
	ECIMode    int
}
