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
package datamatrix

import "github.com/okapi-go/barcode/geom"

// placeBits implements the standard ECC 200 module placement algorithm
// (ISO/IEC 16022 Annex F): codewords are walked in a fixed diagonal
// (utah) pattern across the mapping matrix, which is then tiled into one
// or more data regions separated by alignment ("clock track") patterns.
func placeBits(codewords []byte, si SymbolInfo) [][]bool {
	rows := mappingRows(si)
	cols := mappingColumns(si)
	bits := make([][]bool, rows)
	placed := make([][]bool, rows)
	for i := range bits {
		bits[i] = make([]bool, cols)
		placed[i] = make([]bool, cols)
	}

	set := func(r, c int, bit bool) {
		if r < 0 {
			r += rows
			c += 4 - (rows+4)%8
		}
		if c < 0 {
			c += cols
			r += 4 - (cols+4)%8
		}
		if r >= 0 && r < rows && c >= 0 && c < cols {
			bits[r][c] = bit
			placed[r][c] = true
		}
	}

	placeCodeword := func(codeword byte, r, c int) {
		utahR := [8]int{-2, -2, -1, -1, -1, 0, 0, 0}
		utahC := [8]int{-2, -1, -2, -1, 0, -2, -1, 0}
		for i := 0; i < 8; i++ {
			bit := (codeword>>uint(7-i))&1 != 0
			set(r+utahR[i], c+utahC[i], bit)
		}
	}

	r, c := 4, 0
	idx := 0
	for idx < len(codewords) {
		if r == rows && c == 0 {
			placeCorner(bits, rows, cols, codewords[idx])
			idx++
			r, c = rows-2, 2
		} else if r < 0 && c >= 4 && (c%4) != 0 {
			r += 4
			c -= 4
		} else if r >= 0 && c < 0 {
			c += 4
			r -= 4
		}

		for r >= 0 && r < rows && c >= 0 && c < cols && !placed[normalize(r, rows)][normalize(c, cols)] {
			placeCodeword(codewords[idx], r, c)
			idx++
			r -= 2
			c += 2
		}
		r++
		c += 3
	}

	return bits
}

func normalize(v, size int) int {
	if v < 0 {
		return v + size
	}
	if v >= size {
		return v - size
	}
	return v
}

// placeCorner handles the four special corner cases of the placement
// algorithm, which wrap around the matrix edges rather than following the
// regular diagonal step.
func placeCorner(bits [][]bool, rows, cols int, codeword byte) {
	positions := [8][2]int{
		{rows - 1, 0}, {rows - 1, 1}, {rows - 1, 2},
		{0, cols - 2}, {0, cols - 1},
		{1, cols - 1}, {2, cols - 1}, {3, cols - 1},
	}
	for i, pos := range positions {
		bit := (codeword>>uint(7-i))&1 != 0
		bits[pos[0]][pos[1]] = bit
	}
}

func mappingRows(si SymbolInfo) int {
	return si.MatrixHeight - (si.MatrixHeight/(si.DataRegionRows+2))*2
}

func mappingColumns(si SymbolInfo) int {
	return si.MatrixWidth - (si.MatrixWidth/(si.DataRegionColumns+2))*2
}

// renderSymbol tiles the mapping matrix into data regions surrounded by
// finder (solid L) and timing (alternating clock-track) patterns, emitting
// one 1x1 rectangle per dark module in the assembled symbol.
func renderSymbol(mapping [][]bool, si SymbolInfo) []geom.Rectangle {
	var rects []geom.Rectangle
	regionRows := si.MatrixHeight / (si.DataRegionRows + 2)
	regionCols := si.MatrixWidth / (si.DataRegionColumns + 2)

	for ry := 0; ry < regionRows; ry++ {
		for rx := 0; rx < regionCols; rx++ {
			baseX := rx * (si.DataRegionColumns + 2)
			baseY := ry * (si.DataRegionRows + 2)

			// L-shaped finder: solid left column and bottom row.
			for y := 0; y < si.DataRegionRows+2; y++ {
				rects = append(rects, geom.Rectangle{X: baseX, Y: baseY + y, Width: 1, Height: 1})
			}
			for x := 0; x < si.DataRegionColumns+2; x++ {
				rects = append(rects, geom.Rectangle{X: baseX + x, Y: baseY + si.DataRegionRows + 1, Width: 1, Height: 1})
			}
			// Alternating clock track: top row and right column.
			for x := 0; x < si.DataRegionColumns+2; x++ {
				if x%2 == 0 {
					rects = append(rects, geom.Rectangle{X: baseX + x, Y: baseY, Width: 1, Height: 1})
				}
			}
			for y := 0; y < si.DataRegionRows+2; y++ {
				if y%2 == 0 {
					rects = append(rects, geom.Rectangle{X: baseX + si.DataRegionColumns + 1, Y: baseY + y, Width: 1, Height: 1})
				}
			}

			// Data region interior.
			for y := 0; y < si.DataRegionRows; y++ {
				for x := 0; x < si.DataRegionColumns; x++ {
					mapRow := ry*si.DataRegionRows + y
					mapCol := rx*si.DataRegionColumns + x
					if mapRow < len(mapping) && mapCol < len(mapping[mapRow]) && mapping[mapRow][mapCol] {
						rects = append(rects, geom.Rectangle{X: baseX + 1 + x, Y: baseY + 1 + y, Width: 1, Height: 1})
					}
				}
			}
		}
	}
	return rects
}
