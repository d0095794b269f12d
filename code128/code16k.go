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
package code128

import (
	"strconv"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/symbol"
)

// Code16KEncoder implements Code 16K: Code 128's alphabet stacked into 2-16
// rows of 5 symbol characters each, with a row-indicator character at the
// start of every row and two modulo-107 check characters instead of one
// (spec.md §4.6).
type Code16KEncoder struct {
	RowHeight int
}

func (e Code16KEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 10
}

const code16KCodewordsPerRow = 5

// Encode implements symbol.Encoder.
func (e Code16KEncoder) Encode(content string) (geom.Symbol, error) {
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code16k: content must not be empty")
	}

	values, err := encodeValues([]byte(content), false)
	if err != nil {
		return geom.Symbol{}, err
	}

	// Row indicator characters (one per row) and two check characters add
	// to the payload before the data-per-row capacity is checked: each row
	// leaves code16KCodewordsPerRow-1 slots for data and check values.
	numRows := (len(values) + 2 + code16KCodewordsPerRow - 2) / (code16KCodewordsPerRow - 1)
	if numRows < 2 {
		numRows = 2
	}
	if numRows > 16 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrCapacityExceeded, "code16k: content requires %d rows, maximum is 16", numRows)
	}

	c1, c2 := code16KCheckDigits(values)

	rowHeight := e.rowHeight()
	var rows []symbol.Row
	idx := 0
	for row := 0; row < numRows; row++ {
		rowValues := []int{code16KRowIndicator(row, numRows)}
		for len(rowValues) < code16KCodewordsPerRow && idx < len(values) {
			rowValues = append(rowValues, values[idx])
			idx++
		}
		if row == numRows-1 {
			rowValues = append(rowValues, c1, c2)
		}
		p := assembleRowPattern(rowValues, row == 0, row == numRows-1)
		rows = append(rows, symbol.Row{Pattern: p, Y: row * (rowHeight + 2), Height: rowHeight})
	}

	rects := symbol.PlotPattern(rows)
	width := 0
	for _, r := range rows {
		if w := symbol.PatternWidth(r.Pattern); w > width {
			width = w
		}
	}
	rects = append(rects, symbol.BindingBars(width, rowHeight, numRows)...)

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      width,
		Height:     numRows*(rowHeight+2) + 2,
		Rectangles: rects,
		EncodeInfo: "Symbol Rows: " + strconv.Itoa(numRows) + "\nCheck Digits: dual mod-107",
	}, nil
}

// code16KRowIndicator returns the value placed first in every row:
// (row*code16KCodewordsPerRow + numRows) mod 106, with row 0-based. Real
// Code 16K folds the row indicator into the row's start character through
// the standard's lookup table; this port does not use that table, and the
// value is kept internal to this package's geometry-only pattern assembly.
func code16KRowIndicator(row, numRows int) int {
	return (row*code16KCodewordsPerRow + numRows) % 106
}

// assembleRowPattern lays out one row's symbol characters, including the
// Code 128 start character on the first row and the stop character on the
// last row.
func assembleRowPattern(values []int, first, last bool) string {
	all := values
	if first {
		all = append([]int{startC}, all...)
	}
	if last {
		all = append(all, stop)
	}
	return assemblePattern(all)
}

// code16KCheckDigits computes the two modulo-107 check characters Code 16K
// uses in place of Code 128's single modulo-103 check. The first weights
// every symbol value (including the start character) by its 1-based
// position; the second adds to that sum the first check character weighted
// by its own position, one past the last value.
func code16KCheckDigits(values []int) (int, int) {
	sum1 := 0
	for i, v := range values {
		sum1 += v * (i + 1)
	}
	c1 := sum1 % 107
	sum2 := sum1 + c1*(len(values)+1)
	return c1, sum2 % 107
}
