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
// Package datamatrix implements Data Matrix ECC 200 (spec.md §4.8, C8) at
// the contract level: ASCII-mode high-level encoding, the ISO/IEC 16022
// Table 7 symbol size table, interleaved Reed-Solomon, and the standard
// diagonal module placement algorithm.
//
// Grounded on ericlevine-zxinggo's encoder/symbolinfo.go and
// encoder/highlevel.go (via other_examples/), adapted from zxing's Java
// port into this module's geom.Symbol output model.
package datamatrix

import "github.com/okapi-go/barcode/symbol"

// SymbolInfo describes one ECC 200 symbol size.
type SymbolInfo struct {
	Rectangular                              bool
	DataCapacity, ErrorCodewords             int
	MatrixWidth, MatrixHeight                int
	DataRegionRows, DataRegionColumns        int
	RSBlockData, RSBlockError                int
	RSBlockData2, NumRSBlocks2               int
}

func (si SymbolInfo) numDataBlocks() int {
	if si.RSBlockData2 == 0 {
		return si.DataCapacity / si.RSBlockData
	}
	return (si.DataCapacity-si.NumRSBlocks2*si.RSBlockData2)/si.RSBlockData + si.NumRSBlocks2
}

// symbols is ISO/IEC 16022 Table 7: the square sizes by increasing data
// capacity, followed by the rectangular sizes by increasing data capacity.
var symbols = []SymbolInfo{
	{false, 3, 5, 10, 10, 8, 8, 3, 5, 0, 0},
	{false, 5, 7, 12, 12, 10, 10, 5, 7, 0, 0},
	{false, 8, 10, 14, 14, 12, 12, 8, 10, 0, 0},
	{false, 12, 12, 16, 16, 14, 14, 12, 12, 0, 0},
	{false, 18, 14, 18, 18, 16, 16, 18, 14, 0, 0},
	{false, 22, 18, 20, 20, 18, 18, 22, 18, 0, 0},
	{false, 30, 20, 22, 22, 20, 20, 30, 20, 0, 0},
	{false, 36, 24, 24, 24, 22, 22, 36, 24, 0, 0},
	{false, 44, 28, 26, 26, 24, 24, 44, 28, 0, 0},
	{false, 62, 36, 32, 32, 14, 14, 62, 36, 0, 0},
	{false, 86, 42, 36, 36, 16, 16, 86, 42, 0, 0},
	{false, 114, 48, 40, 40, 18, 18, 114, 48, 0, 0},
	{false, 144, 56, 44, 44, 20, 20, 144, 56, 0, 0},
	{false, 174, 68, 48, 48, 22, 22, 174, 68, 0, 0},
	{false, 204, 84, 52, 52, 24, 24, 102, 42, 0, 0},
	{false, 280, 112, 64, 64, 14, 14, 140, 56, 0, 0},
	{false, 368, 144, 72, 72, 16, 16, 92, 36, 0, 0},
	{false, 456, 192, 80, 80, 18, 18, 114, 48, 0, 0},
	{false, 576, 224, 88, 88, 20, 20, 144, 56, 0, 0},
	{false, 696, 272, 96, 96, 22, 22, 174, 68, 0, 0},
	{false, 816, 336, 104, 104, 24, 24, 136, 56, 0, 0},
	{false, 1050, 408, 120, 120, 18, 18, 175, 68, 0, 0},
	{false, 1304, 496, 132, 132, 20, 20, 163, 62, 0, 0},
	{false, 1558, 620, 144, 144, 22, 22, 156, 62, 155, 2},
	{true, 5, 7, 18, 8, 6, 16, 5, 7, 0, 0},
	{true, 10, 11, 32, 8, 6, 14, 10, 11, 0, 0},
	{true, 16, 14, 26, 12, 10, 24, 16, 14, 0, 0},
	{true, 22, 18, 36, 12, 10, 16, 22, 18, 0, 0},
	{true, 32, 24, 36, 16, 14, 16, 32, 24, 0, 0},
	{true, 49, 28, 48, 16, 14, 22, 49, 28, 0, 0},
}

// ShapeHint restricts lookup to square or rectangular symbols.
type ShapeHint int

const (
	ShapeAny ShapeHint = iota
	ShapeSquare
	ShapeRectangle
)

func lookup(dataCodewords int, hint ShapeHint) (SymbolInfo, error) {
	for _, si := range symbols {
		if hint == ShapeSquare && si.Rectangular {
			continue
		}
		if hint == ShapeRectangle && !si.Rectangular {
			continue
		}
		if si.DataCapacity >= dataCodewords {
			return si, nil
		}
	}
	return SymbolInfo{}, symbol.Newf(symbol.ErrCapacityExceeded, "datamatrix: no symbol size fits %d data codewords", dataCodewords)
}
