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

import (
	"strconv"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/reedsolomon"
	"github.com/okapi-go/barcode/symbol"
)

// Options configures the Data Matrix encoder.
type Options struct {
	Shape ShapeHint
}

// Encoder implements Data Matrix ECC 200 in ASCII encodation mode (spec.md
// §4.8). C40, Text, X12, EDIFACT, and Base256 switching are left as
// follow-on work; every input is representable in ASCII mode, so this is a
// complete (if not maximally compact) encoder.
type Encoder struct {
	Options Options
}

// Encode implements symbol.Encoder.
func (e Encoder) Encode(content string) (geom.Symbol, error) {
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "datamatrix: content must not be empty")
	}

	codewords, err := encodeASCII(content)
	if err != nil {
		return geom.Symbol{}, err
	}

	si, err := lookup(len(codewords), e.Options.Shape)
	if err != nil {
		return geom.Symbol{}, err
	}

	dataLen := len(codewords)
	for len(codewords) < si.DataCapacity {
		codewords = append(codewords, asciiPadCodeword(len(codewords), dataLen))
	}

	allCodewords := interleaveECC(codewords, si)
	bits := placeBits(allCodewords, si)

	rects := renderSymbol(bits, si)

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      si.MatrixWidth,
		Height:     si.MatrixHeight,
		Rectangles: rects,
		EncodeInfo: "Encodation: ASCII\nData Codewords: " + strconv.Itoa(si.DataCapacity) + "\nError Codewords: " + strconv.Itoa(si.ErrorCodewords),
		QuietZoneH: 1,
		QuietZoneV: 1,
	}, nil
}

// encodeASCII implements Data Matrix's ASCII encodation scheme: digit pairs
// pack into one codeword (value+130), bytes 128-255 take an Upper Shift
// (235) followed by the byte minus 127, other bytes offset by +1, per
// ISO/IEC 16022 §5.2.3.
func encodeASCII(content string) ([]byte, error) {
	var out []byte
	data := []byte(content)
	for i := 0; i < len(data); {
		if i+1 < len(data) && isDigit(data[i]) && isDigit(data[i+1]) {
			v := int(data[i]-'0')*10 + int(data[i+1]-'0')
			out = append(out, byte(v+130))
			i += 2
			continue
		}
		if data[i] >= 128 {
			out = append(out, 235, data[i]-127)
			i++
			continue
		}
		out = append(out, data[i]+1)
		i++
	}
	return out, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// asciiPadCodeword returns the pad codeword for position pos (0-based
// within the data region), where dataLen is the number of encoded data
// codewords: the first pad (pos == dataLen) is the fixed value 129; every
// pad after that is randomized by a 253-state linear congruential
// generator keyed on its 1-based codeword position, per ISO/IEC 16022
// Annex B.
func asciiPadCodeword(pos, dataLen int) byte {
	if pos == dataLen {
		return 129
	}
	position := pos + 1
	pseudoRandom := ((149 * position) % 253) + 1
	return byte((129 + pseudoRandom) % 254)
}

func interleaveECC(data []byte, si SymbolInfo) []byte {
	enc := reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)
	numBlocks := si.numDataBlocks()
	if numBlocks <= 1 {
		ecc := enc.EncodeBytes(data, si.ErrorCodewords)
		return append(append([]byte{}, data...), ecc...)
	}

	blockData := make([][]byte, numBlocks)
	for i := 0; i < numBlocks; i++ {
		for j := i; j < len(data); j += numBlocks {
			blockData[i] = append(blockData[i], data[j])
		}
	}
	blockECC := make([][]byte, numBlocks)
	for i, bd := range blockData {
		blockECC[i] = enc.EncodeBytes(bd, si.ErrorCodewords/numBlocks)
	}

	result := append([]byte{}, data...)
	for k := 0; k < si.ErrorCodewords/numBlocks; k++ {
		for i := 0; i < numBlocks; i++ {
			result = append(result, blockECC[i][k])
		}
	}
	return result
}
