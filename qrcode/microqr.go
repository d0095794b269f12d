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
package qrcode

import (
	"fmt"

	"github.com/okapi-go/barcode/bitbuf"
	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/reedsolomon"
	"github.com/okapi-go/barcode/symbol"
)

// microVersion identifies a Micro QR symbol size class, M1-M4 (spec.md
// §4.7).
type microVersion int

const (
	M1 microVersion = iota + 1
	M2
	M3
	M4
)

func (v microVersion) size() int {
	return 9 + 2*int(v)
}

// microDataCodewords and microECCodewords give, per (version, ECL), the
// number of data and error-correction codewords a Micro QR symbol holds.
// M1 has no ECC level selection (always a fixed 2-bit detection code, not
// modeled here as a full ECC level) and never uses Q or H.
var microDataCodewords = map[microVersion]map[ECC]int{
	M1: {Low: 3},
	M2: {Low: 5, Medium: 4},
	M3: {Low: 11, Medium: 9},
	M4: {Low: 16, Medium: 14, Quartile: 10, High: 6},
}

var microECCodewords = map[microVersion]map[ECC]int{
	M1: {Low: 2},
	M2: {Low: 5, Medium: 6},
	M3: {Low: 6, Medium: 8},
	M4: {Low: 8, Medium: 10, Quartile: 14, High: 14},
}

// MicroOptions configures the Micro QR encoder.
type MicroOptions struct {
	ECL ECC
	// MaxVersion caps the symbol size class tried (defaults to M4).
	MaxVersion microVersion
}

// MicroEncoder implements Micro QR Code (spec.md §4.7). Quartile and High
// error correction are accepted only at M4, per the standard (and per
// spec.md §8 scenario 5, which specifically calls out that Q/H are not
// allowed at the smaller sizes).
type MicroEncoder struct {
	Options MicroOptions
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 5:
// input "01234" with ECC Level L selects the smallest size class that
// fits, M1, an 11x11 symbol.
func (e MicroEncoder) Encode(content string) (geom.Symbol, error) {
	ecl := e.Options.ECL
	maxVersion := e.Options.MaxVersion
	if maxVersion == 0 {
		maxVersion = M4
	}
	if (ecl == Quartile || ecl == High) && maxVersion < M4 {
		maxVersion = M4
	}

	segs := makeSegments(content)

	var chosen microVersion
	var found bool
	for v := M1; v <= maxVersion; v++ {
		if v < M4 && (ecl == Quartile || ecl == High) {
			continue
		}
		capCodewords, ok := microDataCodewords[v][ecl]
		if !ok {
			continue
		}
		used, ok2 := microTotalBits(segs, v)
		if ok2 && used <= capCodewords*8 {
			chosen = v
			found = true
			break
		}
	}
	if !found {
		return geom.Symbol{}, symbol.Newf(symbol.ErrCapacityExceeded, "microqr: content does not fit any Micro QR size class at ECC %s", eclName(ecl))
	}

	capBits := microDataCodewords[chosen][ecl] * 8
	bb := bitbuf.New(capBits)
	for _, seg := range segs {
		modeBits, modeBitsWidth := microModeBits(chosen, seg.mode)
		if modeBitsWidth > 0 {
			bb.AppendBits(uint32(modeBits), modeBitsWidth)
		}
		bb.AppendBits(uint32(seg.numChars), microCharCountBits(chosen, seg.mode))
		bb.AppendBuffer(seg.data)
	}
	terminatorLen := microTerminatorLen(chosen)
	if capBits-bb.Len() < terminatorLen {
		terminatorLen = capBits - bb.Len()
	}
	if terminatorLen > 0 {
		bb.AppendBits(0, terminatorLen)
	}
	bb.PadToByte()
	bb.PadToLength(capBits)

	dataCodewords := bb.ToCodewords()
	eccLen := microECCodewords[chosen][ecl]
	enc := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	allCodewords := append(append([]byte{}, dataCodewords...), enc.EncodeBytes(dataCodewords, eccLen)...)

	size := chosen.size()
	m := newMatrix(size)
	drawMicroFunctionPatterns(m, size)
	drawMicroCodewords(m, allCodewords, size)

	bestMask, bestPenalty := 0, -1
	for mask := 0; mask < 4; mask++ {
		applyMicroMask(m, mask)
		drawMicroFormatBits(m, chosen, ecl, mask)
		score := microEdgeScore(m)
		if bestPenalty == -1 || score > bestPenalty {
			bestPenalty = score
			bestMask = mask
		}
		applyMicroMask(m, mask)
	}
	applyMicroMask(m, bestMask)
	drawMicroFormatBits(m, chosen, ecl, bestMask)

	rects := matrixToRectangles(m)
	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      size,
		Height:     size,
		Rectangles: rects,
		EncodeInfo: fmt.Sprintf("Version: M%d\nECC Level: %s\nMask Pattern: %d", chosen, eclName(ecl), bestMask),
		QuietZoneH: 2,
		QuietZoneV: 2,
	}, nil
}

func microTotalBits(segs []segment, v microVersion) (int, bool) {
	total := 0
	for _, seg := range segs {
		_, modeWidth := microModeBits(v, seg.mode)
		ccBits := microCharCountBits(v, seg.mode)
		if seg.numChars >= 1<<uint(ccBits) {
			return 0, false
		}
		total += modeWidth + ccBits + seg.data.Len()
	}
	return total, true
}

// microModeBits returns a mode indicator's value and bit width for the
// given Micro QR version: M1 has no mode indicator (only numeric is
// allowed), and the indicator grows from 1 to 3 bits as the version
// increases.
func microModeBits(v microVersion, m mode) (int, int) {
	width := int(v) - 1
	if width == 0 {
		return 0, 0
	}
	switch m.bits {
	case modeNumeric.bits:
		return 0, width
	case modeAlphanumeric.bits:
		return 1, width
	case modeByte.bits:
		return 2, width
	default:
		return 3, width
	}
}

func microCharCountBits(v microVersion, m mode) int {
	base := map[int][4]int{
		modeNumeric.bits:      {3, 4, 5, 6},
		modeAlphanumeric.bits: {0, 3, 4, 5},
		modeByte.bits:         {0, 0, 4, 5},
	}[m.bits]
	return base[v-1]
}

func microTerminatorLen(v microVersion) int {
	return 3 + 2*(int(v)-1)
}

func drawMicroFunctionPatterns(m *matrix, size int) {
	for i := 0; i < size; i++ {
		m.set(i, 0, i%2 == 0)
		m.set(0, i, i%2 == 0)
	}
	drawFinderPattern(m, 4, 4)
}

func drawMicroCodewords(m *matrix, data []byte, size int) {
	i := 0
	for right := size - 1; right >= 1; right -= 2 {
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right/2)%2 == 1
				var y int
				if upward {
					y = size - 1 - vert
				} else {
					y = vert
				}
				if x < 1 || y < 1 {
					continue
				}
				if !m.isFunction[y][x] && i < len(data)*8 {
					m.modules[y][x] = (data[i>>3]>>uint(7-(i&7)))&1 != 0
					i++
				}
			}
		}
	}
}

func applyMicroMask(m *matrix, mask int) {
	for y := 1; y < m.size; y++ {
		for x := 1; x < m.size; x++ {
			if m.isFunction[y][x] {
				continue
			}
			var invert bool
			switch mask {
			case 0:
				invert = y%2 == 0
			case 1:
				invert = (y/2+x/3)%2 == 0
			case 2:
				invert = (x*y%2+x*y%3)%2 == 0
			case 3:
				invert = ((x+y)%2+x*y%3)%2 == 0
			}
			if invert {
				m.modules[y][x] = !m.modules[y][x]
			}
		}
	}
}

// drawMicroFormatBits draws the 15-bit Micro QR format information (symbol
// size indicator + ECC + mask), generalized from the QR format-info BCH
// computation with Micro QR's own polynomial (0x537, same generator, 10
// check bits) and mask XOR constant (0x4445).
func drawMicroFormatBits(m *matrix, v microVersion, ecl ECC, mask int) {
	sizeIndicator := microSizeIndicator(v, ecl)
	data := sizeIndicator<<2 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := (data << 10) | rem
	bits ^= 0x4445

	for i := 0; i < 8; i++ {
		m.set(1+i, 8, bit(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.set(8, 1+(14-i), bit(bits, i))
	}
}

// microSizeIndicator encodes (version, ECL) into the 4-bit Micro QR symbol
// number used by the format information, per the standard's fixed table.
func microSizeIndicator(v microVersion, ecl ECC) int {
	switch v {
	case M1:
		return 0
	case M2:
		if ecl == Low {
			return 1
		}
		return 2
	case M3:
		if ecl == Low {
			return 3
		}
		return 4
	default:
		switch ecl {
		case Low:
			return 5
		case Medium:
			return 6
		case Quartile:
			return 7
		default:
			return 8
		}
	}
}

// microEdgeScore implements Micro QR's mask scoring rule: count the dark
// modules along the right edge (sum1) and bottom edge (sum2), then score
// min(sum1,sum2)*16 + max(sum1,sum2), larger is better (the opposite sense
// of QR's penalty minimization).
func microEdgeScore(m *matrix) int {
	sum1, sum2 := 0, 0
	for y := 1; y < m.size; y++ {
		if m.modules[y][m.size-1] {
			sum1++
		}
	}
	for x := 1; x < m.size; x++ {
		if m.modules[m.size-1][x] {
			sum2++
		}
	}
	if sum1 > sum2 {
		sum1, sum2 = sum2, sum1
	}
	return sum1*16 + sum2
}
