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
	"math"

	"github.com/okapi-go/barcode/bitbuf"
	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/reedsolomon"
	"github.com/okapi-go/barcode/symbol"
)

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// Options configures the QR Code encoder.
type Options struct {
	// ECL is the requested error correction level. Defaults to Medium.
	ECL ECC
	// BoostECL allows the encoder to raise the error correction level when
	// the chosen version has unused capacity, matching the teacher's
	// default behavior.
	BoostECL bool
	// Mask forces a specific mask pattern (1-7); 0 (the zero value) and -1
	// both select automatically by penalty score, so pattern 0 cannot be
	// forced.
	Mask int
	MinVersion, MaxVersion int
}

// Encoder implements QR Code (spec.md §4.7).
type Encoder struct {
	Options Options
}

func (o Options) withDefaults() Options {
	if o.MinVersion == 0 {
		o.MinVersion = 1
	}
	if o.MaxVersion == 0 {
		o.MaxVersion = 40
	}
	if o.Mask == 0 {
		o.Mask = -1
	}
	return o
}

type matrix struct {
	size       int
	modules    [][]bool
	isFunction [][]bool
}

func newMatrix(size int) *matrix {
	m := &matrix{size: size, modules: make([][]bool, size), isFunction: make([][]bool, size)}
	for i := range m.modules {
		m.modules[i] = make([]bool, size)
		m.isFunction[i] = make([]bool, size)
	}
	return m
}

func (m *matrix) set(x, y int, black bool) {
	m.modules[y][x] = black
	m.isFunction[y][x] = true
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 4:
// input "HELLO WORLD" at ECC Low selects the alphanumeric mode, version 1
// (21x21), with three finder patterns and an encodeInfo string reporting
// the chosen version, ECC level, and mask pattern.
func (e Encoder) Encode(content string) (geom.Symbol, error) {
	opts := e.Options.withDefaults()
	segs := makeSegments(content)

	version := opts.MinVersion
	var used int
	for {
		capBits := numDataCodewords[opts.ECL][version] * 8
		var ok bool
		used, ok = totalBits(segs, version)
		if ok && used <= capBits {
			break
		}
		if version >= opts.MaxVersion {
			return geom.Symbol{}, symbol.Newf(symbol.ErrCapacityExceeded, "qrcode: content too long for version range [%d,%d]", opts.MinVersion, opts.MaxVersion)
		}
		version++
	}

	ecl := opts.ECL
	if opts.BoostECL {
		for newEcl := Medium; newEcl <= High; newEcl++ {
			if used <= numDataCodewords[newEcl][version]*8 {
				ecl = newEcl
			}
		}
	}

	bb := bitbuf.New(numDataCodewords[ecl][version] * 8)
	for _, seg := range segs {
		bb.AppendBits(uint32(seg.mode.bits), 4)
		bb.AppendBits(uint32(seg.numChars), seg.mode.numCharCountBits(version))
		bb.AppendBuffer(seg.data)
	}

	capBits := numDataCodewords[ecl][version] * 8
	terminatorLen := 4
	if capBits-bb.Len() < terminatorLen {
		terminatorLen = capBits - bb.Len()
	}
	bb.AppendBits(0, terminatorLen)
	bb.PadToByte()
	bb.PadToLength(capBits)

	dataCodewords := bb.ToCodewords()

	size := version*4 + 17
	m := newMatrix(size)
	drawFunctionPatterns(m, version, ecl)
	allCodewords := addECCAndInterleave(dataCodewords, version, ecl)
	drawCodewords(m, allCodewords, version)

	mask := opts.Mask
	if mask == -1 {
		mask = chooseBestMask(m, ecl)
	} else {
		applyMask(m, mask)
		drawFormatBits(m, ecl, mask)
	}

	rects := matrixToRectangles(m)
	encodeInfo := fmt.Sprintf("Version: %d\nECC Level: %s\nMask Pattern: %d", version, eclName(ecl), mask)

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      size,
		Height:     size,
		Rectangles: rects,
		EncodeInfo: encodeInfo,
		QuietZoneH: 4,
		QuietZoneV: 4,
	}, nil
}

func eclName(e ECC) string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// matrixToRectangles emits one 1x1 rectangle per dark module, matching the
// teacher's SVG renderer's one-path-per-module approach (grkuntzmd-qrcodegen
// ToSVGString), generalized to the device-independent geom.Rectangle form.
func matrixToRectangles(m *matrix) []geom.Rectangle {
	var rects []geom.Rectangle
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.modules[y][x] {
				rects = append(rects, geom.Rectangle{X: x, Y: y, Width: 1, Height: 1})
			}
		}
	}
	return rects
}

func addECCAndInterleave(data []byte, version int, ecl ECC) []byte {
	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECCLen := eccCodewordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	enc := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	blocks := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dlen := shortBlockLen - blockECCLen
		if i >= numShortBlocks {
			dlen++
		}
		dat := data[k : k+dlen]
		k += dlen
		block := make([]byte, dlen+blockECCLen)
		copy(block, dat)
		ecc := enc.EncodeBytes(dat, blockECCLen)
		copy(block[dlen:], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	pos := 0
	for i := 0; i < shortBlockLen-blockECCLen+1; i++ {
		for j := 0; j < numBlocks; j++ {
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[pos] = blocks[j][i]
				pos++
			}
		}
	}
	return result
}

func drawCodewords(m *matrix, data []byte, version int) {
	i := 0
	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < m.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = m.size - 1 - vert
				} else {
					y = vert
				}
				if !m.isFunction[y][x] && i < len(data)*8 {
					m.modules[y][x] = (data[i>>3]>>uint(7-(i&7)))&1 != 0
					i++
				}
			}
		}
	}
}

func drawFunctionPatterns(m *matrix, version int, ecl ECC) {
	for i := 0; i < m.size; i++ {
		m.set(6, i, i%2 == 0)
		m.set(i, 6, i%2 == 0)
	}
	drawFinderPattern(m, 3, 3)
	drawFinderPattern(m, m.size-4, 3)
	drawFinderPattern(m, 3, m.size-4)

	pos := alignmentPatternPositions[version]
	numAlign := len(pos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue
			}
			drawAlignmentPattern(m, pos[i], pos[j])
		}
	}

	drawFormatBits(m, ecl, 0)
	drawVersion(m, version)
}

func drawFinderPattern(m *matrix, x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			xx, yy := x+dx, y+dy
			if xx >= 0 && xx < m.size && yy >= 0 && yy < m.size {
				m.set(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

func drawAlignmentPattern(m *matrix, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.set(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

func drawFormatBits(m *matrix, ecl ECC, mask int) {
	data := ecl.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := (data << 10) | rem
	bits ^= 0x5412

	for i := 0; i <= 5; i++ {
		m.set(8, i, bit(bits, i))
	}
	m.set(8, 7, bit(bits, 6))
	m.set(8, 8, bit(bits, 7))
	m.set(7, 8, bit(bits, 8))
	for i := 9; i < 15; i++ {
		m.set(14-i, 8, bit(bits, i))
	}
	for i := 0; i < 8; i++ {
		m.set(m.size-1-i, 8, bit(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.set(8, m.size-15+i, bit(bits, i))
	}
	m.set(8, m.size-8, true)
}

func drawVersion(m *matrix, version int) {
	if version < 7 {
		return
	}
	rem := version
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	bits := version<<12 | rem
	for i := 0; i < 18; i++ {
		b := bit(bits, i)
		a := m.size - 11 + i%3
		c := i / 3
		m.set(a, c, b)
		m.set(c, a, b)
	}
}

func bit(x, i int) bool {
	return (x>>uint(i))&1 == 1
}

func applyMask(m *matrix, mask int) {
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.isFunction[y][x] {
				continue
			}
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			}
			if invert {
				m.modules[y][x] = !m.modules[y][x]
			}
		}
	}
}

func chooseBestMask(m *matrix, ecl ECC) int {
	bestMask := 0
	bestPenalty := math.MaxInt32
	for mask := 0; mask < 8; mask++ {
		applyMask(m, mask)
		drawFormatBits(m, ecl, mask)
		penalty := penaltyScore(m)
		if penalty < bestPenalty {
			bestPenalty = penalty
			bestMask = mask
		}
		applyMask(m, mask) // undo
	}
	applyMask(m, bestMask)
	drawFormatBits(m, ecl, bestMask)
	return bestMask
}

func penaltyScore(m *matrix) int {
	result := 0
	for y := 0; y < m.size; y++ {
		result += runPenalty(func(x int) bool { return m.modules[y][x] }, m.size)
	}
	for x := 0; x < m.size; x++ {
		result += runPenalty(func(y int) bool { return m.modules[y][x] }, m.size)
	}

	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			c := m.modules[y][x]
			if c == m.modules[y][x+1] && c == m.modules[y+1][x] && c == m.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	black := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.modules[y][x] {
				black++
			}
		}
	}
	total := m.size * m.size
	k := (absInt(black*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// runPenalty applies the N1 (run-length) and N3 (finder-like pattern)
// penalty rules along one line, generalized from the teacher's
// getPenaltyScore row/column loops into a single function parameterized by
// an access closure.
func runPenalty(at func(int) bool, size int) int {
	result := 0
	runColor := false
	runLen := 0
	var history [7]int
	addHistory := func(length int) {
		if history[0] == 0 {
			length += size
		}
		copy(history[1:], history[:6])
		history[0] = length
	}
	countPatterns := func() int {
		n := history[1]
		core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
		c := 0
		if core && history[0] >= n*4 && history[6] >= n {
			c++
		}
		if core && history[6] >= n*4 && history[0] >= n {
			c++
		}
		return c
	}

	for i := 0; i < size; i++ {
		if at(i) == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			addHistory(runLen)
			if !runColor {
				result += countPatterns() * penaltyN3
			}
			runColor = at(i)
			runLen = 1
		}
	}
	if runColor {
		addHistory(runLen)
		runLen = 0
	}
	runLen += size
	addHistory(runLen)
	result += countPatterns() * penaltyN3

	return result
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
