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

// codeSet identifies which of the three Code 128 code sets a segment of
// the input is encoded in.
type codeSet int

const (
	setA codeSet = iota
	setB
	setC
)

// Options configures the Code 128 encoder.
type Options struct {
	RowHeight int
	// GS1 wraps the symbol as a GS1-128 (FNC1 immediately after the start
	// character).
	GS1 bool
}

// Encoder implements Code 128 (spec.md §4.6).
type Encoder struct {
	Options Options
}

func (e Encoder) rowHeight() int {
	if e.Options.RowHeight > 0 {
		return e.Options.RowHeight
	}
	return 50
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 3:
// input "12345678" (eight digits) is latched entirely into Code Set C as
// four C-codewords, starting with Start C (symbol value 105). With the
// check character and the stop character that makes 7 symbol characters:
// six of 11 modules plus the 13-module stop, a pattern 79 modules wide.
func (e Encoder) Encode(content string) (geom.Symbol, error) {
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code128: content must not be empty")
	}

	values, err := encodeValues([]byte(content), e.Options.GS1)
	if err != nil {
		return geom.Symbol{}, err
	}

	values = append(values, checkDigit(values))
	values = append(values, stop)

	p := assemblePattern(values)
	width := symbol.PatternWidth(p)
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: content, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\nSymbol Characters: " + strconv.Itoa(len(values)),
	}, nil
}

// encodeValues converts content into the sequence of Code 128 symbol
// values, choosing the initial code set and inserting latches/shifts per
// the block-reduction rule (spec.md §4.6): prefer Code Set C whenever four
// or more consecutive digits remain (or two at the very end), otherwise
// stay in A or B and shift for the rare out-of-set control character.
func encodeValues(data []byte, gs1 bool) ([]int, error) {
	set, startValue := chooseInitialSet(data)
	values := []int{startValue}
	if gs1 {
		values = append(values, fnc1)
	}

	i := 0
	for i < len(data) {
		if runLen := digitRunLength(data, i); runLen >= 2 && (set == setC || runLen >= 4 || i+runLen == len(data) && runLen%2 == 0) {
			if set != setC {
				values = append(values, codeC)
				set = setC
			}
			pairLen := runLen
			if pairLen%2 != 0 {
				pairLen--
			}
			for j := 0; j < pairLen; j += 2 {
				v := int(data[i+j]-'0')*10 + int(data[i+j+1]-'0')
				values = append(values, v)
			}
			i += pairLen
			continue
		}

		if set == setC {
			// Odd leftover digit, or a non-digit encountered: latch back to B.
			values = append(values, codeB)
			set = setB
		}

		b := data[i]
		v, ok := codeSetValueFor(set, b)
		if !ok {
			alt := otherLatin1Set(set)
			av, aok := codeSetValueFor(alt, b)
			if !aok {
				return nil, symbol.Newf(symbol.ErrInvalidCharacter, "code128: byte 0x%02X not representable", b)
			}
			values = append(values, shiftLatchFor(alt), av)
			i++
			continue
		}
		values = append(values, v)
		i++
	}
	return values, nil
}

func codeSetValueFor(set codeSet, b byte) (int, bool) {
	if set == setA {
		return codeSetAValue(b)
	}
	return codeSetBValue(b)
}

func otherLatin1Set(set codeSet) codeSet {
	if set == setA {
		return setB
	}
	return setA
}

func shiftLatchFor(set codeSet) int {
	// A single out-of-set character uses SHIFT rather than a full latch.
	return shift
}

// chooseInitialSet picks the starting code set and its Start symbol value,
// preferring Code Set C when the input begins with four or more digits
// (spec.md §8 scenario 3), otherwise Code Set B unless the input contains
// a control character only representable in Set A.
func chooseInitialSet(data []byte) (codeSet, int) {
	if digitRunLength(data, 0) >= 4 {
		return setC, startC
	}
	for _, b := range data {
		if b < 0x20 {
			return setA, startA
		}
	}
	return setB, startB
}

// digitRunLength returns the number of consecutive ASCII digits starting
// at position i.
func digitRunLength(data []byte, i int) int {
	n := 0
	for i+n < len(data) && data[i+n] >= '0' && data[i+n] <= '9' {
		n++
	}
	return n
}

// checkDigit computes the Code 128 modulo-103 check character: the start
// value plus the sum of each subsequent value weighted by its 1-based
// position, mod 103 (spec.md §4.6).
func checkDigit(values []int) int {
	sum := values[0]
	for i := 1; i < len(values); i++ {
		sum += values[i] * i
	}
	return sum % 103
}

// assemblePattern converts a sequence of symbol values into a single
// width pattern string.
func assemblePattern(values []int) string {
	var out []byte
	for _, v := range values {
		if v == stop {
			for _, w := range stopPattern {
				out = append(out, byte('0'+w))
			}
			continue
		}
		for _, w := range patterns[v] {
			out = append(out, byte('0'+w))
		}
	}
	return string(out)
}
