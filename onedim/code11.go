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
package onedim

import (
	"regexp"
	"strings"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/symbol"
)

var code11Regexp = regexp.MustCompile(`^[0-9\-]*$`)

const code11CheckOrder = "0123456789-"

// Code11Encoder implements Code 11, with one mandatory mod-11 "C" check
// character and, for content of 10 characters or more, a second mandatory
// mod-9 "K" check character (spec.md §4.5).
type Code11Encoder struct {
	RowHeight int
}

func (e Code11Encoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

func (e Code11Encoder) Encode(content string) (geom.Symbol, error) {
	if !code11Regexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "code11: invalid character in %q", content)
	}
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code11: content must not be empty")
	}

	c := code11CheckDigit(content, 10)
	checked := content + string(rune(code11CheckOrder[c]))
	readable := content + string(rune(code11CheckOrder[c]))
	checkInfo := "Check Digit C: computed"

	if len(content) >= 10 {
		k := code11CheckDigit(checked, 9)
		checked += string(rune(code11CheckOrder[k]))
		readable += string(rune(code11CheckOrder[k]))
		checkInfo = "Check Digit C: computed\nCheck Digit K: computed"
	}

	var pattern strings.Builder
	pattern.WriteString(code11Table['1'])
	pattern.WriteString("1")
	for i := 0; i < len(checked); i++ {
		pattern.WriteString(code11Table[checked[i]])
		pattern.WriteString("1")
	}
	pattern.WriteString(code11Table['1'])

	p := pattern.String()
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})
	width := symbol.PatternWidth(p)

	return geom.Symbol{
		Content:    content,
		Readable:   readable,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: readable, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\n" + checkInfo,
	}, nil
}

// code11CheckDigit computes a weighted mod-modulus checksum cycling weights
// 1..maxWeight from the rightmost character, returning an index into
// code11CheckOrder.
func code11CheckDigit(s string, maxWeight int) int {
	sum := 0
	weight := 1
	for i := len(s) - 1; i >= 0; i-- {
		sum += weight * strings.IndexByte(code11CheckOrder, s[i])
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	modulus := 11
	if maxWeight == 9 {
		modulus = 9
	}
	return sum % modulus
}
