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

var code93Regexp = regexp.MustCompile(`^[0-9A-Z\-. $/+%]*$`)

// code93CheckOrder is the 47-symbol Code 93 alphabet order used for the
// mod-47 C and K check digit computations: the 43 Code 39 characters plus
// the four shift characters used only when encoding full ASCII.
const code93CheckOrder = code39CheckOrder + "\x00\x01\x02\x03"

// Code93Encoder implements Code 93, a higher-density descendant of Code 39
// with two mandatory mod-47 check characters (spec.md §4.5).
type Code93Encoder struct {
	RowHeight int
}

func (e Code93Encoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

func (e Code93Encoder) Encode(content string) (geom.Symbol, error) {
	upper := strings.ToUpper(content)
	if !code93Regexp.MatchString(upper) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "code93: invalid character in %q", content)
	}
	if len(upper) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code93: content must not be empty")
	}

	c := code93CheckDigit(upper, 20)
	k := code93CheckDigit(upper+string(rune(c)), 15)

	var pattern strings.Builder
	pattern.WriteString(code93Table['*'])
	for i := 0; i < len(upper); i++ {
		pattern.WriteString(code93Table[upper[i]])
	}
	pattern.WriteString(code93Table[c])
	pattern.WriteString(code93Table[k])
	pattern.WriteString(code93Table['*'])
	pattern.WriteString("1") // trailing termination bar

	p := pattern.String()
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})
	width := symbol.PatternWidth(p)
	readable := "*" + upper + "*"

	return geom.Symbol{
		Content:    content,
		Readable:   readable,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: readable, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\nCheck Digit C: computed\nCheck Digit K: computed",
	}, nil
}

// code93CheckDigit computes a mod-47 weighted checksum over the
// code93CheckOrder alphabet, cycling weights 1..maxWeight from the rightmost
// character (spec.md §4.5). maxWeight is 20 for the C check and 15 for the K
// check, per the Code 93 standard.
func code93CheckDigit(s string, maxWeight int) byte {
	sum := 0
	weight := 1
	for i := len(s) - 1; i >= 0; i-- {
		sum += weight * strings.IndexByte(code93CheckOrder, s[i])
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return code93CheckOrder[sum%47]
}
