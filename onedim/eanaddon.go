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
	"strconv"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/symbol"
)

var ean2Regexp = regexp.MustCompile(`^[0-9]{2}$`)
var ean5Regexp = regexp.MustCompile(`^[0-9]{5}$`)

// EANAddOnEncoder implements the 2-digit and 5-digit EAN/UPC supplemental
// add-ons, selected automatically from the content length (spec.md §4.5).
type EANAddOnEncoder struct {
	RowHeight int
}

func (e EANAddOnEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

func (e EANAddOnEncoder) Encode(content string) (geom.Symbol, error) {
	switch len(content) {
	case 2:
		return e.encode2(content)
	case 5:
		return e.encode5(content)
	default:
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "eanaddon: content must be 2 or 5 digits, got %q", content)
	}
}

func (e EANAddOnEncoder) encode2(content string) (geom.Symbol, error) {
	if !ean2Regexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "eanaddon: invalid 2-digit content %q", content)
	}
	value, _ := strconv.Atoi(content)
	parity := ean2AddonParity[value%4]

	pattern := "112" // add-on guard, modules 1011
	for i := 0; i < 2; i++ {
		digit := int(content[i] - '0')
		if parity[i] == 'L' {
			pattern += binaryToPattern(eanL[digit])
		} else {
			pattern += binaryToPattern(eanG[digit])
		}
		if i == 0 {
			pattern += "11" // inter-digit separator, modules 01
		}
	}

	rects := symbol.PlotPattern([]symbol.Row{{Pattern: pattern, Height: e.rowHeight()}})
	width := symbol.PatternWidth(pattern)
	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: content, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\nAdd-On: 2-digit",
	}, nil
}

func (e EANAddOnEncoder) encode5(content string) (geom.Symbol, error) {
	if !ean5Regexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "eanaddon: invalid 5-digit content %q", content)
	}
	sum := 0
	for i := 0; i < 5; i++ {
		weight := 3
		if i%2 != 0 {
			weight = 9
		}
		sum += weight * int(content[i]-'0')
	}
	parity := ean5AddonParity[sum%10]

	pattern := "112" // add-on guard, modules 1011
	for i := 0; i < 5; i++ {
		digit := int(content[i] - '0')
		if parity[i] == 'L' {
			pattern += binaryToPattern(eanL[digit])
		} else {
			pattern += binaryToPattern(eanG[digit])
		}
		if i < 4 {
			pattern += "11" // inter-digit separator, modules 01
		}
	}

	rects := symbol.PlotPattern([]symbol.Row{{Pattern: pattern, Height: e.rowHeight()}})
	width := symbol.PatternWidth(pattern)
	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: content, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\nAdd-On: 5-digit",
	}, nil
}
