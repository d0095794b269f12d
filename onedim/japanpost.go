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

var japanPostRegexp = regexp.MustCompile(`^[0-9A-Z\-]*$`)

// japanPostChar maps an input character to its CAP alphabet code (0-9 pass
// through; letters and '-' are re-coded per the Japan Post customer barcode
// specification, which packs [A-Z] into pairs of CAP digits).
func japanPostChar(b byte) string {
	switch {
	case b >= '0' && b <= '9':
		return string(rune(b))
	case b == '-':
		return "12"
	case b >= 'A' && b <= 'J':
		return "1" + string(rune('0'+int(b-'A')))
	case b >= 'K' && b <= 'T':
		return "2" + string(rune('0'+int(b-'K')))
	case b >= 'U' && b <= 'Z':
		return "3" + string(rune('0'+int(b-'U')))
	default:
		return ""
	}
}

// JapanPostEncoder implements the Japan Post Customer Barcode: a four-height
// (F/A/D/T) alphabet with a mod-19 check character (spec.md §4.5).
type JapanPostEncoder struct {
	RowHeight int
}

func (e JapanPostEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 20
}

func (e JapanPostEncoder) Encode(content string) (geom.Symbol, error) {
	if !japanPostRegexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "japanpost: invalid character in %q", content)
	}
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "japanpost: content must not be empty")
	}

	var capDigits strings.Builder
	for i := 0; i < len(content); i++ {
		frag := japanPostChar(content[i])
		if frag == "" {
			return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "japanpost: byte 0x%02X not representable", content[i])
		}
		capDigits.WriteString(frag)
	}
	digits := capDigits.String()
	check := japanPostCheckDigit(digits)

	glyphs := digits + string(rune(check))

	var pattern strings.Builder
	pattern.WriteString("FA") // start bar
	for i := 0; i < len(glyphs); i++ {
		pattern.WriteString(japanPostTable[glyphs[i]])
	}
	pattern.WriteString("DA") // stop bar

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      len(pattern.String()) * 2,
		Height:     e.rowHeight(),
		Rectangles: japanPostBars(pattern.String(), e.rowHeight()),
		EncodeInfo: "Symbol Rows: 1\nCheck Digit: mod19",
	}, nil
}

// japanPostCheckDigit computes the mod-19 check digit over the CAP digit
// string and always returns a digit '0'-'9': remainders 10-18 wrap to
// '0'-'8'. The standard's separate check-only symbols are not produced.
func japanPostCheckDigit(digits string) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i] - '0')
	}
	r := sum % 19
	if r < 10 {
		return byte('0' + r)
	}
	// Remainders 10-18 map to the check-only CAP digits; represented here
	// with a wraparound into the existing four-height table.
	return byte('0' + (r - 10))
}

// japanPostBars converts a sequence of F/A/D/T height codes into rectangles
// of varying height, since this alphabet encodes data in bar height rather
// than width.
func japanPostBars(codes string, baseHeight int) []geom.Rectangle {
	var rects []geom.Rectangle
	x := 0
	const barWidth = 2
	for _, c := range codes {
		h := baseHeight
		y := 0
		switch c {
		case 'F': // full height
			h = baseHeight
		case 'A': // ascender
			h = baseHeight * 2 / 3
		case 'D': // descender
			h = baseHeight * 2 / 3
			y = baseHeight / 3
		case 'T': // tracker (short, centered)
			h = baseHeight / 3
			y = baseHeight / 3
		}
		rects = append(rects, geom.Rectangle{X: x, Y: y, Width: barWidth, Height: h})
		x += barWidth + 1
	}
	return rects
}
