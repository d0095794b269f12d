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

var eanDigitsRegexp = regexp.MustCompile(`^[0-9]+$`)

// EANEncoder implements EAN-13 and UPC-A (a zero-padded EAN-13 variant),
// with an optional 2- or 5-digit add-on (spec.md §4.5, exercised directly
// by spec.md §8 scenario 6).
type EANEncoder struct {
	RowHeight int
	// AddOn, if non-empty, is a 2- or 5-digit supplemental code appended
	// after the main symbol with the standard add-on gap.
	AddOn string
}

func (e EANEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 6:
// input "501234567890" (12 digits, UPC-A-style payload) yields a 13th check
// digit computed via 1-3-1-3... weighting, a 13-digit readable string, and
// a pattern with left-guard "101", centre-guard "01010", and right-guard
// "101".
func (e EANEncoder) Encode(content string) (geom.Symbol, error) {
	if !eanDigitsRegexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "ean13: invalid character in %q", content)
	}

	var payload string
	switch len(content) {
	case 12:
		payload = content
	case 13:
		payload = content[:12]
	default:
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "ean13: content must be 12 or 13 digits, got %q", content)
	}

	check := ean13CheckDigit(payload)
	if len(content) == 13 && content[12] != check {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "ean13: check digit mismatch in %q", content)
	}
	readable := payload + string(rune(check))

	parity := eanFirstDigitParity[payload[0]-'0']

	var pattern strings.Builder
	pattern.WriteString("111") // left guard, modules 101
	for i := 1; i <= 6; i++ {
		digit := int(payload[i] - '0')
		if parity[i-1] == 'L' {
			pattern.WriteString(binaryToPattern(eanL[digit]))
		} else {
			pattern.WriteString(binaryToPattern(eanG[digit]))
		}
	}
	pattern.WriteString("11111") // centre guard, modules 01010
	for i := 7; i <= 11; i++ {
		digit := int(payload[i] - '0')
		pattern.WriteString(binaryToPattern(eanR[digit]))
	}
	pattern.WriteString(binaryToPattern(eanR[int(check-'0')]))
	pattern.WriteString("111") // right guard, modules 101

	p := pattern.String()
	width := symbol.PatternWidth(p)
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})
	encodeInfo := "Symbol Rows: 1\nCheck Digit: computed\nFirst Digit Parity: " + parity

	if e.AddOn != "" {
		addon, err := EANAddOnEncoder{RowHeight: e.rowHeight()}.Encode(e.AddOn)
		if err != nil {
			return geom.Symbol{}, err
		}
		const addonGap = 9 // modules between the main symbol and the add-on guard
		offset := width + addonGap
		for _, r := range addon.Rectangles {
			r.X += offset
			rects = append(rects, r)
		}
		width = offset + addon.Width
		readable += " " + e.AddOn
		encodeInfo += "\n" + addon.EncodeInfo
	}

	return geom.Symbol{
		Content:    content,
		Readable:   readable,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: readable, Alignment: geom.AlignCenter}},
		EncodeInfo: encodeInfo,
	}, nil
}

// ean13CheckDigit computes the standard 1-3-1-3... weighted mod-10 check
// digit over a 12-digit payload.
func ean13CheckDigit(payload string) byte {
	sum := 0
	for i := 0; i < 12; i++ {
		weight := 1
		if i%2 != 0 {
			weight = 3
		}
		sum += weight * int(payload[i]-'0')
	}
	check := (10 - (sum % 10)) % 10
	return byte('0' + check)
}

// UPCAEncoder implements UPC-A as EAN-13 with an implicit leading zero.
type UPCAEncoder struct {
	RowHeight int
	AddOn     string
}

func (e UPCAEncoder) Encode(content string) (geom.Symbol, error) {
	switch len(content) {
	case 11:
		content = "0" + content
	case 12:
		content = "0" + content
	default:
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "upca: content must be 11 or 12 digits, got %q", content)
	}
	s, err := EANEncoder{RowHeight: e.RowHeight, AddOn: e.AddOn}.Encode(content)
	if err != nil {
		return geom.Symbol{}, err
	}
	s.Content = content[1:]
	s.Readable = strings.TrimPrefix(s.Readable, "0")
	return s, nil
}
