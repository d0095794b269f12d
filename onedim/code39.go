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

var code39Regexp = regexp.MustCompile(`^[0-9A-Z\-. $/+%]*$`)

// Code39Options configures the Code 39 encoder.
type Code39Options struct {
	// CheckDigit enables the optional MOD-43 check digit (spec.md §4.5).
	CheckDigit bool
	RowHeight  int
}

// Code39Encoder implements Code 39 (and, via LOGMARSEncoder, LOGMARS).
type Code39Encoder struct {
	Options Code39Options
}

func (e Code39Encoder) rowHeight() int {
	if e.Options.RowHeight > 0 {
		return e.Options.RowHeight
	}
	return 50
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 1:
// input "HELLO" with no check digit produces readable "*HELLO*" and a
// pattern beginning with the start character's "1211212111".
func (e Code39Encoder) Encode(content string) (geom.Symbol, error) {
	upper := strings.ToUpper(content)
	if !code39Regexp.MatchString(upper) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "code39: invalid character in %q", content)
	}
	if len(upper) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code39: content must not be empty")
	}

	var pattern strings.Builder
	pattern.WriteString(code39Table['*'])
	pattern.WriteString("1") // inter-character gap
	for i := 0; i < len(upper); i++ {
		pattern.WriteString(code39Table[upper[i]])
		pattern.WriteString("1")
	}

	readable := "*" + upper + "*"
	info := "Symbol Rows: 1"
	if e.Options.CheckDigit {
		check := code39CheckDigit(upper)
		pattern.WriteString(code39Table[check])
		pattern.WriteString("1")
		readable = "*" + upper + string(rune(check)) + "*"
		info += "\nCheck Digit: computed"
	}
	pattern.WriteString(code39Table['*'])

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
		EncodeInfo: info,
	}, nil
}

// code39CheckDigit computes the MOD-43 check character over code39CheckOrder.
func code39CheckDigit(s string) byte {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += strings.IndexByte(code39CheckOrder, s[i])
	}
	return code39CheckOrder[sum%43]
}

// LOGMARSEncoder wraps Code39Encoder with the mandatory MOD-43 check digit
// required by the LOGMARS (MIL-STD-1189) profile.
type LOGMARSEncoder struct {
	RowHeight int
}

func (e LOGMARSEncoder) Encode(content string) (geom.Symbol, error) {
	s, err := Code39Encoder{Options: Code39Options{CheckDigit: true, RowHeight: e.RowHeight}}.Encode(content)
	if err != nil {
		return geom.Symbol{}, err
	}
	return s, nil
}

// ExtendedCode39Encoder implements "Code 39 Extended": every byte of the
// full ASCII range is mapped to one or two standard Code 39 characters via
// shift characters ($ % / +), then encoded as plain Code 39.
type ExtendedCode39Encoder struct {
	Options Code39Options
}

// extendedCode39Shift translates one ASCII byte into its Code 39 Extended
// representation (one or two base Code 39 characters).
func extendedCode39Shift(b byte) string {
	switch {
	case b == 0:
		return "%U"
	case b < 27:
		return "$" + string(rune('A'+int(b)-1))
	case b >= 27 && b < 32:
		return "%" + string(rune('A'+int(b)-26))
	case b >= 32 && b < 48:
		return "/" + string(rune('A'+int(b)-32))
	case b >= 48 && b < 58:
		return string(rune(b)) // digits pass through
	case b >= 58 && b < 64:
		return "%" + string(rune('F'+int(b)-58))
	case b >= 64 && b < 91:
		return string(rune(b)) // 'A'..'Z' pass through ('@' handled above the range check)
	case b >= 91 && b < 96:
		return "%" + string(rune('K'+int(b)-91))
	case b == 96:
		return "%V"
	case b >= 97 && b < 123:
		return "+" + string(rune('A'+int(b)-97))
	case b >= 123 && b < 128:
		return "%" + string(rune('P'+int(b)-123))
	default:
		return ""
	}
}

func (e ExtendedCode39Encoder) Encode(content string) (geom.Symbol, error) {
	var translated strings.Builder
	for i := 0; i < len(content); i++ {
		frag := extendedCode39Shift(content[i])
		if frag == "" {
			return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "code39ext: byte 0x%02X not representable", content[i])
		}
		translated.WriteString(frag)
	}
	s, err := Code39Encoder{Options: e.Options}.Encode(translated.String())
	if err != nil {
		return geom.Symbol{}, err
	}
	s.Content = content
	return s, nil
}
