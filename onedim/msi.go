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

var msiRegexp = regexp.MustCompile(`^[0-9]*$`)

// MSIEncoder implements MSI-Plessey, a binary-weighted pulse-width code with
// an optional mod-10 (Luhn) or mod-11 check digit (spec.md §4.5).
type MSIEncoder struct {
	RowHeight int
	// CheckDigit selects "none", "mod10", "mod11", or "mod1010" (two mod-10
	// digits). Defaults to "mod10".
	CheckDigit string
}

func (e MSIEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

func (e MSIEncoder) checkDigit() string {
	if e.CheckDigit == "" {
		return "mod10"
	}
	return e.CheckDigit
}

func (e MSIEncoder) Encode(content string) (geom.Symbol, error) {
	if !msiRegexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "msi: invalid character in %q", content)
	}
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "msi: content must not be empty")
	}

	checked := content
	switch e.checkDigit() {
	case "none":
	case "mod10":
		checked += msiMod10(content)
	case "mod1010":
		checked += msiMod10(content)
		checked += msiMod10(checked)
	case "mod11":
		checked += msiMod11(content)
	default:
		return geom.Symbol{}, symbol.Newf(symbol.ErrIncompatibleOptions, "msi: unknown check digit mode %q", e.CheckDigit)
	}

	var pattern strings.Builder
	pattern.WriteString("21") // start: one wide bar, narrow space
	for i := 0; i < len(checked); i++ {
		digit := checked[i] - '0'
		for bit := 3; bit >= 0; bit-- {
			pattern.WriteString(msiBitPatterns[(digit>>uint(bit))&1])
		}
	}
	pattern.WriteString("121") // stop: narrow bar, wide space, narrow bar

	p := pattern.String()
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})
	width := symbol.PatternWidth(p)

	return geom.Symbol{
		Content:    content,
		Readable:   checked,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: checked, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1\nCheck Digit: " + e.checkDigit(),
	}, nil
}

// msiMod10 returns the single Luhn (mod-10) check digit for s.
func msiMod10(s string) string {
	sum := 0
	double := true
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	check := (10 - (sum % 10)) % 10
	return string(rune('0' + check))
}

// msiMod11 returns the single mod-11 check digit for s, using weights
// cycling 2..7 from the rightmost digit.
func msiMod11(s string) string {
	sum := 0
	weight := 2
	for i := len(s) - 1; i >= 0; i-- {
		sum += weight * int(s[i]-'0')
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	check := (11 - (sum % 11)) % 11
	if check == 10 {
		check = 0
	}
	return string(rune('0' + check))
}
