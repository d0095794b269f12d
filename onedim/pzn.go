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

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/symbol"
)

var pznRegexp = regexp.MustCompile(`^[0-9]{6}$`)

// PZNEncoder implements the Pharmazentralnummer (PZN) symbology: six digits
// plus a mod-11 check digit, rendered as Code 39 with a leading "PZN-"
// prefix in the human-readable text (spec.md §4.5).
type PZNEncoder struct {
	RowHeight int
}

func (e PZNEncoder) Encode(content string) (geom.Symbol, error) {
	if !pznRegexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "pzn: content must be exactly 6 digits, got %q", content)
	}

	sum := 0
	for i, weight := 0, 2; i < 6; i, weight = i+1, weight+1 {
		sum += weight * int(content[i]-'0')
	}
	check := sum % 11
	if check == 10 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "pzn: %q produces an invalid check digit (10)", content)
	}

	body := "0" + content + string(rune('0'+check))
	s, err := Code39Encoder{Options: Code39Options{RowHeight: e.RowHeight}}.Encode(body)
	if err != nil {
		return geom.Symbol{}, err
	}
	s.Content = content
	s.Readable = "PZN-" + content + string(rune('0'+check))
	for i := range s.Texts {
		s.Texts[i].Text = s.Readable
	}
	s.EncodeInfo += "\nCheck Digit: mod11"
	return s, nil
}
