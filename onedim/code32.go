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

var code32Regexp = regexp.MustCompile(`^[0-9]{8}$`)

const code32Alphabet = "0123456789BCDFGHJKLMNPQRSTUVWXYZ"

// Code32Encoder implements Code 32 (Italian pharmacode): an 8-digit input
// with a Luhn-style mod-10 check digit, re-encoded in base 32 and rendered
// as Code 39 (spec.md §4.5).
type Code32Encoder struct {
	RowHeight int
}

func (e Code32Encoder) Encode(content string) (geom.Symbol, error) {
	if !code32Regexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "code32: content must be exactly 8 digits, got %q", content)
	}

	sum := 0
	for i := 0; i < 8; i++ {
		d := int(content[i] - '0')
		if i%2 == 0 {
			d *= 2
		}
		sum += d / 10
		sum += d % 10
	}
	check := sum % 10

	value := int64(0)
	for i := 0; i < 8; i++ {
		value = value*10 + int64(content[i]-'0')
	}
	value = value*10 + int64(check)

	var digits [6]byte
	for i := 5; i >= 0; i-- {
		digits[i] = code32Alphabet[value%32]
		value /= 32
	}

	readable := "A" + string(digits[:]) + string(rune('0'+check))
	s, err := Code39Encoder{Options: Code39Options{RowHeight: e.RowHeight}}.Encode(string(digits[:]))
	if err != nil {
		return geom.Symbol{}, err
	}
	s.Content = content
	s.Readable = readable
	for i := range s.Texts {
		s.Texts[i].Text = readable
	}
	s.EncodeInfo += "\nCheck Digit: mod10 (Luhn-style)"
	return s, nil
}
