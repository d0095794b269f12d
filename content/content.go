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
// Package content implements the input-contract preprocessing spec.md §6
// describes ahead of symbol encoding: GS1 Application Identifier bracket
// stripping with FNC1 injection, HIBC prefix/check-character framing, and
// ECI text-to-byte mapping. No encoder in this module imports this package;
// a caller runs it on the content before passing the result to an encoder.
package content

import (
	"regexp"
	"strings"

	"github.com/okapi-go/barcode/symbol"
)

// FNC1 is the sentinel byte this package injects at the start of a GS1
// message and after each variable-length Application Identifier field that
// another field follows. No encoder in this module translates it to a
// function-character codeword; code128 rejects it as an invalid character.
const FNC1 = 0xF1

// aiLengthRules gives the fixed field length for Application Identifiers
// whose value length is not self-terminating. AIs absent from this table
// are treated as variable-length, terminated by FNC1 or end of input.
var aiLengthRules = map[string]int{
	"00": 18, "01": 14, "02": 14, "03": 14,
	"11": 6, "12": 6, "13": 6, "15": 6, "16": 6, "17": 6,
	"20": 2, "31": 10, "32": 10, "33": 10, "34": 10, "35": 10, "36": 10,
	"41": 14,
}

var aiRegexp = regexp.MustCompile(`^\((\d{2,4})\)`)

// EncodeGS1 strips `(AI)value` brackets from a GS1 payload, validates AI
// 253's 13..17 digit length rule (spec.md §6), and returns the FNC1-framed
// byte stream.
func EncodeGS1(payload string) ([]byte, error) {
	var out []byte
	out = append(out, FNC1)

	remaining := payload
	prevVariable := false
	for len(remaining) > 0 {
		m := aiRegexp.FindStringSubmatch(remaining)
		if m == nil {
			return nil, symbol.Newf(symbol.ErrInvalidCharacter, "content: GS1 payload must begin each segment with (AI), got %q", remaining)
		}
		ai := m[1]
		remaining = remaining[len(m[0]):]

		fixedLen, fixed := aiLengthRules[ai]
		var value string
		if fixed {
			if len(remaining) < fixedLen {
				return nil, symbol.Newf(symbol.ErrLengthOutOfRange, "content: AI %s requires %d digits, got %d", ai, fixedLen, len(remaining))
			}
			value = remaining[:fixedLen]
			remaining = remaining[fixedLen:]
		} else {
			next := strings.IndexByte(remaining, '(')
			if next < 0 {
				value = remaining
				remaining = ""
			} else {
				value = remaining[:next]
				remaining = remaining[next:]
			}
		}

		if ai == "253" && (len(value) < 13 || len(value) > 17) {
			return nil, symbol.Newf(symbol.ErrLengthOutOfRange, "content: AI 253 requires 13-17 digits, got %d", len(value))
		}

		if prevVariable {
			out = append(out, FNC1)
		}
		prevVariable = !fixed
		out = append(out, []byte(ai)...)
		out = append(out, []byte(value)...)
	}
	return out, nil
}

// EncodeHIBC prepends the HIBC `+` marker to payload and appends a mod-43
// check character computed over the Code 39 alphabet, per spec.md §6.
func EncodeHIBC(payload string) (string, error) {
	for _, r := range payload {
		if strings.IndexRune(hibcAlphabet, r) < 0 {
			return "", symbol.Newf(symbol.ErrInvalidCharacter, "content: HIBC payload character %q is outside the HIBC alphabet", r)
		}
	}
	framed := "+" + payload
	sum := 0
	for _, r := range framed {
		sum += strings.IndexRune(hibcAlphabet, r)
	}
	check := hibcAlphabet[sum%43]
	return framed + string(check), nil
}

const hibcAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// eciTables maps an ECI designator to its byte encoding function. Only the
// small set of designators spec.md's ECI supplement names are covered;
// anything else falls back to ISO-8859-1 (designator 3), the module-wide
// default.
var eciTables = map[int]func(rune) (byte, bool){
	3:  latin1Byte,  // ISO-8859-1
	4:  latin1Byte,  // ISO-8859-2 (approximated as Latin-1 at contract level)
	26: utf8PassthroughByte, // UTF-8 is handled by the caller encoding to []byte(content) directly; this path rejects non-ASCII to signal "use raw bytes"
}

func latin1Byte(r rune) (byte, bool) {
	if r < 0 || r > 0xFF {
		return 0, false
	}
	return byte(r), true
}

func utf8PassthroughByte(r rune) (byte, bool) {
	if r > 0x7F {
		return 0, false
	}
	return byte(r), true
}

// EncodeECI maps content to bytes under the named ECI designator (default 3,
// ISO-8859-1, per spec.md §3's eciMode default). Characters unrepresentable
// in the chosen ECI yield InvalidCharacter, per spec.md §6.
func EncodeECI(content string, eciMode int) ([]byte, error) {
	mapper, ok := eciTables[eciMode]
	if !ok {
		mapper = latin1Byte
	}
	out := make([]byte, 0, len(content))
	for _, r := range content {
		b, ok := mapper(r)
		if !ok {
			return nil, symbol.Newf(symbol.ErrInvalidCharacter, "content: character %q is not representable under ECI %d", r, eciMode)
		}
		out = append(out, b)
	}
	return out, nil
}
