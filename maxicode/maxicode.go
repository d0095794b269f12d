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
package maxicode

import (
	"strconv"
	"unicode"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/reedsolomon"
	"github.com/okapi-go/barcode/symbol"
)

// Mode selects a MaxiCode message mode. Modes 2 and 3 carry a structured
// carrier message (postal code/country/service class) ahead of a secondary
// message; modes 4 and 5 carry free text only.
type Mode int

const (
	ModeStructuredNumeric      Mode = 2
	ModeStructuredAlphanumeric Mode = 3
	ModeStandard               Mode = 4
	ModeFullECC                Mode = 5
)

// Options configures the MaxiCode encoder.
type Options struct {
	Mode Mode
	// PostalCode, CountryCode, ServiceClass are only consulted in modes 2
	// and 3 (spec.md's structured-carrier-message supplement).
	PostalCode   string
	CountryCode  int
	ServiceClass int
}

// Encoder implements MaxiCode.
type Encoder struct {
	Options Options
}

// Encode implements symbol.Encoder.
func (e Encoder) Encode(content string) (geom.Symbol, error) {
	if len(content) == 0 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrLengthOutOfRange, "maxicode: content must not be empty")
	}

	mode := e.Options.Mode
	if mode == 0 {
		mode = ModeStandard
	}
	if mode < 2 || mode > 5 {
		return geom.Symbol{}, symbol.Newf(symbol.ErrIncompatibleOptions, "maxicode: mode must be 2-5, got %d", mode)
	}

	primary := make([]byte, 10)
	secondaryLen := 84
	switch mode {
	case ModeStructuredNumeric, ModeStructuredAlphanumeric:
		if err := buildPrimary(primary, e.Options); err != nil {
			return geom.Symbol{}, err
		}
	case ModeFullECC:
		secondaryLen = 68
	}
	setPrimaryMode(primary, mode)

	secondary, err := encodeMessage(content, secondaryLen)
	if err != nil {
		return geom.Symbol{}, err
	}

	codewords := make([]byte, 10+len(secondary))
	copy(codewords, primary)
	copy(codewords[10:], secondary)

	finalWords := applyECC(codewords, mode)

	bits := make([]bool, 864)
	for bit, word := range finalWords {
		for b := 0; b < 6; b++ {
			if bit*6+b >= 864 {
				break
			}
			if word&(1<<uint(5-b)) != 0 {
				bits[bit*6+b] = true
			}
		}
	}

	hexagons := placeHexagons(bits)
	target := bullseye()

	return geom.Symbol{
		Content:    content,
		Readable:   "",
		Width:      gridCols,
		Height:     gridRows,
		Hexagons:   hexagons,
		Target:     target,
		EncodeInfo: "Mode: " + strconv.Itoa(int(mode)) + "\nSymbol Rows: " + strconv.Itoa(gridRows),
		DataType:   geom.DataTypeECIText,
		ECIMode:    3,
	}, nil
}

func setPrimaryMode(primary []byte, mode Mode) {
	primary[0] = (primary[0] &^ 0x0F) | byte(mode)
}

// buildPrimary packs the structured carrier message's postal code, country
// code, and service class into the primary message's 10 codewords, mirrored
// from the decoder side's countryBytes/serviceClassBytes/postcode*Bytes bit
// layout (the encode-side inverse of decoder.getInt).
func buildPrimary(primary []byte, opts Options) error {
	for _, r := range opts.PostalCode {
		if !unicode.IsDigit(r) && !unicode.IsUpper(r) {
			return symbol.Newf(symbol.ErrInvalidCharacter, "maxicode: postal code must be digits or uppercase letters, got %q", r)
		}
		if opts.Mode == ModeStructuredNumeric && !unicode.IsDigit(r) {
			return symbol.Newf(symbol.ErrInvalidCharacter, "maxicode: mode 2 postal code must be digits, got %q", r)
		}
	}
	if opts.CountryCode < 0 || opts.CountryCode > 999 {
		return symbol.Newf(symbol.ErrLengthOutOfRange, "maxicode: country code must be 0-999, got %d", opts.CountryCode)
	}
	if opts.ServiceClass < 0 || opts.ServiceClass > 999 {
		return symbol.Newf(symbol.ErrLengthOutOfRange, "maxicode: service class must be 0-999, got %d", opts.ServiceClass)
	}

	postcodeValue := 0
	for _, r := range opts.PostalCode {
		if r >= '0' && r <= '9' {
			postcodeValue = postcodeValue*10 + int(r-'0')
		}
	}
	setInt(primary, postcode2Bytes, postcodeValue)
	setInt(primary, postcode2LengthBytes, len(opts.PostalCode))
	setInt(primary, countryBytes, opts.CountryCode)
	setInt(primary, serviceClassBytes, opts.ServiceClass)
	return nil
}

// setInt is the encode-side inverse of the decoder's getInt/getBit: it
// writes val's bits, most significant first, into the codeword bit
// positions named by x.
func setInt(bytes []byte, x []byte, val int) {
	for i := 0; i < len(x); i++ {
		bit := int(x[len(x)-1-i])
		if val&(1<<uint(i)) != 0 {
			setBit(bytes, bit)
		}
	}
}

func setBit(bytes []byte, bit int) {
	bit--
	bytes[bit/6] |= 1 << uint(5-bit%6)
}

// encodeMessage runs the set-A/B/C/D/E state machine in reverse: it walks
// content rune by rune, and returns exactly length codewords (padded with
// the padChar codeword). Sets A and B are the two persistent ("latched")
// sets; reaching a character only available in set C, D, or E costs one
// transient shift codeword, matching the decoder's shift/latch distinction
// in decoder.go's getMessage.
func encodeMessage(content string, length int) ([]byte, error) {
	out := make([]byte, 0, length)
	persistent := 0 // 0 = set A, 1 = set B
	for _, r := range content {
		if idx, ok := setIndex[persistent][r]; ok {
			out = append(out, byte(idx))
		} else if idx, ok := setIndex[1-persistent][r]; ok {
			out = append(out, latchCodeword(persistent, 1-persistent))
			persistent = 1 - persistent
			out = append(out, byte(idx))
		} else if shiftSet, idx, ok := lookupShiftSet(r); ok {
			out = append(out, shiftCodeword(persistent, shiftSet))
			out = append(out, byte(idx))
		} else {
			return nil, symbol.Newf(symbol.ErrInvalidCharacter, "maxicode: character %q is not representable in any MaxiCode character set", r)
		}
		if len(out) > length {
			break
		}
	}
	if len(out) > length {
		return nil, symbol.Newf(symbol.ErrCapacityExceeded, "maxicode: content requires %d codewords, symbol holds %d", len(out), length)
	}
	padIdx := setIndex[persistent][padChar]
	for len(out) < length {
		out = append(out, byte(padIdx))
	}
	return out, nil
}

// lookupShiftSet finds r in sets C, D, or E (accessed via a transient
// shift rather than a persistent latch).
func lookupShiftSet(r rune) (set, idx int, ok bool) {
	for s := 2; s <= 4; s++ {
		if i, found := setIndex[s][r]; found {
			return s, i, true
		}
	}
	return 0, 0, false
}

// latchCodeword returns the codeword, read from the current persistent
// set's table, that latches into target (A or B).
func latchCodeword(current, target int) byte {
	if target == 0 {
		return byte(setIndex[current][latchA])
	}
	return byte(setIndex[current][latchB])
}

// shiftCodeword returns the codeword, read from the current persistent
// set's table, that shifts for one character into target (C, D, or E).
func shiftCodeword(current, target int) byte {
	switch target {
	case 2:
		return byte(setIndex[current][shiftC])
	case 3:
		return byte(setIndex[current][shiftD])
	default:
		return byte(setIndex[current][shiftE])
	}
}

// applyECC computes MaxiCode's two interleaved Reed-Solomon blocks over
// GF(64): an even/odd split of the secondary message (modes 2-4, 40 ECC
// words total) or a larger even/odd split for mode 5 (56 ECC words), per
// the field sizes the decoder's correctErrors call sites use.
func applyECC(codewords []byte, mode Mode) []byte {
	enc := reedsolomon.NewEncoder(reedsolomon.MaxiCodeField64)

	primaryECC := enc.EncodeBytes(codewords[:10], 10)

	var secondary []byte
	var eccPerHalf int
	switch mode {
	case ModeFullECC:
		secondary = codewords[10:]
		eccPerHalf = 28
	default:
		secondary = codewords[10:]
		eccPerHalf = 20
	}

	even, odd := deinterleave(secondary)
	evenECC := enc.EncodeBytes(even, eccPerHalf)
	oddECC := enc.EncodeBytes(odd, eccPerHalf)

	var out []byte
	out = append(out, codewords[:10]...)
	out = append(out, primaryECC...)
	out = append(out, secondary...)
	out = append(out, interleave(evenECC, oddECC)...)
	return out
}

func deinterleave(data []byte) (even, odd []byte) {
	for i, b := range data {
		if i%2 == 0 {
			even = append(even, b)
		} else {
			odd = append(odd, b)
		}
	}
	return even, odd
}

func interleave(even, odd []byte) []byte {
	out := make([]byte, 0, len(even)+len(odd))
	for i := 0; i < len(even) || i < len(odd); i++ {
		if i < len(even) {
			out = append(out, even[i])
		}
		if i < len(odd) {
			out = append(out, odd[i])
		}
	}
	return out
}

// placeHexagons converts the populated bit grid into one Hexagon per ink
// module, on the offset lattice MaxiCode renders on: odd grid rows are
// shifted a half-module right.
func placeHexagons(bits []bool) []geom.Hexagon {
	var hexagons []geom.Hexagon
	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			bit := bitnr[y][x]
			if bit < 0 || !bits[bit] {
				continue
			}
			cx := float64(x)
			if y%2 == 1 {
				cx += 0.5
			}
			hexagons = append(hexagons, geom.Hexagon{CX: cx, CY: float64(y)})
		}
	}
	return hexagons
}

// bullseye returns the six circles (three concentric rings) forming the
// central finder pattern, centred on the symbol.
func bullseye() []geom.Circle {
	cx, cy := float64(gridCols)/2, float64(gridRows)/2
	radii := []float64{3.5, 2.5, 2.5, 1.5, 1.5, 0.5}
	var circles []geom.Circle
	for _, r := range radii {
		circles = append(circles, geom.Circle{CX: cx, CY: cy, Radius: r})
	}
	return circles
}
