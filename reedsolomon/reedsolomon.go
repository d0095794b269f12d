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
// Package reedsolomon implements the error-correction engine shared by the
// matrix symbologies (spec.md §4.2, C2): given a primitive polynomial and a
// field size it builds log/antilog tables and a generator polynomial, then
// computes Reed-Solomon ECC codewords for a message.
//
// The log/antilog table construction follows AshokShau-qrcode/reedsolomon.go
// (Russian-peasant exponentiation of the primitive root modulo the given
// polynomial). The named field values and the "one Field value selects one
// GF" shape follow zxinggo's reedsolomon.GenericGF / named fields
// (QRCodeField256, DataMatrixField256, AztecData*, MaxiCodeField64) seen
// across _examples/other_examples/{09457713,1f1acde5,630f89be,a7c5c544}_*.
//
// A Field is a plain value: no global mutable state survives between calls,
// so independent encodings may run concurrently on separate goroutines
// without coordination (spec.md §5).
package reedsolomon

import "fmt"

// Field describes a Galois field GF(2^bits) by its primitive polynomial, and
// the RS generator-root offset used when building the generator polynomial.
type Field struct {
	// Name is a human-readable identifier, useful in diagnostics.
	Name string
	// Primitive is the primitive polynomial, e.g. 0x11D for GF(2^8)/QR.
	Primitive int
	// Bits is the field size exponent (8 for GF(256), 4 for GF(16)).
	Bits int
	// GeneratorBase is the starting exponent of the generator polynomial's
	// roots: 0 for QR/Micro QR/Aztec, 1 for Data Matrix (spec.md §4.2).
	GeneratorBase int
}

// Size returns 2^Bits, the number of elements in the field (including zero).
func (f Field) Size() int { return 1 << uint(f.Bits) }

// Named fields exercised by this module's symbologies.
var (
	// QRCodeField256 is GF(256) with the QR/Micro QR primitive polynomial.
	QRCodeField256 = Field{Name: "QR_256", Primitive: 0x11D, Bits: 8, GeneratorBase: 0}
	// DataMatrixField256 is GF(256) with the ECC200 primitive polynomial and
	// generator base 1 (spec.md §4.2 edge case).
	DataMatrixField256 = Field{Name: "DataMatrix_256", Primitive: 0x12D, Bits: 8, GeneratorBase: 1}
	// AztecParam is the GF(16) field used for Aztec mode messages.
	AztecParam = Field{Name: "Aztec_param", Primitive: 0x13, Bits: 4, GeneratorBase: 0}
	// AztecData6/8/10/12 are the Aztec data fields selected by codeword width.
	AztecData6  = Field{Name: "Aztec_data6", Primitive: 0x43, Bits: 6, GeneratorBase: 0}
	AztecData8  = Field{Name: "Aztec_data8", Primitive: 0x12D, Bits: 8, GeneratorBase: 0}
	AztecData10 = Field{Name: "Aztec_data10", Primitive: 0x409, Bits: 10, GeneratorBase: 0}
	AztecData12 = Field{Name: "Aztec_data12", Primitive: 0x1069, Bits: 12, GeneratorBase: 0}
	// MaxiCodeField64 is the GF(64) field used by MaxiCode's two interleaved
	// error-correction sets.
	MaxiCodeField64 = Field{Name: "MaxiCode_64", Primitive: 0x43, Bits: 6, GeneratorBase: 1}
	// PDF417Field is a 10-bit field (GF(1024), codewords mod 929 never
	// exceed the field range). The pdf417 package does not use it: its
	// error correction runs over the prime field GF(929).
	PDF417Field = Field{Name: "PDF417", Primitive: 0x409, Bits: 10, GeneratorBase: 0}
)

// gfTables holds the precomputed exp/log tables for one Field.
type gfTables struct {
	field Field
	exp   []int // exp[i] = alpha^i, length 2*size so exp[i] works for i in [0, 2*size)
	log   []int // log[x] = i such that alpha^i == x, for x in [1, size)
}

func buildTables(f Field) *gfTables {
	size := f.Size()
	exp := make([]int, 2*size)
	log := make([]int, size)

	x := 1
	for i := 0; i < size-1; i++ {
		exp[i] = x
		log[x] = i
		x <<= 1
		if x >= size {
			x ^= f.Primitive
		}
	}
	for i := size - 1; i < 2*size; i++ {
		exp[i] = exp[i-(size-1)]
	}
	return &gfTables{field: f, exp: exp, log: log}
}

func (t *gfTables) multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return t.exp[t.log[a]+t.log[b]]
}

// Encoder computes Reed-Solomon ECC codewords over a fixed Field.
type Encoder struct {
	tables *gfTables
}

// NewEncoder builds an Encoder for the given field, precomputing its
// log/antilog tables.
func NewEncoder(field Field) *Encoder {
	return &Encoder{tables: buildTables(field)}
}

// generatorDivisor returns the degree-k generator polynomial
// g(x) = Π_{i=0}^{k-1} (x - α^(i+offset)), stored highest-to-lowest power
// with the (always-1) leading term dropped — the same layout the teacher
// uses in reedSolomonComputeDivisor (qrcode.go).
func (e *Encoder) generatorDivisor(k int) []int {
	poly := []int{1} // full polynomial, leading term first; grows by one each root
	base := e.tables.field.GeneratorBase
	mod := e.tables.field.Size() - 1
	for i := 0; i < k; i++ {
		root := e.tables.exp[(base+i)%mod]
		next := make([]int, len(poly)+1)
		copy(next, poly)
		for j := len(poly) - 1; j >= 0; j-- {
			next[j+1] ^= e.tables.multiply(poly[j], root)
		}
		poly = next
	}
	return poly[1:] // drop the leading monic 1 term
}

// Encode computes numECCodewords Reed-Solomon codewords for the message
// toEncode[:len(toEncode)-numECCodewords] and writes them into the trailing
// numECCodewords slots of toEncode in place, matching the in-place
// `[]int` contract zxinggo's Encoder.Encode uses
// (_examples/other_examples/09457713_ericlevine-zxinggo__qrcode-encoder-encoder.go.go).
func (e *Encoder) Encode(toEncode []int, numECCodewords int) {
	if numECCodewords <= 0 {
		return
	}
	dataLen := len(toEncode) - numECCodewords
	if dataLen < 0 {
		panic("reedsolomon: toEncode shorter than numECCodewords")
	}

	divisor := e.generatorDivisor(numECCodewords)

	remainder := make([]int, len(divisor))
	for _, b := range toEncode[:dataLen] {
		factor := b ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[len(remainder)-1] = 0
		if factor != 0 {
			for i := 0; i < len(remainder); i++ {
				remainder[i] ^= e.tables.multiply(divisor[i], factor)
			}
		}
	}
	copy(toEncode[dataLen:], remainder)
}

// EncodeBytes is a convenience wrapper over Encode for []byte data,
// returning just the computed ECC codewords.
func (e *Encoder) EncodeBytes(data []byte, numECCodewords int) []byte {
	buf := make([]int, len(data)+numECCodewords)
	for i, b := range data {
		buf[i] = int(b)
	}
	e.Encode(buf, numECCodewords)
	ec := make([]byte, numECCodewords)
	for i := range ec {
		ec[i] = byte(buf[len(data)+i])
	}
	return ec
}

// String returns a short diagnostic identifying the field in use.
func (e *Encoder) String() string {
	return fmt.Sprintf("reedsolomon.Encoder{%s}", e.tables.field.Name)
}
