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
	"testing"

	"github.com/okapi-go/barcode/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode39Basic(t *testing.T) {
	s, err := Code39Encoder{}.Encode("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "*HELLO*", s.Readable)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestCode39CheckDigit(t *testing.T) {
	s, err := Code39Encoder{Options: Code39Options{CheckDigit: true}}.Encode("HELLO")
	require.NoError(t, err)
	assert.Equal(t, byte('B'), code39CheckDigit("HELLO"))
	assert.Contains(t, s.Readable, "*HELLOB*")
}

func TestCode39FoldsLowercase(t *testing.T) {
	s, err := Code39Encoder{}.Encode("hello")
	require.NoError(t, err) // lowercase is folded to uppercase, not rejected
	assert.Equal(t, "*HELLO*", s.Readable)
}

func TestCode39RejectsInvalidCharacter(t *testing.T) {
	_, err := Code39Encoder{}.Encode("HE#LO")
	require.Error(t, err)
}

func TestLOGMARSAlwaysChecksDigit(t *testing.T) {
	s, err := LOGMARSEncoder{}.Encode("HELLO")
	require.NoError(t, err)
	assert.Contains(t, s.Readable, "B")
}

func TestExtendedCode39RoundTripsLowercase(t *testing.T) {
	s, err := ExtendedCode39Encoder{}.Encode("Hello!")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", s.Content)
}

func TestCodabarScenario(t *testing.T) {
	s, err := CodabarEncoder{}.Encode("A12345B")
	require.NoError(t, err)
	assert.Equal(t, "A12345B", s.Readable)
	want := codabarTable['A'] + "1" + codabarTable['1'] + "1" + codabarTable['2'] + "1" +
		codabarTable['3'] + "1" + codabarTable['4'] + "1" + codabarTable['5'] + "1" + codabarTable['B']
	assert.Equal(t, symbol.PatternWidth(want), s.Width)
}

func TestCodabarRejectsMissingInterior(t *testing.T) {
	_, err := CodabarEncoder{}.Encode("AB")
	require.Error(t, err)
}

func TestCode93ComputesTwoCheckDigits(t *testing.T) {
	s, err := Code93Encoder{}.Encode("TEST93")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Check Digit C: computed")
	assert.Contains(t, s.EncodeInfo, "Check Digit K: computed")
}

func TestCode11ShortInputSingleCheck(t *testing.T) {
	s, err := Code11Encoder{}.Encode("12345")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Check Digit C: computed")
}

func TestCode11LongInputDualCheck(t *testing.T) {
	s, err := Code11Encoder{}.Encode("1234567890")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Check Digit K: computed")
}

func TestMSIMod10(t *testing.T) {
	s, err := MSIEncoder{}.Encode("1234")
	require.NoError(t, err)
	assert.Equal(t, 5, len(s.Readable))
}

func TestJapanPostEncodesDigitsAndLetters(t *testing.T) {
	s, err := JapanPostEncoder{}.Encode("123-ABC")
	require.NoError(t, err)
	assert.Equal(t, "123-ABC", s.Readable)
}

func TestPZNComputesCheckDigit(t *testing.T) {
	s, err := PZNEncoder{}.Encode("000156")
	require.NoError(t, err)
	assert.Contains(t, s.Readable, "PZN-000156")
}

func TestPZNRejectsBadLength(t *testing.T) {
	_, err := PZNEncoder{}.Encode("12")
	require.Error(t, err)
}

func TestCode32ReEncodesBase32(t *testing.T) {
	s, err := Code32Encoder{}.Encode("12345678")
	require.NoError(t, err)
	assert.Equal(t, byte('A'), s.Readable[0])
}

func TestEANAddOn2Digit(t *testing.T) {
	s, err := EANAddOnEncoder{}.Encode("12")
	require.NoError(t, err)
	assert.Equal(t, "12", s.Readable)
}

func TestEANAddOn5Digit(t *testing.T) {
	s, err := EANAddOnEncoder{}.Encode("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", s.Readable)
}

func TestEAN13Scenario(t *testing.T) {
	s, err := EANEncoder{}.Encode("501234567890")
	require.NoError(t, err)
	assert.Len(t, s.Readable, 13)
	assert.Equal(t, "5012345678900", s.Readable)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestEAN13RejectsBadCheckDigit(t *testing.T) {
	_, err := EANEncoder{}.Encode("5012345678903")
	require.Error(t, err)
}

func TestEAN13WithAddOn(t *testing.T) {
	s, err := EANEncoder{AddOn: "12"}.Encode("501234567890")
	require.NoError(t, err)
	assert.Contains(t, s.Readable, " 12")
}

func TestUPCAPrependsZero(t *testing.T) {
	s, err := UPCAEncoder{}.Encode("01234567890")
	require.NoError(t, err)
	assert.Len(t, s.Content, 11)
}
