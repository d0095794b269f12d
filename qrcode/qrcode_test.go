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
package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHelloWorldVersion1(t *testing.T) {
	s, err := Encoder{Options: Options{ECL: Low}}.Encode("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, 21, s.Width)
	assert.Equal(t, 21, s.Height)
	assert.Contains(t, s.EncodeInfo, "Version: 1")
	assert.Contains(t, s.EncodeInfo, "ECC Level: L")
}

func TestEncodeNumericPrefersNumericMode(t *testing.T) {
	segs := makeSegments("0123456789")
	require.Len(t, segs, 1)
	assert.Equal(t, modeNumeric.bits, segs[0].mode.bits)
}

func TestEncodeAlphanumericMode(t *testing.T) {
	segs := makeSegments("HELLO WORLD")
	require.Len(t, segs, 1)
	assert.Equal(t, modeAlphanumeric.bits, segs[0].mode.bits)
}

func TestEncodeByteModeFallback(t *testing.T) {
	segs := makeSegments("hello, world!")
	require.Len(t, segs, 1)
	assert.Equal(t, modeByte.bits, segs[0].mode.bits)
}

func TestEncodeMixedModeSplitsIntoSegments(t *testing.T) {
	// "HELLO WORLD" (11 chars, alphanumeric) followed by "9876543210"
	// (10 digits, well past the short-run threshold) should stay two
	// segments rather than collapsing to one.
	segs := makeSegments("HELLO WORLD9876543210")
	require.Len(t, segs, 2)
	assert.Equal(t, modeAlphanumeric.bits, segs[0].mode.bits)
	assert.Equal(t, 11, segs[0].numChars)
	assert.Equal(t, modeNumeric.bits, segs[1].mode.bits)
	assert.Equal(t, 10, segs[1].numChars)
}

func TestEncodeShortRunDemotedOneStep(t *testing.T) {
	// A 3-digit numeric run is shorter than shortRunThreshold, so it
	// demotes one step to alphanumeric rather than staying numeric; it
	// doesn't cascade all the way to byte just because its neighbors are
	// byte-mode runs.
	segs := makeSegments("hello123world")
	require.Len(t, segs, 3)
	assert.Equal(t, modeByte.bits, segs[0].mode.bits)
	assert.Equal(t, modeAlphanumeric.bits, segs[1].mode.bits)
	assert.Equal(t, 3, segs[1].numChars)
	assert.Equal(t, modeByte.bits, segs[2].mode.bits)
}

func TestEncodeRespectsVersionRange(t *testing.T) {
	long := make([]byte, 4000)
	for i := range long {
		long[i] = 'A'
	}
	_, err := Encoder{Options: Options{ECL: Low, MaxVersion: 2}}.Encode(string(long))
	require.Error(t, err)
}

func TestMicroQRScenario(t *testing.T) {
	s, err := MicroEncoder{Options: MicroOptions{ECL: Low}}.Encode("01234")
	require.NoError(t, err)
	assert.Equal(t, 11, s.Width)
	assert.Contains(t, s.EncodeInfo, "Version: M1")
}

func TestMicroQRPromotesQuartileToM4(t *testing.T) {
	// Quartile and High are only valid at M4; a caller-supplied cap below
	// M4 is overridden rather than rejected outright.
	s, err := MicroEncoder{Options: MicroOptions{ECL: Quartile, MaxVersion: M3}}.Encode("1")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Version: M4")
}

func TestMicroQRQuartileAtM4(t *testing.T) {
	s, err := MicroEncoder{Options: MicroOptions{ECL: Quartile}}.Encode("12345")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Version: M4")
}
