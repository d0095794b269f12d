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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStandardMode(t *testing.T) {
	s, err := Encoder{}.Encode("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, gridCols, s.Width)
	assert.Equal(t, gridRows, s.Height)
	assert.True(t, len(s.Hexagons) > 0)
	assert.Len(t, s.Target, 6)
	assert.Empty(t, s.Readable)
}

func TestEncodeRejectsEmpty(t *testing.T) {
	_, err := Encoder{}.Encode("")
	require.Error(t, err)
}

func TestEncodeRejectsBadMode(t *testing.T) {
	_, err := Encoder{Options: Options{Mode: 9}}.Encode("HELLO")
	require.Error(t, err)
}

func TestEncodeStructuredCarrierMessage(t *testing.T) {
	s, err := Encoder{Options: Options{
		Mode:         ModeStructuredNumeric,
		PostalCode:   "12345",
		CountryCode:  840,
		ServiceClass: 1,
	}}.Encode("1Z00004951")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Mode: 2")
}

func TestEncodeRejectsNonNumericPostalCodeInMode2(t *testing.T) {
	_, err := Encoder{Options: Options{
		Mode:        ModeStructuredNumeric,
		PostalCode:  "!!!",
		CountryCode: 1,
	}}.Encode("X")
	require.Error(t, err)
}

func TestLookupShiftSetFindsExtendedLatin1(t *testing.T) {
	set, idx, ok := lookupShiftSet('À')
	require.True(t, ok)
	assert.Equal(t, 2, set)
	assert.Equal(t, setIndex[2]['À'], idx)
}

func TestEncodeMessagePadsToLength(t *testing.T) {
	msg, err := encodeMessage("HI", 10)
	require.NoError(t, err)
	assert.Len(t, msg, 10)
}

func TestEncodeMessageRejectsOverflow(t *testing.T) {
	// "AAa" needs a set-A->set-B latch codeword for the trailing lowercase
	// letter, which overshoots a 3-codeword budget by one codeword.
	_, err := encodeMessage("AAa", 3)
	require.Error(t, err)
}

func TestBullseyeHasThreeRings(t *testing.T) {
	circles := bullseye()
	assert.Len(t, circles, 6)
	for _, c := range circles {
		assert.Equal(t, float64(gridCols)/2, c.CX)
	}
}
