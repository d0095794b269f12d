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
package code128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAllDigitsLatchesSetC(t *testing.T) {
	s, err := Encoder{}.Encode("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", s.Readable)
	assert.Contains(t, s.EncodeInfo, "Symbol Characters: 7") // start + 4 data + check + stop
}

func TestEncodeMixedAlphaFallsBackToSetB(t *testing.T) {
	s, err := Encoder{}.Encode("ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", s.Readable)
}

func TestEncodeControlCharacterUsesSetA(t *testing.T) {
	_, err := Encoder{}.Encode("\x01ABC")
	require.NoError(t, err)
}

func TestEncodeRejectsEmpty(t *testing.T) {
	_, err := Encoder{}.Encode("")
	require.Error(t, err)
}

func TestEncodeGS1InsertsFNC1(t *testing.T) {
	values, err := encodeValues([]byte("0112345678901231"), true)
	require.NoError(t, err)
	assert.Equal(t, fnc1, values[1])
}

func TestDigitRunLength(t *testing.T) {
	assert.Equal(t, 4, digitRunLength([]byte("1234AB"), 0))
	assert.Equal(t, 0, digitRunLength([]byte("AB1234"), 0))
}
