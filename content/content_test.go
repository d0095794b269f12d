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
package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGS1FixedLengthAI(t *testing.T) {
	out, err := EncodeGS1("(01)12345678901231")
	require.NoError(t, err)
	assert.Equal(t, byte(FNC1), out[0])
	assert.Contains(t, string(out[1:]), "0112345678901231")
}

func TestEncodeGS1VariableLengthAIInjectsSeparator(t *testing.T) {
	out, err := EncodeGS1("(10)ABC123(22)XYZ")
	require.NoError(t, err)
	assert.Contains(t, string(out[1:]), string([]byte{FNC1}))
}

func TestEncodeGS1RejectsMalformedAI(t *testing.T) {
	_, err := EncodeGS1("no-brackets-here")
	require.Error(t, err)
}

func TestEncodeGS1RejectsBadAI253Length(t *testing.T) {
	_, err := EncodeGS1("(253)1234567890")
	require.Error(t, err)
}

func TestEncodeGS1AcceptsValidAI253(t *testing.T) {
	_, err := EncodeGS1("(253)1234567890123")
	require.NoError(t, err)
}

func TestEncodeHIBCFramesAndChecks(t *testing.T) {
	out, err := EncodeHIBC("A123")
	require.NoError(t, err)
	assert.True(t, len(out) == len("+A123")+1)
	assert.Equal(t, byte('+'), out[0])
}

func TestEncodeHIBCRejectsInvalidCharacter(t *testing.T) {
	_, err := EncodeHIBC("a123")
	require.Error(t, err)
}

func TestEncodeECIDefaultLatin1(t *testing.T) {
	out, err := EncodeECI("abc", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestEncodeECIRejectsOutOfRange(t *testing.T) {
	_, err := EncodeECI(string(rune(0x1000)), 3)
	require.Error(t, err)
}

func TestEncodeECIUnknownDesignatorFallsBackToLatin1(t *testing.T) {
	out, err := EncodeECI("xyz", 999)
	require.NoError(t, err)
	assert.Equal(t, []byte("xyz"), out)
}
