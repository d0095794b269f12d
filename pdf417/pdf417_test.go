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
package pdf417

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNumericContent(t *testing.T) {
	s, err := Encoder{}.Encode("123456789012345")
	require.NoError(t, err)
	assert.True(t, s.Width > 0 && s.Height > 0)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestEncodeTextContent(t *testing.T) {
	s, err := Encoder{}.Encode("HELLO WORLD")
	require.NoError(t, err)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestEncodeByteContent(t *testing.T) {
	s, err := Encoder{}.Encode(string([]byte{0x00, 0x01, 0xFF, 0x80}))
	require.NoError(t, err)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestEncodeRejectsEmpty(t *testing.T) {
	_, err := Encoder{}.Encode("")
	require.Error(t, err)
}

func TestEncodeRejectsBadECLevel(t *testing.T) {
	_, err := Encoder{Options: Options{ECLevel: 9}}.Encode("123")
	require.Error(t, err)
}

func TestEncodeHonorsExplicitColumns(t *testing.T) {
	s, err := Encoder{Options: Options{Columns: 4}}.Encode("123456789012345678901234")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Columns: 4")
}

func TestChooseColumnsStaysWithinBounds(t *testing.T) {
	cols := chooseColumns(20)
	assert.True(t, cols >= 1 && cols <= 30)
}

func TestGeneratorPolynomialDegree(t *testing.T) {
	poly := generatorPolynomial(4)
	assert.Len(t, poly, 5)
}

func TestPDF417ReedSolomonLength(t *testing.T) {
	ec := pdf417ReedSolomon([]int{1, 2, 3}, 4)
	assert.Len(t, ec, 4)
}
