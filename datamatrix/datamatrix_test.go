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
package datamatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSmallSquareSymbol(t *testing.T) {
	s, err := Encoder{}.Encode("123456")
	require.NoError(t, err)
	assert.True(t, s.Width > 0 && s.Height > 0)
	assert.True(t, len(s.Rectangles) > 0)
}

func TestEncodeRejectsEmpty(t *testing.T) {
	_, err := Encoder{}.Encode("")
	require.Error(t, err)
}

func TestLookupPicksSmallestFittingSize(t *testing.T) {
	si, err := lookup(3, ShapeAny)
	require.NoError(t, err)
	assert.Equal(t, 10, si.MatrixWidth)
}

func TestEncodeASCIIPacksDigitPairs(t *testing.T) {
	cw, err := encodeASCII("12")
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(12 + 130)}, cw)
}

func TestEncodeRectangularShapeHint(t *testing.T) {
	s, err := Encoder{Options: Options{Shape: ShapeRectangle}}.Encode("123")
	require.NoError(t, err)
	assert.NotEqual(t, s.Width, s.Height)
}
