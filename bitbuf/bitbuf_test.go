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
package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendBits(t *testing.T) {
	var bb Buffer
	bb.AppendBits(0, 0)
	assert.Equal(t, 0, bb.Len())

	bb.AppendBits(1, 1)
	bb.AppendBits(0, 1)
	bb.AppendBits(5, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(bb))
}

func TestAppendBitsPanicsOutOfRange(t *testing.T) {
	var bb Buffer
	assert.Panics(t, func() { bb.AppendBits(4, 2) })
}

func TestToCodewords(t *testing.T) {
	var bb Buffer
	bb.AppendBits(0xAB, 8)
	bb.AppendBits(0x3, 4)
	cw := bb.ToCodewords()
	require.Len(t, cw, 2)
	assert.Equal(t, byte(0xAB), cw[0])
	assert.Equal(t, byte(0x30), cw[1])
}

func TestPadToByte(t *testing.T) {
	var bb Buffer
	bb.AppendBits(1, 3)
	bb.PadToByte()
	assert.Equal(t, 8, bb.Len())
}

func TestPadToLength(t *testing.T) {
	var bb Buffer
	bb.AppendBits(0, 8)
	bb.PadToLength(24)
	assert.Equal(t, 24, bb.Len())
	cw := bb.ToCodewords()
	assert.Equal(t, []byte{0x00, 0xEC, 0x11}, cw)
}
