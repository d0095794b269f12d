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

func TestCode16KMinimumTwoRows(t *testing.T) {
	s, err := Code16KEncoder{}.Encode("1")
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "Symbol Rows: 2")
}

func TestCode16KManyRows(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = byte('0' + i%10)
	}
	s, err := Code16KEncoder{}.Encode(string(long))
	require.NoError(t, err)
	assert.Contains(t, s.EncodeInfo, "dual mod-107")
}

func TestCode16KCapacityExceeded(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = byte('A' + i%26)
	}
	_, err := Code16KEncoder{}.Encode(string(long))
	require.Error(t, err)
}
