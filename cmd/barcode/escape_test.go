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
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeContentMapsControlSequences(t *testing.T) {
	out, err := unescapeContent(`\n\t\r`)
	require.NoError(t, err)
	assert.Equal(t, "\n\t\r", out)
}

func TestUnescapeContentLiteralBackslash(t *testing.T) {
	out, err := unescapeContent(`a\\b`)
	require.NoError(t, err)
	assert.Equal(t, `a\b`, out)
}

func TestUnescapeContentHexByte(t *testing.T) {
	out, err := unescapeContent(`\x41\x42`)
	require.NoError(t, err)
	assert.Equal(t, "AB", out)
}

func TestUnescapeContentUnicode(t *testing.T) {
	out, err := unescapeContent(`\` + `u00e9`)
	require.NoError(t, err)
	assert.Equal(t, "é", out)
}

func TestUnescapeContentGSAndRS(t *testing.T) {
	out, err := unescapeContent(`\G\R`)
	require.NoError(t, err)
	assert.Equal(t, "\x1d\x1e", out)
}

func TestUnescapeContentRejectsUnknownEscape(t *testing.T) {
	_, err := unescapeContent(`\q`)
	require.Error(t, err)
}

func TestUnescapeContentRejectsTrailingBackslash(t *testing.T) {
	_, err := unescapeContent(`abc\`)
	require.Error(t, err)
}

func TestUnescapeContentPassesPlainText(t *testing.T) {
	out, err := unescapeContent("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", out)
}
