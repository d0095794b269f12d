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

func TestBuildEncoderRejectsUnknownSymbology(t *testing.T) {
	_, err := buildEncoder("not-a-symbology", opts{})
	require.Error(t, err)
}

func TestBuildEncoderCode39Roundtrip(t *testing.T) {
	enc, err := buildEncoder("code39", opts{"check-digit": "true"})
	require.NoError(t, err)
	sym, err := enc.Encode("HELLO")
	require.NoError(t, err)
	assert.NotEmpty(t, sym.Rectangles)
	assert.Contains(t, sym.EncodeInfo, "Check Digit: computed")
}

func TestBuildEncoderQRHonorsECCFlag(t *testing.T) {
	enc, err := buildEncoder("qr", opts{"ecc": "H"})
	require.NoError(t, err)
	sym, err := enc.Encode("HELLO WORLD")
	require.NoError(t, err)
	assert.Contains(t, sym.EncodeInfo, "ECC Level: H")
}

func TestBuildEncoderRejectsBadOptValue(t *testing.T) {
	_, err := buildEncoder("code128", opts{"gs1": "not-a-bool"})
	require.Error(t, err)
}

func TestSymbologyNamesIncludesCoreSet(t *testing.T) {
	names := symbologyNames()
	assert.Contains(t, names, "code39")
	assert.Contains(t, names, "qr")
	assert.Contains(t, names, "maxicode")
	assert.Contains(t, names, "pdf417")
	assert.Contains(t, names, "datamatrix")
}

func TestParseOptsSplitsKeyValue(t *testing.T) {
	o, err := parseOpts([]string{"a=1", "b=2"})
	require.NoError(t, err)
	assert.Equal(t, "1", o["a"])
	assert.Equal(t, "2", o["b"])
}

func TestParseOptsRejectsMissingEquals(t *testing.T) {
	_, err := parseOpts([]string{"no-equals-here"})
	require.Error(t, err)
}
