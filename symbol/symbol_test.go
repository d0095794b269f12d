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
package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotPatternMergesInkRuns(t *testing.T) {
	rects := PlotPattern([]Row{{Pattern: "1211212111", Y: 0, Height: 50}})
	// ink runs are at even indices: widths 1,1,2,2,1 at cumulative offsets
	// 0,3,5,8,11 given gaps of 2,1,1,1 between them.
	assert.Equal(t, 5, len(rects))
	assert.Equal(t, 0, rects[0].X)
	assert.Equal(t, 3, rects[1].X)
}

func TestPlotPatternNonOverlapping(t *testing.T) {
	rows := []Row{{Pattern: "31313", Y: 0, Height: 10}}
	rects := PlotPattern(rows)
	for i := 1; i < len(rects); i++ {
		assert.GreaterOrEqual(t, rects[i].X, rects[i-1].X+rects[i-1].Width)
	}
}

func TestPatternWidth(t *testing.T) {
	assert.Equal(t, 1+2+1+1+2+1+1+1, PatternWidth("12112111"))
}

func TestBindingBars(t *testing.T) {
	bars := BindingBars(100, 20, 2)
	assert.Len(t, bars, 3)
	assert.Equal(t, 0, bars[0].Y)
	assert.Equal(t, 2+20, bars[1].Y)
	assert.Equal(t, 2+20+2+20, bars[2].Y)
}

func TestErrorKindString(t *testing.T) {
	err := Newf(ErrCapacityExceeded, "too much data: %d", 5)
	assert.Contains(t, err.Error(), "CapacityExceeded")
	assert.Contains(t, err.Error(), "too much data: 5")
}
