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
package onedim

import (
	"regexp"

	"github.com/okapi-go/barcode/geom"
	"github.com/okapi-go/barcode/symbol"
)

// codabarRegexp requires at least one interior character between the start
// and stop characters, per spec.md §9's Open Question — resolved here by
// following BS EN 798, which mandates at least one data character.
var codabarRegexp = regexp.MustCompile(`^[A-D][0-9:/$.+\-]+[A-D]$`)

// CodabarEncoder implements Codabar (BS EN 798). Per spec.md §9's Open
// Question, this port includes the start/stop characters in the emitted
// pattern (the anomaly the spec calls out is not reproduced).
type CodabarEncoder struct {
	RowHeight int
}

func (e CodabarEncoder) rowHeight() int {
	if e.RowHeight > 0 {
		return e.RowHeight
	}
	return 50
}

// Encode implements symbol.Encoder. Example from spec.md §8 scenario 2:
// input "A12345B" yields readable "A12345B" and a pattern made of the
// table entries for the full string, including its start/stop characters
// (per the BS EN 798 resolution above), joined by one narrow gap module.
func (e CodabarEncoder) Encode(content string) (geom.Symbol, error) {
	if !codabarRegexp.MatchString(content) {
		return geom.Symbol{}, symbol.Newf(symbol.ErrInvalidCharacter, "codabar: %q does not match [A-D] interior [A-D]", content)
	}

	var pattern []byte
	for i := 0; i < len(content); i++ {
		if i > 0 {
			pattern = append(pattern, '1')
		}
		pattern = append(pattern, codabarTable[content[i]]...)
	}

	p := string(pattern)
	rects := symbol.PlotPattern([]symbol.Row{{Pattern: p, Height: e.rowHeight()}})
	width := symbol.PatternWidth(p)

	return geom.Symbol{
		Content:    content,
		Readable:   content,
		Width:      width,
		Height:     e.rowHeight(),
		Rectangles: rects,
		Texts:      []geom.TextBox{{X: 0, Y: e.rowHeight(), Width: width, Text: content, Alignment: geom.AlignCenter}},
		EncodeInfo: "Symbol Rows: 1",
	}, nil
}
