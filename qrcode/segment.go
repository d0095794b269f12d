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
package qrcode

import (
	"strconv"
	"strings"

	"github.com/okapi-go/barcode/bitbuf"
)

// segment is one mode-tagged run of a QR code's payload.
type segment struct {
	mode     mode
	numChars int
	data     bitbuf.Buffer
}

func totalBits(segs []segment, version int) (int, bool) {
	total := 0
	for _, seg := range segs {
		ccBits := seg.mode.numCharCountBits(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return 0, false
		}
		total += 4 + ccBits + seg.data.Len()
	}
	return total, true
}

func makeNumeric(digits string) segment {
	bb := bitbuf.New(len(digits)*3 + (len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := 3
		if len(digits)-i < n {
			n = len(digits) - i
		}
		d, _ := strconv.Atoi(digits[i : i+n])
		bb.AppendBits(uint32(d), n*3+1)
		i += n
	}
	return segment{mode: modeNumeric, numChars: len(digits), data: bb}
}

func makeAlphanumeric(text string) segment {
	bb := bitbuf.New(len(text)*5 + (len(text)+1)/2)
	i := 0
	for ; i+1 < len(text); i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i])*45 + strings.IndexByte(alphanumericCharset, text[i+1])
		bb.AppendBits(uint32(v), 11)
	}
	if i < len(text) {
		bb.AppendBits(uint32(strings.IndexByte(alphanumericCharset, text[i])), 6)
	}
	return segment{mode: modeAlphanumeric, numChars: len(text), data: bb}
}

func makeBytes(data []byte) segment {
	bb := bitbuf.New(len(data) * 8)
	for _, b := range data {
		bb.AppendByte(b)
	}
	return segment{mode: modeByte, numChars: len(data), data: bb}
}

// shortRunThreshold is the minimum contiguous run length (in characters) a
// numeric or alphanumeric run must reach to keep its native mode; shorter
// runs are demoted one step (numeric to alphanumeric, alphanumeric to byte)
// to avoid paying a mode-switch overhead for a handful of characters
// (spec.md §4.7's mode-selection rule).
const shortRunThreshold = 6

// charMode returns the most compact mode a single character, taken alone,
// can be encoded in.
func charMode(b byte) mode {
	switch {
	case b >= '0' && b <= '9':
		return modeNumeric
	case strings.IndexByte(alphanumericCharset, b) >= 0:
		return modeAlphanumeric
	default:
		return modeByte
	}
}

// charRun is one maximal run of same-mode characters, before or after
// threshold demotion.
type charRun struct {
	mode       mode
	start, end int
}

// classifyRuns partitions text into maximal runs of characters sharing the
// same native charMode.
func classifyRuns(text string) []charRun {
	runs := make([]charRun, 0, 4)
	start := 0
	cur := charMode(text[0])
	for i := 1; i < len(text); i++ {
		m := charMode(text[i])
		if m.bits != cur.bits {
			runs = append(runs, charRun{cur, start, i})
			start = i
			cur = m
		}
	}
	return append(runs, charRun{cur, start, len(text)})
}

// demoteShortRuns demotes any run shorter than shortRunThreshold one mode
// step down (numeric to alphanumeric, alphanumeric to byte); byte is
// already the floor. Text made of a single run is left as it is.
func demoteShortRuns(runs []charRun) []charRun {
	if len(runs) == 1 {
		return runs
	}
	out := make([]charRun, len(runs))
	for i, r := range runs {
		m := r.mode
		if r.end-r.start < shortRunThreshold {
			switch m.bits {
			case modeNumeric.bits:
				m = modeAlphanumeric
			case modeAlphanumeric.bits:
				m = modeByte
			}
		}
		out[i] = charRun{m, r.start, r.end}
	}
	return out
}

// mergeAdjacentRuns coalesces neighboring runs that ended up with the same
// mode after demotion.
func mergeAdjacentRuns(runs []charRun) []charRun {
	out := runs[:0:0]
	for _, r := range runs {
		if n := len(out); n > 0 && out[n-1].mode.bits == r.mode.bits {
			out[n-1].end = r.end
			continue
		}
		out = append(out, r)
	}
	return out
}

func buildSegment(m mode, text string) segment {
	switch m.bits {
	case modeNumeric.bits:
		return makeNumeric(text)
	case modeAlphanumeric.bits:
		return makeAlphanumeric(text)
	default:
		return makeBytes([]byte(text))
	}
}

// makeSegments builds the mode-tagged segment stream spec.md §4.7
// describes: per-character mode classification into maximal runs, short-run
// demotion, then a segment per surviving run. This is the intermediate
// `[ModeTag][Length][PayloadBits…]` stream the section names — mode,
// numChars and data on segment play that role directly, with the
// version-specific indicator widths applied later when a segment is
// expanded into bits.
func makeSegments(text string) []segment {
	if len(text) == 0 {
		return nil
	}
	runs := mergeAdjacentRuns(demoteShortRuns(classifyRuns(text)))
	segs := make([]segment, len(runs))
	for i, r := range runs {
		segs[i] = buildSegment(r.mode, text[r.start:r.end])
	}
	return segs
}
