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
// Package symbol provides the scaffold shared by every symbology encoder
// (spec.md §4.4, C4): the Encoder contract, the typed error kind, and the
// width-pattern plotter shared by all 1D and stacked-1D symbologies.
//
// Where the teacher (grkuntzmd-qrcodegen) shares state through a mutable
// QRCode struct built up across several passes, every Encoder here returns
// an immutable geom.Symbol in one call, per the re-architecture guidance in
// spec.md §9: there is no base class, only a single interface.
package symbol

import (
	"fmt"

	"github.com/okapi-go/barcode/geom"
)

// ErrorKind enumerates the stable diagnostic categories of spec.md §7.
type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota
	ErrLengthOutOfRange
	ErrIncompatibleOptions
	ErrCapacityExceeded
	ErrInternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidCharacter:
		return "InvalidCharacter"
	case ErrLengthOutOfRange:
		return "LengthOutOfRange"
	case ErrIncompatibleOptions:
		return "IncompatibleOptions"
	case ErrCapacityExceeded:
		return "CapacityExceeded"
	case ErrInternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is the single diagnostic kind an Encoder may return (spec.md §7):
// one category plus a human-readable message, never alongside a populated
// geom.Symbol.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Newf builds an *Error of the given kind.
func Newf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Encoder is the one method every symbology implements: validate content,
// lay it out, and return a fully populated geom.Symbol, or a single Error
// with no geometry (spec.md §4.4).
type Encoder interface {
	Encode(content string) (geom.Symbol, error)
}

// Row is one row of a width pattern plus its module height and y offset,
// consumed by PlotPattern.
type Row struct {
	Pattern string // digits '1'..'9', alternating ink/paper starting with ink
	Y       int
	Height  int
}

// PlotPattern converts a set of per-row width patterns into a list of
// rectangles, merging each ink run into a single rectangle (spec.md §4.4,
// §4.9). Patterns alternate ink/paper starting with ink, so even-indexed
// runs (0-based) are ink.
func PlotPattern(rows []Row) []geom.Rectangle {
	var rects []geom.Rectangle
	for _, row := range rows {
		x := 0
		for i, c := range row.Pattern {
			width := int(c - '0')
			if width <= 0 {
				continue
			}
			if i%2 == 0 { // ink run
				rects = append(rects, geom.Rectangle{X: x, Y: row.Y, Width: width, Height: row.Height})
			}
			x += width
		}
	}
	return rects
}

// PatternWidth returns the total module width spanned by a width pattern.
func PatternWidth(pattern string) int {
	total := 0
	for _, c := range pattern {
		total += int(c - '0')
	}
	return total
}

// BindingBars returns the binder rectangles for a stacked 1D symbology
// (Code 16K): a 2-module-tall bar above the first row, between each pair of
// rows, and below the last row, spanning the full symbol width (spec.md
// §4.4, §4.6).
func BindingBars(width, rowHeight, numRows int) []geom.Rectangle {
	const binderHeight = 2
	var bars []geom.Rectangle
	y := 0
	bars = append(bars, geom.Rectangle{X: 0, Y: y, Width: width, Height: binderHeight})
	y += binderHeight
	for i := 0; i < numRows; i++ {
		y += rowHeight
		bars = append(bars, geom.Rectangle{X: 0, Y: y, Width: width, Height: binderHeight})
		y += binderHeight
	}
	return bars
}
