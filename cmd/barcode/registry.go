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
	"fmt"
	"sort"
	"strconv"

	"github.com/okapi-go/barcode/code128"
	"github.com/okapi-go/barcode/datamatrix"
	"github.com/okapi-go/barcode/maxicode"
	"github.com/okapi-go/barcode/onedim"
	"github.com/okapi-go/barcode/pdf417"
	"github.com/okapi-go/barcode/qrcode"
	"github.com/okapi-go/barcode/symbol"
)

// opts is the generic --opt key=value bag every registry builder reads
// from. It is intentionally untyped at the CLI boundary; each builder
// parses only the keys its symbology understands.
type opts map[string]string

func (o opts) str(key, def string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}

func (o opts) intv(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("opt %s: %w", key, err)
	}
	return n, nil
}

func (o opts) boolv(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("opt %s: %w", key, err)
	}
	return b, nil
}

// builder constructs a symbol.Encoder from the --opt bag.
type builder func(o opts) (symbol.Encoder, error)

// registry maps the --symbology flag's accepted values to their builder.
// This is the CLI's one flat namespace over every symbology this module
// implements (spec.md §4.5-4.8).
var registry = map[string]builder{
	"code39": func(o opts) (symbol.Encoder, error) {
		check, err := o.boolv("check-digit", false)
		if err != nil {
			return nil, err
		}
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.Code39Encoder{Options: onedim.Code39Options{CheckDigit: check, RowHeight: rh}}, nil
	},
	"logmars": func(o opts) (symbol.Encoder, error) {
		return onedim.LOGMARSEncoder{}, nil
	},
	"code39ext": func(o opts) (symbol.Encoder, error) {
		return onedim.ExtendedCode39Encoder{}, nil
	},
	"codabar": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.CodabarEncoder{RowHeight: rh}, nil
	},
	"code93": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.Code93Encoder{RowHeight: rh}, nil
	},
	"code11": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.Code11Encoder{RowHeight: rh}, nil
	},
	"code32": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.Code32Encoder{RowHeight: rh}, nil
	},
	"msi": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.MSIEncoder{RowHeight: rh, CheckDigit: o.str("check-digit", "mod10")}, nil
	},
	"pzn": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.PZNEncoder{RowHeight: rh}, nil
	},
	"japanpost": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.JapanPostEncoder{RowHeight: rh}, nil
	},
	"ean13": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.EANEncoder{RowHeight: rh, AddOn: o.str("addon", "")}, nil
	},
	"upca": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.UPCAEncoder{RowHeight: rh, AddOn: o.str("addon", "")}, nil
	},
	"eanaddon": func(o opts) (symbol.Encoder, error) {
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return onedim.EANAddOnEncoder{RowHeight: rh}, nil
	},
	"code128": func(o opts) (symbol.Encoder, error) {
		gs1, err := o.boolv("gs1", false)
		if err != nil {
			return nil, err
		}
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return code128.Encoder{Options: code128.Options{RowHeight: rh, GS1: gs1}}, nil
	},
	"code16k": func(o opts) (symbol.Encoder, error) {
		return code128.Code16KEncoder{}, nil
	},
	"qr": func(o opts) (symbol.Encoder, error) {
		ecl, err := parseECC(o.str("ecc", "M"))
		if err != nil {
			return nil, err
		}
		boost, err := o.boolv("boost-ecl", false)
		if err != nil {
			return nil, err
		}
		mask, err := o.intv("mask", -1)
		if err != nil {
			return nil, err
		}
		minV, err := o.intv("min-version", 0)
		if err != nil {
			return nil, err
		}
		maxV, err := o.intv("max-version", 0)
		if err != nil {
			return nil, err
		}
		return qrcode.Encoder{Options: qrcode.Options{ECL: ecl, BoostECL: boost, Mask: mask, MinVersion: minV, MaxVersion: maxV}}, nil
	},
	"microqr": func(o opts) (symbol.Encoder, error) {
		ecl, err := parseECC(o.str("ecc", "L"))
		if err != nil {
			return nil, err
		}
		return qrcode.MicroEncoder{Options: qrcode.MicroOptions{ECL: ecl}}, nil
	},
	"datamatrix": func(o opts) (symbol.Encoder, error) {
		shape, err := parseShapeHint(o.str("shape", "any"))
		if err != nil {
			return nil, err
		}
		return datamatrix.Encoder{Options: datamatrix.Options{Shape: shape}}, nil
	},
	"pdf417": func(o opts) (symbol.Encoder, error) {
		ecl, err := o.intv("ecc-level", 2)
		if err != nil {
			return nil, err
		}
		cols, err := o.intv("columns", 0)
		if err != nil {
			return nil, err
		}
		rh, err := o.intv("row-height", 0)
		if err != nil {
			return nil, err
		}
		return pdf417.Encoder{Options: pdf417.Options{ECLevel: ecl, Columns: cols, RowHeight: rh}}, nil
	},
	"maxicode": func(o opts) (symbol.Encoder, error) {
		mode, err := o.intv("mode", int(maxicode.ModeStandard))
		if err != nil {
			return nil, err
		}
		country, err := o.intv("country-code", 0)
		if err != nil {
			return nil, err
		}
		service, err := o.intv("service-class", 0)
		if err != nil {
			return nil, err
		}
		return maxicode.Encoder{Options: maxicode.Options{
			Mode:         maxicode.Mode(mode),
			PostalCode:   o.str("postal-code", ""),
			CountryCode:  country,
			ServiceClass: service,
		}}, nil
	},
}

func parseECC(s string) (qrcode.ECC, error) {
	switch s {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.Quartile, nil
	case "H":
		return qrcode.High, nil
	default:
		return 0, fmt.Errorf("ecc: unknown level %q, want one of L, M, Q, H", s)
	}
}

func parseShapeHint(s string) (datamatrix.ShapeHint, error) {
	switch s {
	case "any":
		return datamatrix.ShapeAny, nil
	case "square":
		return datamatrix.ShapeSquare, nil
	case "rectangle":
		return datamatrix.ShapeRectangle, nil
	default:
		return 0, fmt.Errorf("shape: unknown hint %q, want one of any, square, rectangle", s)
	}
}

// symbologyNames lists the registry's keys, sorted, for --help text and
// validation errors.
func symbologyNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// buildEncoder looks up name in the registry and constructs its Encoder
// from the --opt bag.
func buildEncoder(name string, o opts) (symbol.Encoder, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown symbology %q; supported: %v", name, symbologyNames())
	}
	return b(o)
}
