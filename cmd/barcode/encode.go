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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	encodeSymbology string
	encodeContent   string
	encodeOpts      []string
	encodeRaw       bool
	encodeOut       string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single content string into one barcode symbol",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeSymbology, "symbology", "", fmt.Sprintf("symbology to encode (one of: %s)", strings.Join(symbologyNames(), ", ")))
	encodeCmd.Flags().StringVar(&encodeContent, "content", "", "content to encode")
	encodeCmd.Flags().StringSliceVar(&encodeOpts, "opt", nil, "symbology option as key=value, repeatable")
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "skip command-line escape-sequence expansion")
	encodeCmd.Flags().StringVar(&encodeOut, "out", "", "write JSON output here instead of stdout")
	encodeCmd.MarkFlagRequired("symbology")
	encodeCmd.MarkFlagRequired("content")
}

// parseOpts turns a list of "key=value" strings into an opts bag.
func parseOpts(pairs []string) (opts, error) {
	o := make(opts, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("opt %q: expected key=value", p)
		}
		o[k] = v
	}
	return o, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	o, err := parseOpts(encodeOpts)
	if err != nil {
		return err
	}

	content := encodeContent
	if !encodeRaw {
		content, err = unescapeContent(content)
		if err != nil {
			return err
		}
	}

	enc, err := buildEncoder(encodeSymbology, o)
	if err != nil {
		return err
	}

	log.Debug().Str("symbology", encodeSymbology).Int("len", len(content)).Msg("encoding")
	sym, err := enc.Encode(content)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	out, err := json.MarshalIndent(sym, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: marshal result: %w", err)
	}

	if encodeOut == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(encodeOut, out, 0o644)
}
