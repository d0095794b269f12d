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
	"os"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	previewSymbology string
	previewContent   string
	previewOpts      []string
	previewRaw       bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render one symbol to SVG and open it in a browser",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewSymbology, "symbology", "", "symbology to encode")
	previewCmd.Flags().StringVar(&previewContent, "content", "", "content to encode")
	previewCmd.Flags().StringSliceVar(&previewOpts, "opt", nil, "symbology option as key=value, repeatable")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "skip command-line escape-sequence expansion")
	previewCmd.MarkFlagRequired("symbology")
	previewCmd.MarkFlagRequired("content")
}

func runPreview(cmd *cobra.Command, args []string) error {
	o, err := parseOpts(previewOpts)
	if err != nil {
		return err
	}

	content := previewContent
	if !previewRaw {
		content, err = unescapeContent(content)
		if err != nil {
			return err
		}
	}

	enc, err := buildEncoder(previewSymbology, o)
	if err != nil {
		return err
	}
	sym, err := enc.Encode(content)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	f, err := os.CreateTemp("", "barcode-preview-*.svg")
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(renderSVG(sym)); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	log.Info().Str("path", f.Name()).Msg("opening preview")
	return browser.OpenFile(f.Name())
}
