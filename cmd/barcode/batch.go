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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchJob is one entry of a batch job file: a symbology, its content, and
// its options, in the same shape encode's flags accept.
type batchJob struct {
	Symbology string            `yaml:"symbology"`
	Content   string            `yaml:"content"`
	Raw       bool              `yaml:"raw"`
	Options   map[string]string `yaml:"options"`
}

var (
	batchFile string
	batchOut  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Encode every job in a YAML job file",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "YAML file listing encode jobs")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "write the JSON results array here instead of stdout")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(batchFile)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	var jobs []batchJob
	if err := yaml.Unmarshal(raw, &jobs); err != nil {
		return fmt.Errorf("batch: parse %s: %w", batchFile, err)
	}

	results := make([]any, 0, len(jobs))
	for i, job := range jobs {
		content := job.Content
		if !job.Raw {
			content, err = unescapeContent(content)
			if err != nil {
				return fmt.Errorf("batch: job %d: %w", i, err)
			}
		}

		enc, err := buildEncoder(job.Symbology, opts(job.Options))
		if err != nil {
			return fmt.Errorf("batch: job %d: %w", i, err)
		}

		log.Debug().Int("job", i).Str("symbology", job.Symbology).Msg("encoding")
		sym, err := enc.Encode(content)
		if err != nil {
			log.Error().Int("job", i).Err(err).Msg("job failed")
			results = append(results, map[string]string{"error": err.Error()})
			continue
		}
		results = append(results, sym)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal results: %w", err)
	}
	if batchOut == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(batchOut, out, 0o644)
}
