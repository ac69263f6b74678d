// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/psxlens/psxlens/foundation"
	"github.com/psxlens/psxlens/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <ticker>",
	Short: "Build a company foundation and export it as markdown and CSV",
	Long: `The export sub-command fetches all endpoint data for one company and
writes a markdown report plus one CSV file per section into the output
directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())
		ticker := args[0]

		f, err := foundation.Build(ctx, newClient(), ticker)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", ticker).Msg("processing failed")
		}

		outDir := viper.GetString("export.dir")
		if outDir == "" {
			outDir = "."
		}

		outDir = filepath.Join(outDir, slug.Make(fmt.Sprintf("psxlens %s", ticker)))
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			log.Fatal().Err(err).Str("Dir", outDir).Msg("could not create export directory")
		}

		reportPath := filepath.Join(outDir, "report.md")
		if err := os.WriteFile(reportPath, []byte(report.Markdown(f)), 0o644); err != nil {
			log.Fatal().Err(err).Str("Path", reportPath).Msg("could not write markdown report")
		}

		for _, section := range f.Sections() {
			if section.Data.IsEmpty() {
				continue
			}

			path := filepath.Join(outDir, slug.Make(section.Name)+".csv")

			file, err := os.Create(path)
			if err != nil {
				log.Fatal().Err(err).Str("Path", path).Msg("could not create section file")
			}

			if err := report.WriteCSV(file, section.Data); err != nil {
				file.Close()
				log.Fatal().Err(err).Str("Path", path).Msg("could not write section csv")
			}

			file.Close()
		}

		log.Info().Str("Ticker", ticker).Str("Dir", outDir).Msg("export complete")
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("out", "", "output directory for exported reports")
	if err := viper.BindPFlag("export.dir", exportCmd.Flags().Lookup("out")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for out failed")
	}
}
