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
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"
	"github.com/psxlens/psxlens/askanalyst"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type configFile struct {
	AskAnalyst struct {
		BaseURL   string        `toml:"baseUrl"`
		Timeout   time.Duration `toml:"timeout"`
		RateLimit int           `toml:"rateLimit"`
	} `toml:"askanalyst"`

	Export struct {
		Dir string `toml:"dir"`
	} `toml:"export"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather configuration and write the config file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFile{}
		cfg.AskAnalyst.BaseURL = askanalyst.DefaultBaseURL
		cfg.AskAnalyst.Timeout = askanalyst.DefaultTimeout
		cfg.Export.Dir = "."

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("AskAnalyst API base URL:").
					Value(&cfg.AskAnalyst.BaseURL),

				huh.NewInput().
					Title("Where should exported reports be written?").
					Value(&cfg.Export.Dir),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("failed to create wizard")
		}

		content, err := toml.Marshal(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration")
		}

		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		path := filepath.Join(home, ".psxlens.toml")
		if err := os.WriteFile(path, content, 0o600); err != nil {
			log.Fatal().Err(err).Str("Path", path).Msg("could not write config file")
		}

		log.Info().Str("Path", path).Msg("configuration saved")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
