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

	"github.com/psxlens/psxlens/askanalyst"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "psxlens",
	Short: "psxlens builds normalized financial dashboards for PSX-listed companies",
	Long: `psxlens fetches per-company financial data from the AskAnalyst JSON
endpoints, normalizes the loosely shaped nested payloads into flat metric
maps and pivoted grids, and renders the result as a terminal dashboard or
an exportable report.

The upstream endpoints cover company ratios, live market data, growth
charts, industry averages, price history, income statements, and balance
sheets. Each endpoint has its own loosely enforced schema; psxlens converts
all of them into a single foundation per company.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.psxlens.toml)")
	rootCmd.PersistentFlags().String("baseUrl", askanalyst.DefaultBaseURL, "AskAnalyst API base URL")
	if err := viper.BindPFlag("askanalyst.baseUrl", rootCmd.PersistentFlags().Lookup("baseUrl")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for baseUrl failed")
	}

	rootCmd.PersistentFlags().Duration("timeout", askanalyst.DefaultTimeout, "per-request timeout for upstream calls")
	if err := viper.BindPFlag("askanalyst.timeout", rootCmd.PersistentFlags().Lookup("timeout")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for timeout failed")
	}

	rootCmd.PersistentFlags().Int("rateLimit", 0, "maximum upstream requests per minute (0 = unlimited)")
	if err := viper.BindPFlag("askanalyst.rateLimit", rootCmd.PersistentFlags().Lookup("rateLimit")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for rateLimit failed")
	}
}

// newClient builds the upstream client from the active configuration.
func newClient() *askanalyst.Client {
	return askanalyst.New(
		viper.GetString("askanalyst.baseUrl"),
		viper.GetDuration("askanalyst.timeout"),
		viper.GetInt("askanalyst.rateLimit"),
	)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".psxlens" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".psxlens")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
