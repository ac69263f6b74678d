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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// companiesCmd represents the companies command
var companiesCmd = &cobra.Command{
	Use:   "companies [query]",
	Short: "List companies known to the upstream API",
	Long: `The companies sub-command fetches the upstream company list and prints
it. An optional query filters by symbol or name, case-insensitively.

Unlike the per-company endpoints, a failing company list is reported as an
error: without it no ticker can be resolved at all.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		companies, err := newClient().Companies(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not fetch company list")
		}

		query := ""
		if len(args) > 0 {
			query = strings.ToLower(args[0])
		}

		rows := make([][]string, 0, len(companies))
		for _, company := range companies {
			if query != "" &&
				!strings.Contains(strings.ToLower(company.Symbol), query) &&
				!strings.Contains(strings.ToLower(company.Name), query) {
				continue
			}

			rows = append(rows, []string{company.ID, company.Symbol, company.Name, company.Sector})
		}

		if len(rows) == 0 {
			fmt.Println("No companies matched.")
			return
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
			Headers("ID", "SYMBOL", "NAME", "SECTOR").
			Rows(rows...)

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}
