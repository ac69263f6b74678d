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

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/psxlens/psxlens/data"
	"github.com/psxlens/psxlens/foundation"
	"github.com/psxlens/psxlens/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// session holds the currently loaded foundation across fetches within one
// CLI process.
var session foundation.Session

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [ticker]",
	Short: "Fetch a company's data and render the dashboard",
	Long: `The report sub-command builds the full normalized foundation for one
company (ratios, market snapshot, growth, industry benchmarks, price
history, statements) and renders it in the terminal. When no ticker is
given an interactive prompt asks for one.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		var ticker string
		if len(args) > 0 {
			ticker = args[0]
		} else {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Which ticker should be analyzed?").
						Value(&ticker),
				),
			)

			if err := form.Run(); err != nil {
				log.Fatal().Err(err).Msg("failed to create wizard")
			}
		}

		token := session.Begin()

		f, err := foundation.Build(ctx, newClient(), ticker)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", ticker).Msg("processing failed")
		}

		if !session.Complete(token, f) {
			log.Warn().Str("Ticker", ticker).Msg("fetch superseded by a newer request, discarding result")
			return
		}

		printHero(f)

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(100),
		)

		out, err := r.Render(report.Markdown(f))
		if err != nil {
			log.Fatal().Err(err).Msg("could not render report document")
		}

		fmt.Print(out)
	},
}

// printHero renders the headline metric box above the report body.
func printHero(f *foundation.Foundation) {
	keyword := func(s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
	}

	body := fmt.Sprintf(
		"%s\n\nPrice: %s\nChange: %s\nMarket Cap: %s M\nP/E: %s\nDebt-to-Equity: %s",
		lipgloss.NewStyle().Bold(true).Render(f.Ticker),
		keyword(fmt.Sprintf("PKR %.2f", f.Market.Number(data.MetricKey("Current_Price")))),
		keyword(fmt.Sprintf("%+.2f", f.Market.Number(data.MetricKey("Change")))),
		keyword(fmt.Sprintf("%.0f", f.Market.Number(data.MetricKey("Market_Cap")))),
		keyword(fmt.Sprintf("%.2f", f.Market.Number(data.MetricKey("PE_Live")))),
		keyword(fmt.Sprintf("%.2f", f.Market.Number(data.MetricKey("Debt_to_Equity")))),
	)

	fmt.Println(
		lipgloss.NewStyle().
			Width(60).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Render(body),
	)
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
