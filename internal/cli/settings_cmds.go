package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/dto"
)

func newSettingsCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the display currency and theme",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show current preferences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				res := dto.ToSettingsResponse(appFrom(cmd).Settings.Snapshot())
				if opts.JSON {
					return writeJSON(out(cmd), res)
				}
				renderSettings(out(cmd), res)
				return nil
			},
		},
		newSettingsSetCommand(opts),
		&cobra.Command{
			Use:   "currencies",
			Short: "List supported currencies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				currencies := appFrom(cmd).Settings.AvailableCurrencies()
				if opts.JSON {
					return writeJSON(out(cmd), dto.CurrenciesResponse{Currencies: currencies})
				}

				rows := make([][]string, 0, len(currencies))
				for _, c := range currencies {
					rows = append(rows, []string{string(c.Code), c.Symbol, c.Name})
				}
				t := table.New().
					Border(lipgloss.RoundedBorder()).
					BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
					Headers("CODE", "SYMBOL", "NAME").
					Rows(rows...).
					StyleFunc(func(row, col int) lipgloss.Style {
						if row == table.HeaderRow {
							return headerStyle
						}
						return cellStyle
					})
				fmt.Fprintln(out(cmd), t)
				return nil
			},
		},
	)

	return cmd
}

func newSettingsSetCommand(opts *GlobalOptions) *cobra.Command {
	var req dto.UpdateSettingsRequest
	var theme, currency string

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change the theme and/or currency",
		Example: `  assetly settings set --currency MYR --theme dark`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			if cmd.Flags().Changed("theme") {
				req.Theme = &theme
			}
			if cmd.Flags().Changed("currency") {
				req.Currency = &currency
			}
			if err := req.Validate(); err != nil {
				return err
			}

			if req.Theme != nil {
				if err := app.Settings.SetTheme(cmd.Context(), domain.Theme(*req.Theme)); err != nil {
					return err
				}
			}
			if req.Currency != nil {
				if err := app.Settings.SetCurrency(cmd.Context(), domain.Currency(*req.Currency)); err != nil {
					return err
				}
			}

			res := dto.ToSettingsResponse(app.Settings.Snapshot())
			if opts.JSON {
				return writeJSON(out(cmd), res)
			}
			renderSettings(out(cmd), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "light, dark or auto")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code, e.g. USD or MYR")
	return cmd
}
