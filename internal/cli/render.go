package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/simaogato/assetly-backend/internal/dto"
)

var (
	accentColor = lipgloss.Color("#7D56F4")
	mutedColor  = lipgloss.Color("#626262")
	okColor     = lipgloss.Color("#73F59F")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = cellStyle.Foreground(mutedColor)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(16)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	activeStyle = lipgloss.NewStyle().Foreground(okColor)
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderAssetTable prints assets as a bordered table; retired rows are dimmed
func renderAssetTable(w io.Writer, assets []dto.AssetResponse) {
	if len(assets) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No assets found"))
		return
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		fav := ""
		if a.IsFavorite {
			fav = "★"
		}
		rows = append(rows, []string{
			a.ID,
			a.Name + " " + fav,
			a.Category,
			a.Price.StringFixed(2),
			a.Calculations.DisplayDailyPrice,
			a.Calculations.DisplayDaysOwned,
			serviceLabel(a.InService),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("ID", "NAME", "CATEGORY", "PRICE", "PER DAY", "OWNED", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(assets) && !assets[row].InService {
				return mutedStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t)
	fmt.Fprintln(w, mutedStyle.Render(strconv.Itoa(len(assets))+" asset(s)"))
}

// renderAssetDetail prints one asset as label/value lines
func renderAssetDetail(w io.Writer, a dto.AssetResponse) {
	fmt.Fprintln(w, titleStyle.Render(a.Name))

	line := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+value)
	}
	line("ID", a.ID)
	line("Category", a.Category)
	line("Icon", a.Icon)
	if a.Description != nil && *a.Description != "" {
		line("Description", *a.Description)
	}
	line("Price", a.Price.StringFixed(2))
	line("Purchased", a.DisplayPurchaseDate)
	if a.WarrantyDate != nil {
		line("Warranty until", a.WarrantyDate.Format("2006-01-02"))
	}
	line("Status", serviceLabel(a.InService))
	line("Favourite", strconv.FormatBool(a.IsFavorite))
	if a.CalculateByUsage && a.UsageCount != nil {
		line("Uses", strconv.Itoa(*a.UsageCount))
	}
	line("Days owned", a.Calculations.DisplayDaysOwned)
	line("Daily cost", a.Calculations.DisplayDailyPrice)
}

// renderSummary prints the aggregate figures
func renderSummary(w io.Writer, s dto.SummaryResponse) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Rows(
			[]string{"Total assets", strconv.Itoa(s.TotalAssets)},
			[]string{"In service", strconv.Itoa(s.ActiveAssets)},
			[]string{"Retired", strconv.Itoa(s.RetiredAssets)},
			[]string{"Total value", s.DisplayTotalValue},
			[]string{"Daily cost", s.DisplayTotalDailyCost},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t)
}

// renderSettings prints the current preferences
func renderSettings(w io.Writer, s dto.SettingsResponse) {
	fmt.Fprintln(w, labelStyle.Render("Theme")+string(s.Theme))
	fmt.Fprintln(w, labelStyle.Render("Currency")+fmt.Sprintf("%s (%s, %s)", s.Currency, s.CurrencyName, s.CurrencySymbol))
}

func serviceLabel(inService bool) string {
	if inService {
		return activeStyle.Render("in service")
	}
	return "retired"
}
