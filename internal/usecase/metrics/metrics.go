package metrics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/assetly-backend/internal/domain"
)

const daysPerYear = 365

// Calculations holds the per-asset cost figures shown next to an asset
type Calculations struct {
	DaysOwned         int             `json:"daysOwned"`
	DailyCost         decimal.Decimal `json:"dailyCost"`
	DisplayDailyPrice string          `json:"displayDailyPrice"`
	DisplayDaysOwned  string          `json:"displayDaysOwned"`
}

// AssetSummary aggregates the in-service part of a collection
type AssetSummary struct {
	TotalAssets    int             `json:"totalAssets"`
	ActiveAssets   int             `json:"activeAssets"`
	RetiredAssets  int             `json:"retiredAssets"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	TotalDailyCost decimal.Decimal `json:"totalDailyCost"`
}

// DaysOwned returns the whole calendar days between purchase and now, never less than 1
// Days are counted in the purchase date's location, so a DST shift does not lose or gain a day.
// A day only counts once now's time of day has reached the purchase's.
func DaysOwned(purchaseDate, now time.Time) int {
	now = now.In(purchaseDate.Location())

	days := civilDay(now) - civilDay(purchaseDate)
	if days > 0 && clockOf(now) < clockOf(purchaseDate) {
		days--
	}
	if days < 1 {
		return 1
	}
	return days
}

// civilDay returns the day number of t's calendar date, counted from 1970-01-01
func civilDay(t time.Time) int {
	y, m, d := t.Date()
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (int(m) + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// clockOf returns the time of day of t as a nanosecond offset from midnight
func clockOf(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// DailyCost spreads price over days; a non-positive day count returns price unchanged
func DailyCost(price decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return price
	}
	return price.Div(decimal.NewFromInt(int64(days)))
}

// Calculate derives the cost figures for one asset
// Priority (first match wins):
//  1. SpecifiedDailyPrice set: used as is, days owned stays calendar based
//  2. CalculateByUsage with a non-zero UsageCount: price / usage, days owned = usage count
//  3. Otherwise: price / calendar days owned
//
// symbol prefixes DisplayDailyPrice
func Calculate(asset domain.Asset, now time.Time, symbol string) Calculations {
	var (
		days int
		cost decimal.Decimal
	)

	switch {
	case asset.SpecifiedDailyPrice != nil:
		days = DaysOwned(asset.PurchaseDate, now)
		cost = *asset.SpecifiedDailyPrice
	case asset.CalculateByUsage && asset.UsageCount != nil && *asset.UsageCount != 0:
		days = *asset.UsageCount
		cost = DailyCost(asset.Price, days)
	default:
		days = DaysOwned(asset.PurchaseDate, now)
		cost = DailyCost(asset.Price, days)
	}

	return Calculations{
		DaysOwned:         days,
		DailyCost:         cost,
		DisplayDailyPrice: FormatCurrency(cost, symbol),
		DisplayDaysOwned:  FormatDaysOwned(days),
	}
}

// Summarize counts active and retired assets and sums price and daily cost over active ones
func Summarize(assets []domain.Asset, now time.Time) AssetSummary {
	summary := AssetSummary{
		TotalAssets:    len(assets),
		TotalValue:     decimal.Zero,
		TotalDailyCost: decimal.Zero,
	}

	for _, asset := range assets {
		if !asset.InService {
			continue
		}
		summary.ActiveAssets++
		summary.TotalValue = summary.TotalValue.Add(asset.Price)
		summary.TotalDailyCost = summary.TotalDailyCost.Add(Calculate(asset, now, "").DailyCost)
	}
	summary.RetiredAssets = len(assets) - summary.ActiveAssets

	return summary
}

// FormatCurrency renders amount with two decimals behind symbol, e.g. "RM12.50"
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}

// FormatDaysOwned renders a day count as "10Days", "1Y" or "1Y35D"
func FormatDaysOwned(days int) string {
	if days >= daysPerYear {
		years := days / daysPerYear
		remaining := days % daysPerYear
		if remaining == 0 {
			return fmt.Sprintf("%dY", years)
		}
		return fmt.Sprintf("%dY%dD", years, remaining)
	}
	return fmt.Sprintf("%dDays", days)
}

// FormatPurchaseDate renders a date the way the asset detail view shows it
func FormatPurchaseDate(t time.Time) string {
	return t.Format("2006年01月02日")
}
