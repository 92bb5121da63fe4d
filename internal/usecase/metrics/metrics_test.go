package metrics

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestDaysOwned(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		want     int
	}{
		{name: "Purchased now", purchase: now, want: 1},
		{name: "Purchased an hour ago", purchase: now.Add(-time.Hour), want: 1},
		{name: "Purchased in the future", purchase: now.AddDate(0, 0, 3), want: 1},
		{name: "Exactly 50 days", purchase: now.AddDate(0, 0, -50), want: 50},
		{name: "50 days and 23 hours floors", purchase: now.AddDate(0, 0, -50).Add(-23 * time.Hour), want: 50},
		{name: "Two years", purchase: now.AddDate(0, 0, -730), want: 730},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysOwned(tt.purchase, now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
		})
	}
}

func TestDaysOwned_CountsCalendarDaysAcrossDST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	purchase := time.Date(2024, 3, 1, 0, 0, 0, 0, newYork)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "Just after midnight past the spring change", now: time.Date(2024, 4, 20, 0, 30, 0, 0, newYork), want: 50},
		{name: "Same instant seen from UTC", now: time.Date(2024, 4, 20, 0, 30, 0, 0, newYork).UTC(), want: 50},
		{name: "Just before midnight", now: time.Date(2024, 4, 19, 23, 59, 0, 0, newYork), want: 49},
		{name: "Past the autumn change", now: time.Date(2024, 11, 4, 0, 0, 0, 0, newYork), want: 248},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysOwned(purchase, tt.now))
		})
	}
}

func TestDaysOwned_Centuries(t *testing.T) {
	purchase := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 109572, DaysOwned(purchase, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 109571, DaysOwned(purchase, time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestDailyCost(t *testing.T) {
	assertDecimal(t, "10", DailyCost(decimal.NewFromInt(500), 50))
	assertDecimal(t, "500", DailyCost(decimal.NewFromInt(500), 0))
	assertDecimal(t, "500", DailyCost(decimal.NewFromInt(500), -4))
}

func TestCalculate_SpecifiedPriceWinsOverUsage(t *testing.T) {
	asset := domain.Asset{
		Price:               decimal.NewFromInt(1000),
		PurchaseDate:        now.AddDate(0, 0, -20),
		CalculateByUsage:    true,
		UsageCount:          intPtr(10),
		SpecifiedDailyPrice: decPtr("5.00"),
	}

	calc := Calculate(asset, now, "$")

	assertDecimal(t, "5", calc.DailyCost)
	assert.Equal(t, 20, calc.DaysOwned, "days owned stays calendar based")
	assert.Equal(t, "$5.00", calc.DisplayDailyPrice)
}

func TestCalculate_UsageBased(t *testing.T) {
	asset := domain.Asset{
		Price:            decimal.NewFromInt(1000),
		PurchaseDate:     now.AddDate(0, 0, -3),
		CalculateByUsage: true,
		UsageCount:       intPtr(100),
	}

	calc := Calculate(asset, now, "RM")

	assertDecimal(t, "10", calc.DailyCost)
	assert.Equal(t, 100, calc.DaysOwned, "usage count replaces calendar days")
	assert.Equal(t, "RM10.00", calc.DisplayDailyPrice)
	assert.Equal(t, "100Days", calc.DisplayDaysOwned)
}

func TestCalculate_UsageFlagWithoutCountFallsBackToCalendar(t *testing.T) {
	for _, usage := range []*int{nil, intPtr(0)} {
		asset := domain.Asset{
			Price:            decimal.NewFromInt(500),
			PurchaseDate:     now.AddDate(0, 0, -50),
			CalculateByUsage: true,
			UsageCount:       usage,
		}

		calc := Calculate(asset, now, "")
		assertDecimal(t, "10", calc.DailyCost)
		assert.Equal(t, 50, calc.DaysOwned)
	}
}

func TestCalculate_CalendarBased(t *testing.T) {
	asset := domain.Asset{
		Price:        decimal.NewFromInt(500),
		PurchaseDate: now.AddDate(0, 0, -50),
	}

	calc := Calculate(asset, now, "$")

	assertDecimal(t, "10", calc.DailyCost)
	assert.Equal(t, 50, calc.DaysOwned)
	assert.Equal(t, "$10.00", calc.DisplayDailyPrice)
}

func TestCalculate_NegativeUsageReturnsPrice(t *testing.T) {
	asset := domain.Asset{
		Price:            decimal.NewFromInt(80),
		PurchaseDate:     now,
		CalculateByUsage: true,
		UsageCount:       intPtr(-5),
	}

	calc := Calculate(asset, now, "")
	assertDecimal(t, "80", calc.DailyCost)
}

func TestSummarize(t *testing.T) {
	assets := []domain.Asset{
		{InService: true, Price: decimal.NewFromInt(100), PurchaseDate: now.AddDate(0, 0, -10)},
		{InService: true, Price: decimal.NewFromInt(200), PurchaseDate: now.AddDate(0, 0, -20)},
		{InService: false, Price: decimal.NewFromInt(9999), PurchaseDate: now.AddDate(0, 0, -1)},
	}

	summary := Summarize(assets, now)

	assert.Equal(t, 2, summary.ActiveAssets)
	assert.Equal(t, 1, summary.RetiredAssets)
	assert.Equal(t, 3, summary.TotalAssets)
	assertDecimal(t, "300", summary.TotalValue)
	assertDecimal(t, "20", summary.TotalDailyCost) // 100/10 + 200/20
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, now)

	assert.Zero(t, summary.ActiveAssets)
	assert.Zero(t, summary.RetiredAssets)
	assertDecimal(t, "0", summary.TotalValue)
	assertDecimal(t, "0", summary.TotalDailyCost)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$10.00", FormatCurrency(decimal.NewFromInt(10), "$"))
	assert.Equal(t, "€3.33", FormatCurrency(decimal.NewFromInt(10).Div(decimal.NewFromInt(3)), "€"))
	assert.Equal(t, "¥1234567.50", FormatCurrency(decimal.RequireFromString("1234567.5"), "¥"))
	assert.Equal(t, "0.01", FormatCurrency(decimal.RequireFromString("0.005"), ""))
}

func TestFormatDaysOwned(t *testing.T) {
	tests := map[int]string{
		1:   "1Days",
		10:  "10Days",
		364: "364Days",
		365: "1Y",
		400: "1Y35D",
		730: "2Y",
		731: "2Y1D",
	}

	for days, want := range tests {
		assert.Equal(t, want, FormatDaysOwned(days), "days=%d", days)
	}
}

func TestFormatPurchaseDate(t *testing.T) {
	assert.Equal(t, "2024年03月07日", FormatPurchaseDate(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)))
}
