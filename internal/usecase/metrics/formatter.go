package metrics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/assetly-backend/internal/domain"
)

// SymbolSource provides the symbol of the currently selected currency
type SymbolSource interface {
	CurrencySymbol(code domain.Currency) string
}

// Formatter binds the pure calculations to the user's currency setting
type Formatter struct {
	Symbols SymbolSource
	Now     func() time.Time
}

// NewFormatter creates a Formatter reading symbols from src
func NewFormatter(src SymbolSource) *Formatter {
	return &Formatter{Symbols: src, Now: time.Now}
}

// FormatCurrency renders amount with symbolOverride, or the current currency symbol when empty
func (f *Formatter) FormatCurrency(amount decimal.Decimal, symbolOverride string) string {
	return FormatCurrency(amount, f.symbol(symbolOverride))
}

// Calculate derives calculations for asset at the formatter's current time
func (f *Formatter) Calculate(asset domain.Asset) Calculations {
	return Calculate(asset, f.now(), f.symbol(""))
}

// Summarize aggregates assets at the formatter's current time
func (f *Formatter) Summarize(assets []domain.Asset) AssetSummary {
	return Summarize(assets, f.now())
}

func (f *Formatter) symbol(override string) string {
	if override != "" {
		return override
	}
	if f.Symbols == nil {
		return ""
	}
	return f.Symbols.CurrencySymbol("")
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
