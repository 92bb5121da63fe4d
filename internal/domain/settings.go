package domain

import (
	"fmt"
	"strings"
)

// Theme is the display theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Currency is one of the supported display currencies
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyINR Currency = "INR"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyMYR Currency = "MYR"
	CurrencySGD Currency = "SGD"
)

const (
	DefaultTheme    = ThemeAuto
	DefaultCurrency = CurrencyUSD
)

// CurrencyInfo describes how a currency is displayed
type CurrencyInfo struct {
	Code   Currency `json:"code"`
	Name   string   `json:"name"`
	Symbol string   `json:"symbol"`
}

// Currencies lists the supported currencies in catalog order
var Currencies = []CurrencyInfo{
	{Code: CurrencyUSD, Name: "US Dollar", Symbol: "$"},
	{Code: CurrencyEUR, Name: "Euro", Symbol: "€"},
	{Code: CurrencyGBP, Name: "British Pound", Symbol: "£"},
	{Code: CurrencyJPY, Name: "Japanese Yen", Symbol: "¥"},
	{Code: CurrencyINR, Name: "Indian Rupee", Symbol: "₹"},
	{Code: CurrencyCAD, Name: "Canadian Dollar", Symbol: "C$"},
	{Code: CurrencyAUD, Name: "Australian Dollar", Symbol: "A$"},
	{Code: CurrencyMYR, Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: CurrencySGD, Name: "Singapore Dollar", Symbol: "S$"},
}

// LookupCurrency returns the catalog entry for code
func LookupCurrency(code Currency) (CurrencyInfo, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}

// ParseCurrency validates a currency code, accepting any letter case
func ParseCurrency(s string) (Currency, error) {
	code := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := LookupCurrency(code); !ok {
		return "", fmt.Errorf("unsupported currency %q: %w", s, ErrValidation)
	}
	return code, nil
}

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported theme %q: %w", s, ErrValidation)
	}
}

// Settings is a snapshot of the display preferences
type Settings struct {
	Theme    Theme    `json:"theme"`
	Currency Currency `json:"currency"`
}
