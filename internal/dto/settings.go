package dto

import (
	"github.com/simaogato/assetly-backend/internal/domain"
)

// UpdateSettingsRequest changes one or both preferences
type UpdateSettingsRequest struct {
	Theme    *string `json:"theme,omitempty" validate:"omitempty,min=1"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// Validate checks that at least one known preference is supplied
func (r *UpdateSettingsRequest) Validate() error {
	if r.Theme == nil && r.Currency == nil {
		return invalid("theme or currency is required")
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Theme != nil {
		if _, err := domain.ParseTheme(*r.Theme); err != nil {
			return err
		}
	}
	if r.Currency != nil {
		if _, err := domain.ParseCurrency(*r.Currency); err != nil {
			return err
		}
	}
	return nil
}

// SettingsResponse defines the preferences returned to clients
type SettingsResponse struct {
	Theme          domain.Theme    `json:"theme"`
	Currency       domain.Currency `json:"currency"`
	CurrencySymbol string          `json:"currencySymbol"`
	CurrencyName   string          `json:"currencyName"`
}

// ToSettingsResponse builds a SettingsResponse from a snapshot
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	info, _ := domain.LookupCurrency(s.Currency)
	return SettingsResponse{
		Theme:          s.Theme,
		Currency:       s.Currency,
		CurrencySymbol: info.Symbol,
		CurrencyName:   info.Name,
	}
}

// CurrenciesResponse lists the selectable currencies
type CurrenciesResponse struct {
	Currencies []domain.CurrencyInfo `json:"currencies"`
}
