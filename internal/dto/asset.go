package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
)

// CreateAssetRequest defines the data needed to add an asset
type CreateAssetRequest struct {
	Name                string           `json:"name" validate:"required,max=200"`
	Description         *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Icon                string           `json:"icon" validate:"required"`
	Category            string           `json:"category" validate:"required"`
	Price               decimal.Decimal  `json:"price" validate:"gte=0"`
	PurchaseDate        time.Time        `json:"purchaseDate" validate:"required"`
	WarrantyDate        *time.Time       `json:"warrantyDate,omitempty"`
	CalculateByUsage    bool             `json:"calculateByUsage"`
	UsageCount          *int             `json:"usageCount,omitempty" validate:"omitempty,gte=0"`
	SpecifiedDailyPrice *decimal.Decimal `json:"specifiedDailyPrice,omitempty" validate:"omitempty,gte=0"`
	InService           *bool            `json:"inService,omitempty"`
	IsFavorite          bool             `json:"isFavorite"`
	Image               *string          `json:"image,omitempty"`
}

// Validate checks the request fields
func (r *CreateAssetRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateStruct(r)
}

// ToInput converts the request to a domain.AssetInput; InService defaults to true
func (r *CreateAssetRequest) ToInput() domain.AssetInput {
	inService := true
	if r.InService != nil {
		inService = *r.InService
	}
	return domain.AssetInput{
		Name:                r.Name,
		Description:         r.Description,
		Icon:                r.Icon,
		Category:            r.Category,
		Price:               r.Price,
		PurchaseDate:        r.PurchaseDate,
		WarrantyDate:        r.WarrantyDate,
		CalculateByUsage:    r.CalculateByUsage,
		UsageCount:          r.UsageCount,
		SpecifiedDailyPrice: r.SpecifiedDailyPrice,
		InService:           inService,
		IsFavorite:          r.IsFavorite,
		Image:               r.Image,
	}
}

// UpdateAssetRequest defines a partial update. Absent fields are left unchanged;
// a JSON null clears the nullable ones.
type UpdateAssetRequest struct {
	ID                  string                        `json:"id,omitempty"`
	Name                *string                       `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description         domain.Field[string]          `json:"description"`
	Icon                *string                       `json:"icon,omitempty" validate:"omitempty,min=1"`
	Category            *string                       `json:"category,omitempty" validate:"omitempty,min=1"`
	Price               *decimal.Decimal              `json:"price,omitempty" validate:"omitempty,gte=0"`
	PurchaseDate        *time.Time                    `json:"purchaseDate,omitempty"`
	WarrantyDate        domain.Field[time.Time]       `json:"warrantyDate"`
	CalculateByUsage    *bool                         `json:"calculateByUsage,omitempty"`
	UsageCount          domain.Field[int]             `json:"usageCount"`
	SpecifiedDailyPrice domain.Field[decimal.Decimal] `json:"specifiedDailyPrice"`
	InService           *bool                         `json:"inService,omitempty"`
	IsFavorite          *bool                         `json:"isFavorite,omitempty"`
	Image               domain.Field[string]          `json:"image"`
}

// Validate checks the request fields
func (r *UpdateAssetRequest) Validate() error {
	if r.ID == "" {
		return invalid("id is required")
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.UsageCount.Value != nil && *r.UsageCount.Value < 0 {
		return invalid("usageCount must be at least 0")
	}
	if r.SpecifiedDailyPrice.Value != nil && r.SpecifiedDailyPrice.Value.IsNegative() {
		return invalid("specifiedDailyPrice must be at least 0")
	}
	return nil
}

// ToPatch converts the request to a domain.AssetPatch
func (r *UpdateAssetRequest) ToPatch() domain.AssetPatch {
	return domain.AssetPatch{
		Name:                r.Name,
		Description:         r.Description,
		Icon:                r.Icon,
		Category:            r.Category,
		Price:               r.Price,
		PurchaseDate:        r.PurchaseDate,
		WarrantyDate:        r.WarrantyDate,
		CalculateByUsage:    r.CalculateByUsage,
		UsageCount:          r.UsageCount,
		SpecifiedDailyPrice: r.SpecifiedDailyPrice,
		InService:           r.InService,
		IsFavorite:          r.IsFavorite,
		Image:               r.Image,
	}
}

// ListAssetsRequest holds the listing filters
type ListAssetsRequest struct {
	Status string `json:"status,omitempty" form:"status"`
	Search string `json:"search,omitempty" form:"search"`
	Sort   string `json:"sort,omitempty" form:"sort"`
}

// ToOptions parses the request into asset.ListOptions
func (r ListAssetsRequest) ToOptions() (asset.ListOptions, error) {
	status, err := asset.ParseStatusFilter(r.Status)
	if err != nil {
		return asset.ListOptions{}, err
	}
	sort, err := asset.ParseSortKey(r.Sort)
	if err != nil {
		return asset.ListOptions{}, err
	}
	return asset.ListOptions{Status: status, Search: r.Search, Sort: sort}, nil
}

// AssetResponse is an asset together with its derived cost figures
type AssetResponse struct {
	domain.Asset
	Calculations        metrics.Calculations `json:"calculations"`
	DisplayPurchaseDate string               `json:"displayPurchaseDate"`
}

// ToAssetResponse attaches calculations from f to a
func ToAssetResponse(a domain.Asset, f *metrics.Formatter) AssetResponse {
	return AssetResponse{
		Asset:               a,
		Calculations:        f.Calculate(a),
		DisplayPurchaseDate: metrics.FormatPurchaseDate(a.PurchaseDate),
	}
}

// ToListAssetResponse converts a slice of assets to responses
func ToListAssetResponse(assets []domain.Asset, f *metrics.Formatter) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = ToAssetResponse(a, f)
	}
	return res
}

// ListAssetsResponse wraps a listing
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
	Count  int             `json:"count"`
}

// SummaryResponse is the aggregate summary with display strings in the current currency
type SummaryResponse struct {
	metrics.AssetSummary
	Currency              domain.Currency `json:"currency"`
	DisplayTotalValue     string          `json:"displayTotalValue"`
	DisplayTotalDailyCost string          `json:"displayTotalDailyCost"`
}

// ToSummaryResponse summarizes assets using f
func ToSummaryResponse(assets []domain.Asset, currency domain.Currency, f *metrics.Formatter) SummaryResponse {
	summary := f.Summarize(assets)
	return SummaryResponse{
		AssetSummary:          summary,
		Currency:              currency,
		DisplayTotalValue:     f.FormatCurrency(summary.TotalValue, ""),
		DisplayTotalDailyCost: f.FormatCurrency(summary.TotalDailyCost, ""),
	}
}
