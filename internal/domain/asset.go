package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents one owned item tracked by the inventory
// JSON keys match the document written by the mobile app so existing data loads unchanged
type Asset struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         *string          `json:"description,omitempty"`
	Icon                string           `json:"icon"`
	Category            string           `json:"category"`
	Price               decimal.Decimal  `json:"price"`
	PurchaseDate        time.Time        `json:"purchaseDate"`
	WarrantyDate        *time.Time       `json:"warrantyDate"`
	CalculateByUsage    bool             `json:"calculateByUsage"`
	UsageCount          *int             `json:"usageCount,omitempty"`
	SpecifiedDailyPrice *decimal.Decimal `json:"specifiedDailyPrice"`
	InService           bool             `json:"inService"`
	IsFavorite          bool             `json:"isFavorite"`
	Image               *string          `json:"image"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// AssetInput holds every caller-supplied field of a new asset
// ID and timestamps are assigned by the repository
type AssetInput struct {
	Name                string
	Description         *string
	Icon                string
	Category            string
	Price               decimal.Decimal
	PurchaseDate        time.Time
	WarrantyDate        *time.Time
	CalculateByUsage    bool
	UsageCount          *int
	SpecifiedDailyPrice *decimal.Decimal
	InService           bool
	IsFavorite          bool
	Image               *string
}

// AssetPatch is a partial update. Nil pointers and unset fields keep the stored value.
// ID, CreatedAt and UpdatedAt are not patchable.
type AssetPatch struct {
	Name                *string
	Description         Field[string]
	Icon                *string
	Category            *string
	Price               *decimal.Decimal
	PurchaseDate        *time.Time
	WarrantyDate        Field[time.Time]
	CalculateByUsage    *bool
	UsageCount          Field[int]
	SpecifiedDailyPrice Field[decimal.Decimal]
	InService           *bool
	IsFavorite          *bool
	Image               Field[string]
}

// NewAsset builds an asset from input with the given identity and creation time
func NewAsset(id string, input AssetInput, now time.Time) Asset {
	return Asset{
		ID:                  id,
		Name:                input.Name,
		Description:         clonePtr(input.Description),
		Icon:                input.Icon,
		Category:            input.Category,
		Price:               input.Price,
		PurchaseDate:        input.PurchaseDate,
		WarrantyDate:        clonePtr(input.WarrantyDate),
		CalculateByUsage:    input.CalculateByUsage,
		UsageCount:          clonePtr(input.UsageCount),
		SpecifiedDailyPrice: clonePtr(input.SpecifiedDailyPrice),
		InService:           input.InService,
		IsFavorite:          input.IsFavorite,
		Image:               clonePtr(input.Image),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Apply returns a copy of a with the patch merged over it
// Identity and timestamps are left untouched; the caller stamps UpdatedAt
func (p AssetPatch) Apply(a Asset) Asset {
	out := a.Clone()

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Icon != nil {
		out.Icon = *p.Icon
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.PurchaseDate != nil {
		out.PurchaseDate = *p.PurchaseDate
	}
	if p.CalculateByUsage != nil {
		out.CalculateByUsage = *p.CalculateByUsage
	}
	if p.InService != nil {
		out.InService = *p.InService
	}
	if p.IsFavorite != nil {
		out.IsFavorite = *p.IsFavorite
	}

	p.Description.assign(&out.Description)
	p.WarrantyDate.assign(&out.WarrantyDate)
	p.UsageCount.assign(&out.UsageCount)
	p.SpecifiedDailyPrice.assign(&out.SpecifiedDailyPrice)
	p.Image.assign(&out.Image)

	return out
}

// IsEmpty reports whether the patch changes nothing
func (p AssetPatch) IsEmpty() bool {
	return p.Name == nil && p.Icon == nil && p.Category == nil && p.Price == nil &&
		p.PurchaseDate == nil && p.CalculateByUsage == nil && p.InService == nil &&
		p.IsFavorite == nil && !p.Description.Set && !p.WarrantyDate.Set &&
		!p.UsageCount.Set && !p.SpecifiedDailyPrice.Set && !p.Image.Set
}

// Clone returns a deep copy so callers cannot alias repository state
func (a Asset) Clone() Asset {
	out := a
	out.Description = clonePtr(a.Description)
	out.WarrantyDate = clonePtr(a.WarrantyDate)
	out.UsageCount = clonePtr(a.UsageCount)
	out.SpecifiedDailyPrice = clonePtr(a.SpecifiedDailyPrice)
	out.Image = clonePtr(a.Image)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
