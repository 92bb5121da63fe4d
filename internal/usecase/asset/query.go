package asset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/simaogato/assetly-backend/internal/domain"
)

// StatusFilter selects assets by service state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusRetired   StatusFilter = "retired"
	StatusFavourite StatusFilter = "favourite"
)

// SortKey orders a listing
type SortKey string

const (
	SortNone  SortKey = ""      // insertion order
	SortName  SortKey = "name"  // A to Z, case-insensitive
	SortPrice SortKey = "price" // most expensive first
	SortDate  SortKey = "date"  // most recent purchase first
)

// ListOptions narrows and orders a listing
type ListOptions struct {
	Status StatusFilter
	Search string
	Sort   SortKey
}

// ParseStatusFilter validates a status filter; empty means all
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", StatusAll:
		return StatusAll, nil
	case StatusActive, StatusRetired, StatusFavourite:
		return f, nil
	case "favorite":
		return StatusFavourite, nil
	default:
		return "", fmt.Errorf("unknown status filter %q: %w", s, domain.ErrValidation)
	}
}

// ParseSortKey validates a sort key; empty keeps insertion order
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNone, SortName, SortPrice, SortDate:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q: %w", s, domain.ErrValidation)
	}
}

// Query filters by status, then by search text over name, category and description, then sorts.
// The input slice is not modified.
func Query(assets []domain.Asset, opts ListOptions) []domain.Asset {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	result := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if !matchesStatus(a, opts.Status) {
			continue
		}
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		result = append(result, a)
	}

	switch opts.Sort {
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	case SortPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price)
		})
	case SortDate:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PurchaseDate.After(result[j].PurchaseDate)
		})
	}

	return result
}

func matchesStatus(a domain.Asset, status StatusFilter) bool {
	switch status {
	case StatusActive:
		return a.InService
	case StatusRetired:
		return !a.InService
	case StatusFavourite:
		return a.IsFavorite
	default:
		return true
	}
}

func matchesSearch(a domain.Asset, search string) bool {
	if strings.Contains(strings.ToLower(a.Name), search) ||
		strings.Contains(strings.ToLower(a.Category), search) {
		return true
	}
	return a.Description != nil && strings.Contains(strings.ToLower(*a.Description), search)
}
