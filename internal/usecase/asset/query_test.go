package asset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func names(assets []domain.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Name
	}
	return out
}

func queryFixture() []domain.Asset {
	desc := "Road bike for commuting"
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Asset{
		{Name: "bicycle", Category: "Transport", Price: decimal.NewFromInt(800), PurchaseDate: day, InService: true, Description: &desc},
		{Name: "Guitar", Category: "Musical", Price: decimal.NewFromInt(1200), PurchaseDate: day.AddDate(0, 3, 0), InService: false, IsFavorite: true},
		{Name: "Apple Watch", Category: "Digital", Price: decimal.NewFromInt(450), PurchaseDate: day.AddDate(0, 6, 0), InService: true, IsFavorite: true},
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{name: "No options keeps insertion order", opts: ListOptions{}, want: []string{"bicycle", "Guitar", "Apple Watch"}},
		{name: "Active only", opts: ListOptions{Status: StatusActive}, want: []string{"bicycle", "Apple Watch"}},
		{name: "Retired only", opts: ListOptions{Status: StatusRetired}, want: []string{"Guitar"}},
		{name: "Favourites", opts: ListOptions{Status: StatusFavourite}, want: []string{"Guitar", "Apple Watch"}},
		{name: "Search matches category", opts: ListOptions{Search: "digi"}, want: []string{"Apple Watch"}},
		{name: "Search matches description", opts: ListOptions{Search: "COMMUTING"}, want: []string{"bicycle"}},
		{name: "Blank search ignored", opts: ListOptions{Search: "   "}, want: []string{"bicycle", "Guitar", "Apple Watch"}},
		{name: "Sort by name ignores case", opts: ListOptions{Sort: SortName}, want: []string{"Apple Watch", "bicycle", "Guitar"}},
		{name: "Sort by price descending", opts: ListOptions{Sort: SortPrice}, want: []string{"Guitar", "bicycle", "Apple Watch"}},
		{name: "Sort by purchase date newest first", opts: ListOptions{Sort: SortDate}, want: []string{"Apple Watch", "Guitar", "bicycle"}},
		{name: "Filter, search and sort combined", opts: ListOptions{Status: StatusFavourite, Search: "a", Sort: SortName}, want: []string{"Apple Watch", "Guitar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Query(queryFixture(), tt.opts)))
		})
	}
}

func TestQuery_DoesNotReorderInput(t *testing.T) {
	assets := queryFixture()
	_ = Query(assets, ListOptions{Sort: SortName})
	assert.Equal(t, []string{"bicycle", "Guitar", "Apple Watch"}, names(assets))
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{"": StatusAll, "ALL": StatusAll, "active": StatusActive, "favorite": StatusFavourite, "favourite": StatusFavourite} {
		got, err := ParseStatusFilter(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatusFilter("broken")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseSortKey(t *testing.T) {
	got, err := ParseSortKey("Price")
	assert.NoError(t, err)
	assert.Equal(t, SortPrice, got)

	_, err = ParseSortKey("weight")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
