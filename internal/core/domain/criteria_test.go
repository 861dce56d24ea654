package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProperties_LagosPriceLow(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.City = "lagos"
	criteria.Sort = SortPriceLow

	got := FilterProperties(testCatalogProperties(), criteria)

	assert.Equal(t, []int64{50000, 60000, 80000, 90000, 120000}, prices(got))
}

func TestFilterProperties_PriceHighAndBedrooms(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.City = "lagos"

	criteria.Sort = SortPriceHigh
	assert.Equal(t, []int64{120000, 90000, 80000, 60000, 50000}, prices(FilterProperties(lagosProperties(), criteria)))

	criteria.Sort = SortBedrooms
	// у vi-loft и lekki-garden по 2 спальни: сохраняется порядок каталога
	assert.Equal(t,
		[]string{"banana-island-villa", "lekki-penthouse", "vi-loft", "lekki-garden", "ikoyi-studio"},
		slugs(FilterProperties(lagosProperties(), criteria)))
}

func TestFilterProperties_FeaturedFirstIsStable(t *testing.T) {
	got := FilterProperties(testCatalogProperties(), DefaultCriteria())

	assert.Equal(t, []string{
		"vi-loft", "lekki-penthouse", "maitama-suite",
		"ikoyi-studio", "banana-island-villa", "lekki-garden", "asokoro-duplex",
	}, slugs(got))
}

func TestFilterProperties_SearchIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"lekki", "LEKKI", "  Lekki "} {
		criteria := DefaultCriteria()
		criteria.Search = q

		got := FilterProperties(testCatalogProperties(), criteria.Normalized())

		assert.ElementsMatch(t, []string{"lekki-penthouse", "lekki-garden"}, slugs(got), "query %q", q)
	}
}

func TestFilterProperties_AllClausesHold(t *testing.T) {
	criteria := FilterCriteria{
		City:         "lagos",
		Category:     "apartment",
		PriceFloor:   55000,
		PriceCeiling: 100000,
		MinBedrooms:  2,
		Sort:         SortFeatured,
	}
	all := testCatalogProperties()

	got := FilterProperties(all, criteria)

	require.Equal(t, []string{"vi-loft", "lekki-garden"}, slugs(got))
	for _, p := range all {
		included := false
		for _, g := range got {
			if g.ID == p.ID {
				included = true
			}
		}
		assert.Equal(t, criteria.Matches(p), included, p.Slug)
	}
}

func TestFilterProperties_Idempotent(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.City = "lagos"
	criteria.Sort = SortPriceLow

	once := FilterProperties(testCatalogProperties(), criteria)
	twice := FilterProperties(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterProperties_DoesNotMutateInput(t *testing.T) {
	input := lagosProperties()
	before := slugs(input)

	criteria := DefaultCriteria()
	criteria.Sort = SortPriceHigh
	_ = FilterProperties(input, criteria)

	assert.Equal(t, before, slugs(input))
}

func TestFilterProperties_NoMatchIsEmpty(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.Search = "kano"

	got := FilterProperties(testCatalogProperties(), criteria)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterProperties_PriceBoundsAreInclusive(t *testing.T) {
	criteria := DefaultCriteria()
	criteria.PriceFloor = 60000
	criteria.PriceCeiling = 90000
	criteria.Sort = SortPriceLow

	got := FilterProperties(lagosProperties(), criteria)

	assert.Equal(t, []int64{60000, 80000, 90000}, prices(got))
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortMode("price-low"))
	assert.Equal(t, SortPriceHigh, ParseSortMode(" PRICE-HIGH "))
	assert.Equal(t, SortBedrooms, ParseSortMode("bedrooms"))
	assert.Equal(t, SortFeatured, ParseSortMode(""))
	assert.Equal(t, SortFeatured, ParseSortMode("cheapest"))
}

func TestFilterCriteria_NormalizedAndKey(t *testing.T) {
	c := FilterCriteria{Search: "  Lekki ", PriceFloor: -5, MinBedrooms: -1, PriceCeiling: 100, Sort: "bogus"}.Normalized()

	assert.Equal(t, AllOption, c.City)
	assert.Equal(t, AllOption, c.Category)
	assert.Equal(t, int64(0), c.PriceFloor)
	assert.Equal(t, 0, c.MinBedrooms)
	assert.Equal(t, "Lekki", c.Search)
	assert.Equal(t, SortFeatured, c.Sort)

	other := c
	other.Search = "lekki"
	assert.Equal(t, c.Key(), other.Key())

	other.Sort = SortPriceLow
	assert.NotEqual(t, c.Key(), other.Key())
}

func TestFilterCriteria_KeySeparatorInUserText(t *testing.T) {
	bySearch := FilterCriteria{Search: "|price=0-500000|beds=0|q="}.Normalized()
	byCategory := FilterCriteria{Category: "all|price=0-500000|beds=0|q="}.Normalized()

	assert.NotEqual(t, bySearch.Key(), byCategory.Key())

	byCity := FilterCriteria{City: `lagos"|cat="all`}.Normalized()
	assert.NotEqual(t, byCity.Key(), FilterCriteria{City: "lagos"}.Normalized().Key())
}

func TestFilterCriteria_HasActiveFilters(t *testing.T) {
	assert.False(t, DefaultCriteria().HasActiveFilters())

	c := DefaultCriteria()
	c.City = "abuja"
	assert.True(t, c.HasActiveFilters())

	c = DefaultCriteria()
	c.Search = "lekki"
	assert.True(t, c.HasActiveFilters())

	c = DefaultCriteria()
	c.MinBedrooms = 2
	assert.True(t, c.HasActiveFilters())

	// категория и цена не включают кнопку "Clear filters"
	c = DefaultCriteria()
	c.Category = "villa"
	c.PriceCeiling = 100000
	assert.False(t, c.HasActiveFilters())
}
