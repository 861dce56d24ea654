package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(Catalog{
		Brand:      "CB LUXE STAYS",
		Properties: testCatalogProperties(),
		Cities: []City{
			{ID: "lagos", Name: "Lagos", Count: 99},
			{ID: "abuja", Name: "Abuja"},
			{ID: "kano", Name: "Kano", Count: 3},
		},
		Contact: Contact{WhatsApp: "2348030001122"},
	})
	require.NoError(t, err)
	return c
}

func TestNewCatalog_DerivesCityCounts(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, []City{
		{ID: "lagos", Name: "Lagos", Count: 5},
		{ID: "abuja", Name: "Abuja", Count: 2},
		{ID: "kano", Name: "Kano", Count: 0},
	}, c.Cities)
}

func TestNewCatalog_RejectsInvalidData(t *testing.T) {
	dupSlug := testCatalogProperties()
	dupSlug[1].Slug = dupSlug[0].Slug

	dupID := testCatalogProperties()
	dupID[1].ID = dupID[0].ID

	noImages := testCatalogProperties()
	noImages[0].Images = nil

	noGuests := testCatalogProperties()
	noGuests[0].MaxGuests = 0

	for name, props := range map[string][]Property{
		"duplicate slug": dupSlug,
		"duplicate id":   dupID,
		"no images":      noImages,
		"zero guests":    noGuests,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalog(Catalog{Properties: props})
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalog_FindBySlug(t *testing.T) {
	c := newTestCatalog(t)

	p, err := c.FindBySlug("maitama-suite")
	require.NoError(t, err)
	assert.Equal(t, "6", p.ID)

	_, err = c.FindBySlug("does-not-exist")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCatalog_Similar(t *testing.T) {
	c := newTestCatalog(t)
	self, err := c.FindBySlug("vi-loft")
	require.NoError(t, err)

	similar := c.Similar(self, 3)

	assert.Equal(t, []string{"ikoyi-studio", "lekki-penthouse", "banana-island-villa"}, slugs(similar))

	abuja, err := c.FindBySlug("asokoro-duplex")
	require.NoError(t, err)
	assert.Equal(t, []string{"maitama-suite"}, slugs(c.Similar(abuja, 3)))
}

func TestCatalog_FeaturedCategoriesAndPriceRange(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, []string{"vi-loft", "lekki-penthouse", "maitama-suite"}, slugs(c.Featured()))
	assert.Equal(t, []string{"apartment", "penthouse", "villa", "duplex"}, c.Categories())

	lo, hi := c.PriceRange()
	assert.Equal(t, int64(50000), lo)
	assert.Equal(t, int64(150000), hi)

	empty, err := NewCatalog(Catalog{})
	require.NoError(t, err)
	lo, hi = empty.PriceRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Empty(t, empty.Featured())
}
