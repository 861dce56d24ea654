package embedded

import (
	"context"
	"testing"

	"shortlet-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSource_LoadsEmbeddedCatalog(t *testing.T) {
	catalog, err := NewCatalogSource().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CB LUXE STAYS", catalog.Brand)
	assert.Len(t, catalog.Properties, 8)
	assert.Len(t, catalog.HeroSlides, 3)
	assert.Equal(t, "2348030001122", catalog.Contact.WhatsApp)

	counts := map[string]int{}
	for _, c := range catalog.Cities {
		counts[c.ID] = c.Count
	}
	assert.Equal(t, map[string]int{"lagos": 5, "abuja": 2, "port-harcourt": 1}, counts)

	p, err := catalog.FindBySlug("lekki-ocean-view-penthouse")
	require.NoError(t, err)
	assert.Equal(t, "Lekki Phase 1, Lagos", p.Location)
	assert.True(t, p.Featured)
}

func TestCatalogSource_LagosPriceLow(t *testing.T) {
	catalog, err := NewCatalogSource().Load(context.Background())
	require.NoError(t, err)

	criteria := domain.DefaultCriteria()
	criteria.City = "lagos"
	criteria.Sort = domain.SortPriceLow

	var got []int64
	for _, p := range domain.FilterProperties(catalog.Properties, criteria) {
		got = append(got, p.Price)
	}
	assert.Equal(t, []int64{50000, 60000, 80000, 90000, 120000}, got)
}

func TestCatalogSource_RejectsInvalidDocument(t *testing.T) {
	_, err := NewCatalogSourceFromBytes([]byte(`{"brand":"B","contact":{"whatsapp":"1"},"cities":[]}`)).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestCatalogSource_RejectsDuplicateSlugs(t *testing.T) {
	doc := `{
	  "brand": "B", "contact": {"whatsapp": "1"}, "cities": [],
	  "properties": [
	    {"id": "1", "slug": "a", "name": "A", "images": ["i"], "city": "x", "category": "y", "location": "", "bedrooms": 1, "max_guests": 1, "price": 1},
	    {"id": "2", "slug": "a", "name": "B", "images": ["i"], "city": "x", "category": "y", "location": "", "bedrooms": 1, "max_guests": 1, "price": 1}
	  ]
	}`
	_, err := NewCatalogSourceFromBytes([]byte(doc)).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}
