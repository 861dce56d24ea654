package usecase

import (
	"context"
	"testing"

	"shortlet-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHome(t *testing.T) {
	uc := NewGetHomeUseCase(newTestCatalog(t))

	home, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CB LUXE STAYS", home.Brand)
	assert.Len(t, home.Featured, 3)
	assert.Equal(t, 5, home.Cities[0].Count)
	assert.Equal(t, 1, home.Cities[1].Count)
	assert.Contains(t, home.WhatsAppLink, "https://wa.me/2348030001122?text=Hello%20CB%20LUXE%20STAYS")
}

func TestGetPropertyDetails(t *testing.T) {
	uc := NewGetPropertyDetailsUseCase(newTestCatalog(t), NewBookingCalculator(DefaultServiceFee, plainFormatter{}))

	view, err := uc.Execute(context.Background(), "ikoyi-studio")
	require.NoError(t, err)

	assert.Equal(t, "ikoyi-studio | CB LUXE STAYS", view.SEO.Title)
	assert.Equal(t, "/images/ikoyi-studio-1.jpg", view.SEO.Image)
	assert.Equal(t, []int{1, 2}, view.GuestOptions)
	assert.Equal(t, "NGN 50000", view.NightlyPrice.Display)

	// тот же город, без самого объекта, не больше трех в порядке каталога
	var similar []string
	for _, p := range view.Similar {
		similar = append(similar, p.Slug)
	}
	assert.Equal(t, []string{"lekki-penthouse", "vi-loft", "banana-villa"}, similar)

	assert.Equal(t, 2, view.DefaultQuote.Draft.Guests)
	assert.Equal(t, 1, view.DefaultQuote.Draft.Nights)
	assert.Equal(t, int64(125000), view.DefaultQuote.Total.Amount)
}

func TestGetPropertyDetails_DefaultGuestsClamped(t *testing.T) {
	c := newTestCatalog(t)
	single := property("9", "tiny", "abuja", "apartment", 10000, 0, 1, false)
	c, err := domain.NewCatalog(domain.Catalog{Brand: c.Brand, Properties: append(c.Properties, single)})
	require.NoError(t, err)

	view, err := NewGetPropertyDetailsUseCase(c, NewBookingCalculator(0, plainFormatter{})).Execute(context.Background(), "tiny")
	require.NoError(t, err)
	assert.Equal(t, 1, view.DefaultQuote.Draft.Guests)
	assert.Equal(t, []int{1}, view.GuestOptions)
}

func TestGetPropertyDetails_NotFound(t *testing.T) {
	uc := NewGetPropertyDetailsUseCase(newTestCatalog(t), NewBookingCalculator(DefaultServiceFee, plainFormatter{}))

	_, err := uc.Execute(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestGetFilterOptions(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(newTestCatalog(t))

	options, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"penthouse", "apartment", "villa"}, options.Categories)
	assert.Equal(t, int64(50000), options.PriceMin)
	assert.Equal(t, int64(100000), options.PriceMax)
	assert.Equal(t, domain.SortModes, options.SortModes)
	assert.Equal(t, domain.DefaultCriteria(), options.Defaults)
	assert.Len(t, options.Cities, 2)
}
