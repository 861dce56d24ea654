package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"shortlet-service/internal/core/domain"

	"github.com/stretchr/testify/require"
)

// plainFormatter - форматирование без локали, чтобы тесты usecase не зависели от x/text
type plainFormatter struct{}

func (plainFormatter) Format(amount int64) string {
	return fmt.Sprintf("NGN %d", amount)
}

type fakeFilterCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Property
	gets    int
	sets    int
}

func newFakeFilterCache() *fakeFilterCache {
	return &fakeFilterCache{entries: make(map[string][]domain.Property)}
}

func (c *fakeFilterCache) Get(key string) ([]domain.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	props, ok := c.entries[key]
	return props, ok
}

func (c *fakeFilterCache) Set(key string, properties []domain.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = properties
}

type fakeLeadPublisher struct {
	err       error
	published []domain.BookingInquiry
}

func (p *fakeLeadPublisher) PublishBookingInquiry(_ context.Context, inquiry domain.BookingInquiry) error {
	p.published = append(p.published, inquiry)
	return p.err
}

var errBrokerDown = errors.New("broker is down")

func property(id, slug, city, category string, price int64, bedrooms, maxGuests int, featured bool) domain.Property {
	return domain.Property{
		ID:          id,
		Slug:        slug,
		Name:        slug,
		Description: "About " + slug,
		Images:      []string{"/images/" + slug + "-1.jpg", "/images/" + slug + "-2.jpg"},
		City:        city,
		Category:    category,
		Location:    city,
		Bedrooms:    bedrooms,
		MaxGuests:   maxGuests,
		Price:       price,
		Featured:    featured,
	}
}

func newTestCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	penthouse := property("1", "lekki-penthouse", "lagos", "penthouse", 100000, 3, 6, true)
	penthouse.Name = "Lekki Ocean View Penthouse"
	penthouse.Location = "Lekki Phase 1, Lagos"

	c, err := domain.NewCatalog(domain.Catalog{
		Brand: "CB LUXE STAYS",
		Properties: []domain.Property{
			penthouse,
			property("2", "ikoyi-studio", "lagos", "apartment", 50000, 1, 2, false),
			property("3", "vi-loft", "lagos", "apartment", 80000, 2, 4, true),
			property("4", "banana-villa", "lagos", "villa", 90000, 4, 8, false),
			property("5", "lekki-garden", "lagos", "apartment", 60000, 2, 4, false),
			property("6", "maitama-suite", "abuja", "apartment", 85000, 2, 3, true),
		},
		Cities:     []domain.City{{ID: "lagos", Name: "Lagos"}, {ID: "abuja", Name: "Abuja"}},
		Contact:    domain.Contact{WhatsApp: "2348030001122", Email: "hello@cbluxestays.ng"},
		HeroSlides: []domain.HeroSlide{{Image: "/hero/1.jpg", Title: "Stay in style"}},
		SEO:        domain.SEO{Title: "CB LUXE STAYS"},
	})
	require.NoError(t, err)
	return c
}
