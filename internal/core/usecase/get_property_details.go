package usecase

import (
	"context"
	"fmt"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

const similarPropertiesLimit = 3

type GetPropertyDetailsUseCase struct {
	catalog    *domain.Catalog
	calculator *BookingCalculator
}

func NewGetPropertyDetailsUseCase(catalog *domain.Catalog, calculator *BookingCalculator) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog, calculator: calculator}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, slug string) (*domain.PropertyDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetPropertyDetails",
		"slug":     slug,
	})

	property, err := uc.catalog.FindBySlug(slug)
	if err != nil {
		logger.Warn("Property not found", nil)
		return nil, err
	}

	// черновик по умолчанию: даты не выбраны, 2 гостя
	quote, err := uc.calculator.Quote(property, domain.BookingRequest{Guests: domain.DefaultGuests})
	if err != nil {
		return nil, fmt.Errorf("failed to build default quote: %w", err)
	}

	guestOptions := make([]int, property.MaxGuests)
	for i := range guestOptions {
		guestOptions[i] = i + 1
	}

	view := &domain.PropertyDetailsView{
		Property:     property,
		NightlyPrice: uc.calculator.FormatPrice(property.Price),
		SEO: domain.SEO{
			Title:       fmt.Sprintf("%s | %s", property.Name, uc.catalog.Brand),
			Description: property.Description,
			Image:       property.CoverImage(),
		},
		GuestOptions: guestOptions,
		Similar:      uc.catalog.Similar(property, similarPropertiesLimit),
		DefaultQuote: quote,
	}

	logger.Debug("Property details assembled", port.Fields{"similar_count": len(view.Similar)})
	return view, nil
}
