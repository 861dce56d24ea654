package usecase

import (
	"context"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

type QuoteBookingUseCase struct {
	catalog    *domain.Catalog
	calculator *BookingCalculator
}

func NewQuoteBookingUseCase(catalog *domain.Catalog, calculator *BookingCalculator) *QuoteBookingUseCase {
	return &QuoteBookingUseCase{catalog: catalog, calculator: calculator}
}

func (uc *QuoteBookingUseCase) Execute(ctx context.Context, slug string, req domain.BookingRequest) (*domain.BookingQuote, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "QuoteBooking",
		"slug":     slug,
	})

	property, err := uc.catalog.FindBySlug(slug)
	if err != nil {
		logger.Warn("Property not found", nil)
		return nil, err
	}

	quote, err := uc.calculator.Quote(property, req)
	if err != nil {
		logger.Warn("Invalid booking request", port.Fields{"error": err.Error()})
		return nil, err
	}

	logger.Debug("Quote calculated", port.Fields{
		"nights": quote.Draft.Nights,
		"total":  quote.Total.Amount,
	})
	return &quote, nil
}
