package usecase

import (
	"context"
	"time"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"

	"github.com/google/uuid"
)

type BuildBookingLinkUseCase struct {
	catalog    *domain.Catalog
	calculator *BookingCalculator
	publisher  port.LeadPublisherPort // nil, если брокер выключен
}

func NewBuildBookingLinkUseCase(catalog *domain.Catalog, calculator *BookingCalculator, publisher port.LeadPublisherPort) *BuildBookingLinkUseCase {
	return &BuildBookingLinkUseCase{
		catalog:    catalog,
		calculator: calculator,
		publisher:  publisher,
	}
}

func (uc *BuildBookingLinkUseCase) Execute(ctx context.Context, slug string, req domain.BookingRequest) (*domain.BookingHandoff, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "BuildBookingLink",
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

	message := domain.BookingMessage(uc.catalog.Brand, property, quote.Draft, quote.Total.Display)
	handoff := &domain.BookingHandoff{
		Quote:   quote,
		Message: message,
		Link:    domain.WhatsAppLink(uc.catalog.Contact.WhatsApp, message),
	}

	if uc.publisher != nil {
		inquiry := domain.BookingInquiry{
			ID:           uuid.NewString(),
			PropertyID:   property.ID,
			PropertySlug: property.Slug,
			PropertyName: property.Name,
			CheckIn:      quote.Draft.CheckIn,
			CheckOut:     quote.Draft.CheckOut,
			Guests:       quote.Draft.Guests,
			Nights:       quote.Draft.Nights,
			Total:        quote.Total.Amount,
			CreatedAt:    time.Now().UTC(),
		}
		// ошибка публикации не влияет на ответ: ссылка уже готова
		if err := uc.publisher.PublishBookingInquiry(ctx, inquiry); err != nil {
			logger.Error("Failed to publish booking inquiry", err, port.Fields{"inquiry_id": inquiry.ID})
		}
	}

	logger.Info("Booking link built", port.Fields{
		"nights": quote.Draft.Nights,
		"guests": quote.Draft.Guests,
		"total":  quote.Total.Amount,
	})
	return handoff, nil
}
