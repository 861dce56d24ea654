package port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

// LeadPublisherPort отправляет заявку о бронировании во внешнюю систему (fire-and-forget)
type LeadPublisherPort interface {
	PublishBookingInquiry(ctx context.Context, inquiry domain.BookingInquiry) error
}
