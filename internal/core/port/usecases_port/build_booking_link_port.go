package usecases_port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

type BuildBookingLinkUseCase interface {
	Execute(ctx context.Context, slug string, req domain.BookingRequest) (*domain.BookingHandoff, error)
}
