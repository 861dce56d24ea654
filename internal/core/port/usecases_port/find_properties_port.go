package usecases_port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.ListingResult, error)
}
