package usecases_port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.PropertyDetailsView, error)
}
