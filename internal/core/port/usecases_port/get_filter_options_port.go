package usecases_port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
