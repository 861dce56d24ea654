package usecases_port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

type GetHomeUseCase interface {
	Execute(ctx context.Context) (*domain.HomeView, error)
}
