package port

import (
	"context"
	"shortlet-service/internal/core/domain"
)

// CatalogSourcePort загружает каталог один раз при старте приложения
type CatalogSourcePort interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}
