package usecase

import (
	"context"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
	"slices"
)

type GetFilterOptionsUseCase struct {
	catalog *domain.Catalog
}

func NewGetFilterOptionsUseCase(catalog *domain.Catalog) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{catalog: catalog}
}

// Execute собирает значения для селекторов фильтра. Каталог статичен, поэтому ошибок нет.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetFilterOptions"})

	lo, hi := uc.catalog.PriceRange()
	options := &domain.FilterOptions{
		Cities:     uc.catalog.Cities,
		Categories: uc.catalog.Categories(),
		SortModes:  slices.Clone(domain.SortModes),
		PriceMin:   lo,
		PriceMax:   hi,
		Defaults:   domain.DefaultCriteria(),
	}

	logger.Debug("Filter options assembled", port.Fields{
		"cities":     len(options.Cities),
		"categories": len(options.Categories),
	})
	return options, nil
}
