package usecase

import (
	"context"
	"slices"

	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	catalog *domain.Catalog
	cache   port.FilterCachePort // может быть nil
}

func NewFindPropertiesUseCase(catalog *domain.Catalog, cache port.FilterCachePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{catalog: catalog, cache: cache}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.ListingResult, error) {
	criteria = criteria.Normalized()
	key := criteria.Key()

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"criteria": key,
	})
	ucLogger.Debug("Use case started", nil)

	properties, cached := uc.lookup(key)
	if !cached {
		properties = domain.FilterProperties(uc.catalog.Properties, criteria)
		if uc.cache != nil {
			uc.cache.Set(key, properties)
		}
	}

	result := &domain.ListingResult{
		Criteria: criteria,
		// копия, чтобы вызывающий не испортил закэшированный срез
		Properties:       slices.Clone(properties),
		HasActiveFilters: criteria.HasActiveFilters(),
	}
	if result.IsEmpty() {
		result.Properties = []domain.Property{}
		result.FallbackContactLink = domain.WhatsAppLink(uc.catalog.Contact.WhatsApp, "")
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found": len(result.Properties),
		"cache_hit":   cached,
	})
	return result, nil
}

func (uc *FindPropertiesUseCase) lookup(key string) ([]domain.Property, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.Get(key)
}
