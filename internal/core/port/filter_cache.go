package port

import "shortlet-service/internal/core/domain"

// FilterCachePort мемоизирует результаты фильтрации по ключу критериев
type FilterCachePort interface {
	Get(key string) ([]domain.Property, bool)
	Set(key string, properties []domain.Property)
}
