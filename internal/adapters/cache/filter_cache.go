package cache

import (
	"time"

	"shortlet-service/internal/core/domain"

	"github.com/karlseguin/ccache/v3"
)

type Config struct {
	MaxSize int64
	TTL     time.Duration
}

// FilterCache - локальный LRU-кэш результатов фильтрации на ccache
type FilterCache struct {
	cache *ccache.Cache[[]domain.Property]
	ttl   time.Duration
}

func NewFilterCache(cfg Config) *FilterCache {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &FilterCache{
		cache: ccache.New(ccache.Configure[[]domain.Property]().MaxSize(cfg.MaxSize)),
		ttl:   cfg.TTL,
	}
}

func (c *FilterCache) Get(key string) ([]domain.Property, bool) {
	item := c.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	return item.Value(), true
}

func (c *FilterCache) Set(key string, properties []domain.Property) {
	c.cache.Set(key, properties, c.ttl)
}

func (c *FilterCache) Stop() {
	c.cache.Stop()
}
