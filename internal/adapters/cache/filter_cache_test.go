package cache

import (
	"testing"
	"time"

	"shortlet-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCache_SetGet(t *testing.T) {
	c := NewFilterCache(Config{})
	defer c.Stop()

	_, ok := c.Get("city=lagos")
	assert.False(t, ok)

	props := []domain.Property{{ID: "1", Slug: "vi-loft"}}
	c.Set("city=lagos", props)

	got, ok := c.Get("city=lagos")
	require.True(t, ok)
	assert.Equal(t, props, got)
}

func TestFilterCache_EmptyResultIsCached(t *testing.T) {
	c := NewFilterCache(Config{MaxSize: 10, TTL: time.Minute})
	defer c.Stop()

	c.Set("q=kano", []domain.Property{})

	got, ok := c.Get("q=kano")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestFilterCache_Expired(t *testing.T) {
	c := NewFilterCache(Config{MaxSize: 10, TTL: time.Millisecond})
	defer c.Stop()

	c.Set("city=abuja", []domain.Property{{ID: "6"}})
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("city=abuja")
	assert.False(t, ok)
}
