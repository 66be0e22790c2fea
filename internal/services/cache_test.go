package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheService_NilClientDisablesEverything(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	assert.False(t, cache.Enabled())
	assert.ErrorIs(t, cache.Set(ctx, "k", "v", time.Minute), ErrCacheDisabled)

	var out string
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), ErrCacheDisabled)
	assert.ErrorIs(t, cache.Delete(ctx, "k"), ErrCacheDisabled)
	assert.ErrorIs(t, cache.SetWithRetry(ctx, "k", "v", time.Minute, 3), ErrCacheDisabled)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "predictions:3:pos=MID", PredictionsCacheKey(3, "pos=MID"))
	assert.Equal(t, "lineup:3", LineupCacheKey(3))
	assert.Equal(t, "teams:12", TeamsCacheKey(12))
}
