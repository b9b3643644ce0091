package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRankByMatch(t *testing.T) {
	values := []string{"Toronto", "Thornhill", "Ottawa", "Tottenham"}

	ranked := rankByMatch(values, "toronto")
	require.Len(t, ranked, 4)
	assert.Equal(t, "Toronto", ranked[0], "exact match phải đứng đầu")

	// Không mất phần tử nào, chỉ đổi thứ tự.
	seen := make(map[string]bool)
	for _, v := range ranked {
		seen[v] = true
	}
	for _, v := range values {
		assert.True(t, seen[v])
	}
}

func TestRankByMatch_CaseInsensitive(t *testing.T) {
	ranked := rankByMatch([]string{"OTTAWA", "Toronto"}, "ottawa")
	assert.Equal(t, "OTTAWA", ranked[0])
}

func TestRankByMatch_StableTieBreak(t *testing.T) {
	// Hai lần rank cho cùng thứ tự.
	values := []string{"Barrie", "Brandon", "Burnaby"}
	first := rankByMatch(values, "bar")
	second := rankByMatch(values, "bar")
	assert.Equal(t, first, second)
}

func TestMemoryCacheService(t *testing.T) {
	logger := zap.NewNop()
	cache, err := NewMemoryCacheService(8, logger)
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "facet:city")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "facet:city", []string{"Toronto", "Ottawa"}))

	values, found, err := cache.Get(ctx, "facet:city")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Toronto", "Ottawa"}, values)

	stats, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMiss)
	assert.Equal(t, 0.5, stats.HitRate)

	require.NoError(t, cache.Delete(ctx, "facet:city"))
	_, found, _ = cache.Get(ctx, "facet:city")
	assert.False(t, found)
}

func TestHybridCache_MemoryOnly(t *testing.T) {
	logger := zap.NewNop()
	memory, err := NewMemoryCacheService(8, logger)
	require.NoError(t, err)

	// Redis nil: hybrid chạy với L1 một mình.
	hybrid := NewHybridCacheService(memory, nil, logger)
	ctx := context.Background()

	require.NoError(t, hybrid.Set(ctx, "facet:agent", []string{"Ann"}))
	values, found, err := hybrid.Get(ctx, "facet:agent")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Ann"}, values)

	require.NoError(t, hybrid.Clear(ctx))
	_, found, _ = hybrid.Get(ctx, "facet:agent")
	assert.False(t, found)
	require.NoError(t, hybrid.Close())
}
