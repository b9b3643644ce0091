package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// MemoryCacheService in-memory LRU cache (L1).
type MemoryCacheService struct {
	cache  *lru.Cache[string, []string]
	logger *zap.Logger

	hits   int64
	misses int64
}

// NewMemoryCacheService tạo mới LRU cache với size cho trước.
func NewMemoryCacheService(size int, logger *zap.Logger) (*MemoryCacheService, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &MemoryCacheService{
		cache:  cache,
		logger: logger,
	}, nil
}

// Get lấy values từ LRU.
func (mcs *MemoryCacheService) Get(ctx context.Context, key string) ([]string, bool, error) {
	if values, found := mcs.cache.Get(key); found {
		atomic.AddInt64(&mcs.hits, 1)
		mcs.logger.Debug("L1 cache hit", zap.String("key", key))
		return values, true, nil
	}
	atomic.AddInt64(&mcs.misses, 1)
	return nil, false, nil
}

// Set lưu values vào LRU.
func (mcs *MemoryCacheService) Set(ctx context.Context, key string, values []string) error {
	mcs.cache.Add(key, values)
	return nil
}

// Delete xóa key khỏi LRU.
func (mcs *MemoryCacheService) Delete(ctx context.Context, key string) error {
	mcs.cache.Remove(key)
	return nil
}

// Clear xóa toàn bộ cache.
func (mcs *MemoryCacheService) Clear(ctx context.Context) error {
	mcs.cache.Purge()
	return nil
}

// GetStats thống kê hit/miss.
func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&mcs.hits)
	misses := atomic.LoadInt64(&mcs.misses)
	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Close no-op cho in-memory cache.
func (mcs *MemoryCacheService) Close() error {
	return nil
}
