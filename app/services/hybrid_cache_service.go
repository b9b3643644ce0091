package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// HybridCacheService kết hợp LRU in-memory (L1) + Redis (L2). Redis là
// optional: nil redisCache thì chỉ còn L1.
type HybridCacheService struct {
	memoryCache *MemoryCacheService
	redisCache  *RedisCacheService
	logger      *zap.Logger
}

// NewHybridCacheService tạo mới hybrid cache service.
func NewHybridCacheService(memoryCache *MemoryCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		memoryCache: memoryCache,
		redisCache:  redisCache,
		logger:      logger,
	}
}

// Get thử L1 trước, L2 sau; L2 hit thì sync ngược lên L1.
func (hcs *HybridCacheService) Get(ctx context.Context, key string) ([]string, bool, error) {
	values, found, err := hcs.memoryCache.Get(ctx, key)
	if err == nil && found {
		return values, true, nil
	}

	if hcs.redisCache == nil {
		return nil, false, nil
	}

	values, found, err = hcs.redisCache.Get(ctx, key)
	if err != nil {
		hcs.logger.Warn("Redis cache error, treating as miss", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	if err := hcs.memoryCache.Set(ctx, key, values); err != nil {
		hcs.logger.Warn("Sync Redis->L1 failed", zap.Error(err), zap.String("key", key))
	}
	return values, true, nil
}

// Set lưu vào cả hai tầng; Redis ghi bất đồng bộ.
func (hcs *HybridCacheService) Set(ctx context.Context, key string, values []string) error {
	if err := hcs.memoryCache.Set(ctx, key, values); err != nil {
		return err
	}

	if hcs.redisCache != nil {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := hcs.redisCache.Set(bgCtx, key, values); err != nil {
				hcs.logger.Warn("Redis set failed", zap.Error(err), zap.String("key", key))
			}
		}()
	}
	return nil
}

// Delete xóa key khỏi cả hai tầng.
func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	if err := hcs.memoryCache.Delete(ctx, key); err != nil {
		return err
	}
	if hcs.redisCache != nil {
		return hcs.redisCache.Delete(ctx, key)
	}
	return nil
}

// Clear xóa toàn bộ cả hai tầng.
func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	if err := hcs.memoryCache.Clear(ctx); err != nil {
		return err
	}
	if hcs.redisCache != nil {
		return hcs.redisCache.Clear(ctx)
	}
	return nil
}

// GetStats gộp thống kê của L1; số items lấy từ L1.
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	stats, err := hcs.memoryCache.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if hcs.redisCache != nil {
		redisStats, err := hcs.redisCache.GetStats(ctx)
		if err == nil {
			stats.TotalHits += redisStats.TotalHits
			stats.TotalMiss += redisStats.TotalMiss
			if total := stats.TotalHits + stats.TotalMiss; total > 0 {
				stats.HitRate = float64(stats.TotalHits) / float64(total)
			}
		}
	}
	return stats, nil
}

// Close đóng các tầng cache.
func (hcs *HybridCacheService) Close() error {
	if hcs.redisCache != nil {
		return hcs.redisCache.Close()
	}
	return nil
}
