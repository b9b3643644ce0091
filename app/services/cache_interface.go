package services

import (
	"context"
)

// CacheStats thống kê cache.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService interface cho cache các facet value lists. Keys dạng
// "facet:<field>", values là danh sách distinct values đã sort.
type ICacheService interface {
	// Get lấy values từ cache.
	Get(ctx context.Context, key string) ([]string, bool, error)

	// Set lưu values vào cache.
	Set(ctx context.Context, key string, values []string) error

	// Delete xóa một key.
	Delete(ctx context.Context, key string) error

	// Clear xóa toàn bộ cache.
	Clear(ctx context.Context) error

	// GetStats thống kê hit/miss.
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close đóng kết nối (nếu cần).
	Close() error
}
