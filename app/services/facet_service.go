package services

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"

	"github.com/property-search/app/requests"
	"github.com/property-search/app/responses"
	"github.com/property-search/internal/store"
)

// FacetService phục vụ distinct values của các filter field cho UI,
// đi qua hybrid cache và hỗ trợ fuzzy ranking theo match param.
type FacetService struct {
	store  *store.PropertyStore
	cache  ICacheService
	logger *zap.Logger
}

// NewFacetService tạo mới FacetService.
func NewFacetService(st *store.PropertyStore, cache ICacheService, logger *zap.Logger) *FacetService {
	return &FacetService{
		store:  st,
		cache:  cache,
		logger: logger,
	}
}

// Distinct trả về distinct values của field, cached. Match không rỗng
// thì rank theo Jaro-Winkler, tie-break bằng Levenshtein distance.
func (fs *FacetService) Distinct(ctx context.Context, params requests.FacetParams) (*responses.FacetResponse, error) {
	values, err := fs.load(ctx, params.Field)
	if err != nil {
		return nil, err
	}

	if match := strings.TrimSpace(params.Match); match != "" {
		values = rankByMatch(values, match)
	}
	if params.Limit > 0 && len(values) > params.Limit {
		values = values[:params.Limit]
	}

	return &responses.FacetResponse{
		Field:  params.Field,
		Values: values,
		Count:  len(values),
	}, nil
}

// InvalidateAll xóa cache facets (dùng sau khi reload dữ liệu).
func (fs *FacetService) InvalidateAll(ctx context.Context) error {
	return fs.cache.Clear(ctx)
}

// CacheStats thống kê cache cho status endpoint.
func (fs *FacetService) CacheStats(ctx context.Context) (*CacheStats, error) {
	return fs.cache.GetStats(ctx)
}

func (fs *FacetService) load(ctx context.Context, field string) ([]string, error) {
	cacheKey := "facet:" + field

	if values, found, err := fs.cache.Get(ctx, cacheKey); err == nil && found {
		return values, nil
	}

	values, err := fs.store.Distinct(ctx, field)
	if err != nil {
		return nil, err
	}

	if err := fs.cache.Set(ctx, cacheKey, values); err != nil {
		fs.logger.Warn("Cache facet values failed", zap.Error(err), zap.String("field", field))
	}
	return values, nil
}

// rankByMatch sắp xếp values theo độ giống với match, giảm dần.
func rankByMatch(values []string, match string) []string {
	needle := strings.ToLower(match)

	type scored struct {
		value    string
		score    float64
		distance int
	}
	ranked := make([]scored, 0, len(values))
	for _, v := range values {
		candidate := strings.ToLower(v)
		ranked = append(ranked, scored{
			value:    v,
			score:    smetrics.JaroWinkler(needle, candidate, 0.7, 4),
			distance: levenshtein.ComputeDistance(needle, candidate),
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		if ranked[a].distance != ranked[b].distance {
			return ranked[a].distance < ranked[b].distance
		}
		return ranked[a].value < ranked[b].value
	})

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.value
	}
	return out
}
