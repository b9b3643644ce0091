package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/property-search/app/requests"
	"github.com/property-search/app/responses"
	"github.com/property-search/internal/dedup"
	"github.com/property-search/internal/query"
	"github.com/property-search/internal/store"
	"github.com/property-search/internal/view"
)

// PropertyService orchestrate search và duplicate classification trên
// record store. Stateless: mọi predicate/record set thuộc về một request.
type PropertyService struct {
	store        *store.PropertyStore
	logger       *zap.Logger
	startTime    time.Time
	defaultLimit int
	maxLimit     int
}

// NewPropertyService tạo mới PropertyService.
func NewPropertyService(st *store.PropertyStore, defaultLimit, maxLimit int, logger *zap.Logger) *PropertyService {
	if defaultLimit <= 0 {
		defaultLimit = 200
	}
	if maxLimit <= 0 {
		maxLimit = 1000
	}
	return &PropertyService{
		store:        st,
		logger:       logger,
		startTime:    time.Now(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// GetStartTime thời điểm service khởi động (cho health check).
func (ps *PropertyService) GetStartTime() time.Time {
	return ps.startTime
}

// Search build predicate từ params, query store, render theo format.
func (ps *PropertyService) Search(ctx context.Context, params requests.SearchParams) (interface{}, error) {
	predicate, err := query.BuildPredicate(params.Query, fieldArgs(params))
	if err != nil {
		return nil, err
	}

	records, err := ps.store.Find(ctx, predicate, store.FindOptions{
		Sort:   params.Sort,
		Limit:  ps.clampLimit(params.Limit),
		Offset: maxInt(params.Offset, 0),
	})
	if err != nil {
		return nil, err
	}

	ps.logger.Debug("Search executed",
		zap.Int("groups", len(predicate.All)),
		zap.Int("rows", len(records)))

	return view.Project(records, view.Kind(params.Format))
}

// Duplicates classify filtered record set theo mode. Dedup chạy trên
// toàn bộ filtered set, không áp limit/offset.
func (ps *PropertyService) Duplicates(ctx context.Context, params requests.DuplicateParams) (*responses.DuplicateResponse, error) {
	mode := dedup.Mode(params.Mode)
	if params.Mode == "" {
		mode = dedup.ModeAll
	}

	predicate, err := query.BuildPredicate(params.Query, fieldArgs(params.SearchParams))
	if err != nil {
		return nil, err
	}

	records, err := ps.store.Find(ctx, predicate, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	result, summary, err := dedup.Classify(records, mode)
	if err != nil {
		return nil, err
	}

	items := make([]view.ListItem, 0, len(result))
	for _, r := range result {
		items = append(items, view.ListItem{
			PropertyRecord:   r,
			FormattedAddress: view.FormattedAddress(r),
		})
	}

	return &responses.DuplicateResponse{
		Mode:    string(mode),
		Summary: summary,
		Count:   len(items),
		Items:   items,
	}, nil
}

func (ps *PropertyService) clampLimit(limit int) int {
	if limit <= 0 {
		limit = ps.defaultLimit
	}
	if limit > ps.maxLimit {
		limit = ps.maxLimit
	}
	return limit
}

func fieldArgs(p requests.SearchParams) query.FieldArgs {
	return query.FieldArgs{
		Address:   p.Address,
		City:      p.City,
		Agent:     p.Agent,
		Broker:    p.Broker,
		Province:  p.Province,
		State:     p.State,
		Postal:    p.Postal,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
