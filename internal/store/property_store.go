package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/property-search/app/models"
	"github.com/property-search/internal/query"
)

// ErrUnknownField facet field nằm ngoài allow-list (client error).
var ErrUnknownField = errors.New("unknown field")

// Sort orders hỗ trợ bởi Find.
const (
	SortAddress   = ""
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// FindOptions tùy chọn retrieval. Limit <= 0 nghĩa là không giới hạn
// (dedup cần toàn bộ filtered set).
type FindOptions struct {
	Sort   string
	Limit  int
	Offset int
}

// PropertyStore record store trên một MongoDB collection. Mọi read đi
// qua aggregation pipeline: match bằng compiled predicate, project về
// tên cột canonical, sort, skip/limit.
type PropertyStore struct {
	collection *mongo.Collection
	strategy   RegionStrategy
	logger     *zap.Logger
}

// NewPropertyStore tạo mới PropertyStore. Gọi Resolve trước khi dùng.
func NewPropertyStore(db *mongo.Database, collection string, logger *zap.Logger) *PropertyStore {
	return &PropertyStore{
		collection: db.Collection(collection),
		strategy:   RegionProvince,
		logger:     logger,
	}
}

// Resolve schema introspection một lần lúc startup: cột lịch sử nào
// ("province" / "state") đang giữ dữ liệu region.
func (ps *PropertyStore) Resolve(ctx context.Context) error {
	hasProvince, err := ps.hasColumn(ctx, "province")
	if err != nil {
		return fmt.Errorf("introspect province column: %w", err)
	}
	hasState, err := ps.hasColumn(ctx, "state")
	if err != nil {
		return fmt.Errorf("introspect state column: %w", err)
	}

	switch {
	case hasProvince && hasState:
		ps.strategy = RegionCoalesce
	case hasState:
		ps.strategy = RegionState
	default:
		ps.strategy = RegionProvince
	}
	ps.logger.Info("Resolved region column strategy",
		zap.String("strategy", ps.strategy.String()))
	return nil
}

// Strategy trả về strategy đã resolve (immutable sau startup).
func (ps *PropertyStore) Strategy() RegionStrategy {
	return ps.strategy
}

func (ps *PropertyStore) hasColumn(ctx context.Context, name string) (bool, error) {
	n, err := ps.collection.CountDocuments(ctx,
		bson.M{name: bson.M{"$exists": true}},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Find chạy predicate trên collection và trả về records đã project về
// canonical field names, tọa độ render thành text.
func (ps *PropertyStore) Find(ctx context.Context, p *query.Predicate, opts FindOptions) ([]models.PropertyRecord, error) {
	pipeline := mongo.Pipeline{}

	filter := Compile(p, ps.strategy)
	if len(filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter}})
	}

	pipeline = append(pipeline, ps.canonicalStages()...)
	pipeline = append(pipeline, sortStages(opts.Sort)...)
	if opts.Offset > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: int64(opts.Offset)}})
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(opts.Limit)}})
	}

	cursor, err := ps.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("property query failed: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.PropertyRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode property records: %w", err)
	}
	return records, nil
}

// canonicalStages đổi tên cột lịch sử về canonical và ép mọi field về
// string ("" cho null/absent) để tầng trên không phải đụng tên nội bộ.
func (ps *PropertyStore) canonicalStages() mongo.Pipeline {
	asText := func(col string) bson.M {
		return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$" + col, ""}}}
	}
	return mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{
			"address":   asText("address"),
			"city":      asText("city"),
			"province":  ps.strategy.columnExpr(),
			"postcode":  postalExpr(),
			"agent":     asText("agent"),
			"broker":    asText("broker"),
			"price":     asText("price"),
			"latitude":  asText("latitude"),
			"longitude": asText("longitude"),
		}}},
		bson.D{{Key: "$unset", Value: bson.A{"state", "postal"}}},
	}
}

// sortStages address ascending mặc định cho deterministic output; price
// sort parse "$500,000" thành số ngay trong pipeline, lỗi/null về 0.
func sortStages(sort string) mongo.Pipeline {
	switch sort {
	case SortPriceAsc, SortPriceDesc:
		direction := 1
		if sort == SortPriceDesc {
			direction = -1
		}
		stripped := bson.M{"$replaceAll": bson.M{
			"input": bson.M{"$replaceAll": bson.M{
				"input":       bson.M{"$toString": bson.M{"$ifNull": bson.A{"$price", ""}}},
				// "$" một mình sẽ bị hiểu là field path trong expression
				// context, phải bọc $literal.
				"find":        bson.M{"$literal": "$"},
				"replacement": "",
			}},
			"find":        ",",
			"replacement": "",
		}}
		return mongo.Pipeline{
			bson.D{{Key: "$addFields", Value: bson.M{
				"price_value": bson.M{"$convert": bson.M{
					"input":   stripped,
					"to":      "double",
					"onError": 0,
					"onNull":  0,
				}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "price_value", Value: direction},
				{Key: "address", Value: 1},
			}}},
			bson.D{{Key: "$unset", Value: bson.A{"price_value"}}},
		}
	default:
		return mongo.Pipeline{
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "address", Value: 1},
				{Key: "_id", Value: 1},
			}}},
		}
	}
}

// facetColumns allow-list cho Distinct: facet name → canonical expr.
var facetColumns = map[string]func(ps *PropertyStore) bson.M{
	"city":     func(*PropertyStore) bson.M { return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$city", ""}}} },
	"agent":    func(*PropertyStore) bson.M { return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$agent", ""}}} },
	"broker":   func(*PropertyStore) bson.M { return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$broker", ""}}} },
	"province": func(ps *PropertyStore) bson.M { return ps.strategy.columnExpr() },
	"postal":   func(*PropertyStore) bson.M { return postalExpr() },
}

// Distinct các giá trị phân biệt, không rỗng, sorted, của một facet
// field. Field ngoài allow-list là client error.
func (ps *PropertyStore) Distinct(ctx context.Context, field string) ([]string, error) {
	expr, ok := facetColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{"_id": expr(ps)}}},
		bson.D{{Key: "$match", Value: bson.M{"_id": bson.M{"$ne": ""}}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := ps.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("distinct %s failed: %w", field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Value string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode distinct %s: %w", field, err)
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Value)
	}
	return values, nil
}
