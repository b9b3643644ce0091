package store

import (
	"go.mongodb.org/mongo-driver/bson"
)

// RegionStrategy cho biết cột lịch sử nào đang giữ dữ liệu region.
// Resolve một lần lúc startup, immutable sau đó — đây là fact về schema,
// không phải business state, nên không re-evaluate per request.
type RegionStrategy int

const (
	// RegionProvince chỉ cột "province" tồn tại.
	RegionProvince RegionStrategy = iota
	// RegionState chỉ cột "state" tồn tại.
	RegionState
	// RegionCoalesce cả hai tồn tại; province được ưu tiên.
	RegionCoalesce
)

func (s RegionStrategy) String() string {
	switch s {
	case RegionState:
		return "state"
	case RegionCoalesce:
		return "coalesce(province,state)"
	default:
		return "province"
	}
}

// columnExpr aggregation expression đọc giá trị region theo strategy,
// null/absent thành "".
func (s RegionStrategy) columnExpr() bson.M {
	switch s {
	case RegionState:
		return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$state", ""}}}
	case RegionCoalesce:
		return bson.M{"$toString": bson.M{"$ifNull": bson.A{
			"$province", bson.M{"$ifNull": bson.A{"$state", ""}},
		}}}
	default:
		return bson.M{"$toString": bson.M{"$ifNull": bson.A{"$province", ""}}}
	}
}

// postalExpr đọc postal qua cả hai tên cột lịch sử, postcode ưu tiên.
// Không cần startup introspection riêng: coalesce vô điều kiện.
func postalExpr() bson.M {
	return bson.M{"$toString": bson.M{"$ifNull": bson.A{
		"$postcode", bson.M{"$ifNull": bson.A{"$postal", ""}},
	}}}
}
