package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/property-search/internal/query"
)

// Compile dịch predicate AST sang bson filter. Field names đến từ tập
// đóng của query package; mọi caller value đi qua regexp.QuoteMeta rồi
// được bind như bson value — không bao giờ nối vào query text.
func Compile(p *query.Predicate, strategy RegionStrategy) bson.M {
	if p.IsEmpty() {
		return bson.M{}
	}
	groups := make([]bson.M, 0, len(p.All))
	for _, g := range p.All {
		conds := make([]bson.M, 0, len(g.Any))
		for _, c := range g.Any {
			conds = append(conds, compileCondition(c, strategy))
		}
		if len(conds) == 1 {
			groups = append(groups, conds[0])
			continue
		}
		groups = append(groups, bson.M{"$or": conds})
	}
	if len(groups) == 1 {
		return groups[0]
	}
	return bson.M{"$and": groups}
}

// rePattern escaped regex pattern cho một condition.
func rePattern(c query.Condition) string {
	quoted := regexp.QuoteMeta(c.Value)
	switch c.Kind {
	case query.MatchPrefix, query.MatchNumericPrefix:
		return "^" + quoted
	default:
		return quoted
	}
}

func compileCondition(c query.Condition, strategy RegionStrategy) bson.M {
	switch c.Field {
	case query.FieldPostal:
		return exprCondition(c, stripSpacesExpr(postalExpr()))
	case query.FieldRegion:
		if strategy == RegionCoalesce || c.StripSpaces {
			return exprCondition(c, regionInput(c, strategy))
		}
		return plainCondition(c, strategy.String())
	case query.FieldLatitude, query.FieldLongitude:
		// Tọa độ có thể lưu dạng số; so sánh trên text rendering.
		input := bson.M{"$toString": bson.M{"$ifNull": bson.A{"$" + string(c.Field), ""}}}
		return exprCondition(c, input)
	default:
		if c.StripSpaces {
			input := bson.M{"$toString": bson.M{"$ifNull": bson.A{"$" + string(c.Field), ""}}}
			return exprCondition(c, stripSpacesExpr(input))
		}
		return plainCondition(c, string(c.Field))
	}
}

func regionInput(c query.Condition, strategy RegionStrategy) bson.M {
	input := strategy.columnExpr()
	if c.StripSpaces {
		input = stripSpacesExpr(input)
	}
	return input
}

// plainCondition filter trực tiếp trên một cột.
func plainCondition(c query.Condition, column string) bson.M {
	if c.Kind == query.MatchExact {
		return bson.M{column: c.Value}
	}
	return bson.M{column: bson.M{"$regex": rePattern(c), "$options": "i"}}
}

// exprCondition filter qua $expr cho các so sánh cần computed input
// (coalesced columns, space-stripped values, numeric-as-text).
func exprCondition(c query.Condition, input bson.M) bson.M {
	if c.Kind == query.MatchExact {
		return bson.M{"$expr": bson.M{"$eq": bson.A{input, c.Value}}}
	}
	return bson.M{"$expr": bson.M{"$regexMatch": bson.M{
		"input":   input,
		"regex":   rePattern(c),
		"options": "i",
	}}}
}

func stripSpacesExpr(input bson.M) bson.M {
	return bson.M{"$replaceAll": bson.M{
		"input":       input,
		"find":        " ",
		"replacement": "",
	}}
}
