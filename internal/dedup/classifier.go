package dedup

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/property-search/app/models"
	"github.com/property-search/internal/normalizer"
)

// ErrUnknownMode classification mode không hợp lệ (client error).
var ErrUnknownMode = errors.New("unknown classification mode")

// Mode cách chọn records trả về từ classifier.
type Mode string

const (
	// ModeTrue chỉ các true duplicates (bản thừa của listing giống hệt).
	ModeTrue Mode = "true"
	// ModeVariants records thuộc property group có nhiều hơn một full key.
	ModeVariants Mode = "variants"
	// ModeAll mọi record sau bản đầu tiên trong property group của nó.
	ModeAll Mode = "all"
)

// Summary thống kê của một lần classify.
type Summary struct {
	TotalRows         int     `json:"total_rows"`
	TrueDuplicates    int     `json:"true_duplicates"`
	DuplicateGroups   int     `json:"duplicate_groups"`
	PriceDiffers      int     `json:"price_differs"`
	AgentDiffers      int     `json:"agent_differs"`
	BrokerDiffers     int     `json:"broker_differs"`
	PercentDuplicates float64 `json:"percent_duplicates"`
}

// Classify nhóm records theo property identity và phân loại true
// duplicates / variants. Pure và total: input rỗng cho summary toàn số 0,
// không có partial failure. "Bản đầu tiên" tính theo thứ tự input;
// kết quả sort theo address tăng dần cho deterministic output.
func Classify(records []models.PropertyRecord, mode Mode) ([]models.PropertyRecord, Summary, error) {
	switch mode {
	case ModeTrue, ModeVariants, ModeAll:
	default:
		return nil, Summary{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}

	summary := Summary{TotalRows: len(records)}

	normalized := make([]models.NormalizedRecord, len(records))
	for i, r := range records {
		normalized[i] = normalizer.Normalize(r)
	}

	// Property groups giữ thứ tự xuất hiện của members.
	groups := make(map[string][]int)
	order := make([]string, 0)
	for i, n := range normalized {
		key := n.PropertyKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var picked []int
	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue // unique, không xuất hiện trong duplicate output
		}

		fullKeys := make(map[string]struct{})
		prices := make(map[string]struct{})
		agents := make(map[string]struct{})
		brokers := make(map[string]struct{})
		for _, i := range members {
			fullKeys[normalized[i].FullKey()] = struct{}{}
			prices[normalized[i].Price] = struct{}{}
			agents[normalized[i].Agent] = struct{}{}
			brokers[normalized[i].Broker] = struct{}{}
		}

		extras := members[1:]
		if len(fullKeys) == 1 {
			// Cả group collapse về một full key: true duplicates.
			summary.TrueDuplicates += len(extras)
			summary.DuplicateGroups++
			if mode == ModeTrue || mode == ModeAll {
				picked = append(picked, extras...)
			}
			continue
		}

		// Variants: đếm độc lập từng field khác nhau trong group.
		if len(prices) > 1 {
			summary.PriceDiffers += len(members) - 1
		}
		if len(agents) > 1 {
			summary.AgentDiffers += len(members) - 1
		}
		if len(brokers) > 1 {
			summary.BrokerDiffers += len(members) - 1
		}
		if mode == ModeVariants || mode == ModeAll {
			picked = append(picked, extras...)
		}
	}

	result := make([]models.PropertyRecord, 0, len(picked))
	for _, i := range picked {
		result = append(result, records[i])
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Address < result[b].Address
	})

	if summary.TotalRows > 0 {
		pct := float64(len(result)) / float64(summary.TotalRows) * 100
		summary.PercentDuplicates = math.Round(pct*100) / 100
	}
	return result, summary, nil
}
