package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/property-search/app/models"
)

func record(id int, addr, price, agent string) models.PropertyRecord {
	return models.PropertyRecord{
		ID:       id,
		Address:  addr,
		City:     "Springfield",
		Province: "ON",
		Postcode: "A1A1A1",
		Price:    price,
		Agent:    agent,
	}
}

func TestClassify_TrueDuplicates(t *testing.T) {
	a := record(1, "123 Main St", "$500,000", "X")
	a2 := record(2, "123 Main St", "$500,000", "X")

	result, summary, err := Classify([]models.PropertyRecord{a, a2}, ModeTrue)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID, "extra là bản sau theo input order")
	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 1, summary.TrueDuplicates)
	assert.Equal(t, 1, summary.DuplicateGroups)
	assert.Equal(t, 50.0, summary.PercentDuplicates)
	assert.Equal(t, 0, summary.PriceDiffers)
}

func TestClassify_PriceVariant(t *testing.T) {
	a := record(1, "123 Main St", "$500,000", "X")
	b := record(2, "123 Main St", "$510,000", "X")

	variants, summary, err := Classify([]models.PropertyRecord{a, b}, ModeVariants)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, 2, variants[0].ID)
	assert.Equal(t, 1, summary.PriceDiffers)
	assert.Equal(t, 0, summary.AgentDiffers)
	assert.Equal(t, 0, summary.TrueDuplicates)

	// Giá khác nhau thì không phải true duplicate.
	trueDups, _, err := Classify([]models.PropertyRecord{a, b}, ModeTrue)
	require.NoError(t, err)
	assert.Empty(t, trueDups)
}

// Price so sánh dạng string: format khác nhau là giá khác nhau, kể cả
// khi giá trị số bằng nhau (hành vi giữ nguyên theo nguồn).
func TestClassify_PriceFormatMatters(t *testing.T) {
	a := record(1, "123 Main St", "$500,000", "X")
	b := record(2, "123 Main St", "500000", "X")

	trueDups, summary, err := Classify([]models.PropertyRecord{a, b}, ModeTrue)
	require.NoError(t, err)
	assert.Empty(t, trueDups)
	assert.Equal(t, 1, summary.PriceDiffers)
}

func TestClassify_ModeAllSupersetOfTrue(t *testing.T) {
	records := []models.PropertyRecord{
		record(1, "123 Main St", "$500,000", "X"),
		record(2, "123 Main St", "$500,000", "X"),
		record(3, "123 Main St", "$500,000", "X"),
		record(4, "456 Oak Ave", "$300,000", "X"),
		record(5, "456 Oak Ave", "$310,000", "Y"),
		record(6, "789 Pine Rd", "$200,000", "Z"),
	}

	all, _, err := Classify(records, ModeAll)
	require.NoError(t, err)
	trueDups, _, err := Classify(records, ModeTrue)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(all), len(trueDups))

	allIDs := make(map[interface{}]bool)
	for _, r := range all {
		allIDs[r.ID] = true
	}
	for _, r := range trueDups {
		assert.True(t, allIDs[r.ID], "true result phải là subset của all")
	}

	// 123 Main: 2 extras (true dups); 456 Oak: 1 extra (variant);
	// 789 Pine: unique, không xuất hiện.
	assert.Len(t, all, 3)
	assert.Len(t, trueDups, 2)
}

func TestClassify_VariantFieldCounts(t *testing.T) {
	records := []models.PropertyRecord{
		{ID: 1, Address: "1 A St", City: "X", Province: "ON", Postcode: "A1A1A1",
			Price: "$100", Agent: "Ann", Broker: "B1"},
		{ID: 2, Address: "1 A St", City: "X", Province: "ON", Postcode: "A1A1A1",
			Price: "$200", Agent: "Bob", Broker: "B1"},
		{ID: 3, Address: "1 A St", City: "X", Province: "ON", Postcode: "A1A1A1",
			Price: "$300", Agent: "Ann", Broker: "B1"},
	}

	_, summary, err := Classify(records, ModeVariants)
	require.NoError(t, err)
	// Mỗi field đếm độc lập: group size - 1 khi nunique > 1.
	assert.Equal(t, 2, summary.PriceDiffers)
	assert.Equal(t, 2, summary.AgentDiffers)
	assert.Equal(t, 0, summary.BrokerDiffers)
}

// Identity key chuẩn hóa: case, whitespace và dấu không làm hai record
// thành property khác nhau.
func TestClassify_NormalizedIdentity(t *testing.T) {
	a := models.PropertyRecord{ID: 1, Address: "123 Main St", City: "Montréal",
		Province: "QC", Postcode: "H1A 1A1", Price: "$500,000"}
	b := models.PropertyRecord{ID: 2, Address: "  123 MAIN ST ", City: "Montreal",
		Province: "qc", Postcode: "h1a1a1", Price: "$500,000"}

	result, summary, err := Classify([]models.PropertyRecord{a, b}, ModeTrue)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, summary.TrueDuplicates)
}

func TestClassify_EmptyInput(t *testing.T) {
	result, summary, err := Classify(nil, ModeAll)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, Summary{}, summary)
}

func TestClassify_UnknownMode(t *testing.T) {
	_, _, err := Classify(nil, Mode("fuzzy"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), "fuzzy")
}

func TestClassify_SortedByAddress(t *testing.T) {
	records := []models.PropertyRecord{
		record(1, "900 Zeta St", "$1", ""),
		record(2, "900 Zeta St", "$1", ""),
		record(3, "100 Alpha St", "$1", ""),
		record(4, "100 Alpha St", "$1", ""),
	}
	result, _, err := Classify(records, ModeAll)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "100 Alpha St", result[0].Address)
	assert.Equal(t, "900 Zeta St", result[1].Address)
}
