package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/property-search/app/models"
)

func TestNormalize(t *testing.T) {
	r := models.PropertyRecord{
		Address:   "  123 Main St ",
		City:      "Montréal",
		Province:  "QC",
		Postcode:  "h1a 1a1",
		Agent:     " Ann Lee ",
		Broker:    "RE/MAX",
		Price:     " $500,000 ",
		Latitude:  "43.65",
		Longitude: " -79.38",
	}

	n := Normalize(r)
	assert.Equal(t, "123 main st", n.Address)
	assert.Equal(t, "montreal", n.City)
	assert.Equal(t, "qc", n.Province)
	assert.Equal(t, "H1A1A1", n.Postcode)
	assert.Equal(t, "ann lee", n.Agent)
	assert.Equal(t, "re/max", n.Broker)
	assert.Equal(t, "$500,000", n.Price, "price chỉ trim, không parse")
	assert.Equal(t, "43.65", n.Latitude)
	assert.Equal(t, "-79.38", n.Longitude)
}

func TestNormalize_EmptyRecord(t *testing.T) {
	n := Normalize(models.PropertyRecord{})
	assert.Equal(t, models.NormalizedRecord{}, n)
	assert.Equal(t, "|||", n.PropertyKey())
}

func TestNormalize_AccentsShareKey(t *testing.T) {
	a := Normalize(models.PropertyRecord{City: "Montréal", Province: "Québec"})
	b := Normalize(models.PropertyRecord{City: "Montreal", Province: "Quebec"})
	assert.Equal(t, a.PropertyKey(), b.PropertyKey())
}

func TestKeys(t *testing.T) {
	n := models.NormalizedRecord{
		Address: "123 main st", City: "springfield", Province: "on",
		Postcode: "A1A1A1", Price: "$500,000", Agent: "x",
	}
	assert.Equal(t, "123 main st|springfield|on|A1A1A1", n.PropertyKey())
	assert.Equal(t, n.PropertyKey()+"|$500,000|x|||", n.FullKey())
}

func TestPriceValue(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"$500,000", 500000, true},
		{"500000", 500000, true},
		{"$1,250,000.50", 1250000.50, true},
		{"", 0, false},
		{"TBD", 0, false},
	}
	for _, tc := range testCases {
		v, ok := PriceValue(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.expected, v, "input %q", tc.input)
	}
}
