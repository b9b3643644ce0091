package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/property-search/app/models"
)

var sample = []models.PropertyRecord{
	{ID: 1, Address: "123 Main St", City: "Springfield", Province: "ON",
		Postcode: "A1A1A1", Price: "$500,000", Latitude: "43.65", Longitude: "-79.38"},
	{ID: 2, Address: "456 Oak Ave", City: "Springfield", Province: "ON",
		Postcode: "A1A1A2", Price: "$300,000", Latitude: "43.70"}, // thiếu longitude
	{ID: 3, Address: "789 Pine Rd", City: "", Province: "ON",
		Postcode: "", Latitude: "nan", Longitude: "-79.40"},
}

func TestFormattedAddress(t *testing.T) {
	assert.Equal(t, "123 Main St, Springfield, ON, A1A1A1", FormattedAddress(sample[0]))
	// Các phần rỗng bị bỏ, không để lại dấu phẩy thừa.
	assert.Equal(t, "789 Pine Rd, ON", FormattedAddress(sample[2]))
	assert.Equal(t, "", FormattedAddress(models.PropertyRecord{}))
}

func TestProject_List(t *testing.T) {
	payload, err := Project(sample, KindList)
	require.NoError(t, err)

	list, ok := payload.(ListPayload)
	require.True(t, ok)
	assert.Equal(t, 3, list.Count)
	// Record thiếu tọa độ vẫn có mặt với các field còn lại.
	assert.Equal(t, "456 Oak Ave", list.Items[1].Address)
	assert.Equal(t, "$300,000", list.Items[1].Price)
	assert.Equal(t, "123 Main St, Springfield, ON, A1A1A1", list.Items[0].FormattedAddress)
}

func TestProject_Map(t *testing.T) {
	payload, err := Project(sample, KindMap)
	require.NoError(t, err)

	m, ok := payload.(map[string]string)
	require.True(t, ok)
	// Chỉ record có đủ cả hai tọa độ; "nan" vẫn là text nên map view
	// giữ nó (map view không parse).
	assert.Equal(t, "43.65,-79.38", m["123 Main St, Springfield, ON, A1A1A1"])
	_, hasOak := m["456 Oak Ave, Springfield, ON, A1A1A2"]
	assert.False(t, hasOak, "record thiếu longitude phải bị bỏ")
}

func TestProject_GeoJSON(t *testing.T) {
	payload, err := Project(sample, KindGeoJSON)
	require.NoError(t, err)

	fc, ok := payload.(FeatureCollection)
	require.True(t, ok)
	assert.Equal(t, "FeatureCollection", fc.Type)
	// Record 2 thiếu longitude, record 3 có latitude "nan": chỉ còn 1.
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "Point", f.Geometry.Type)
	// GeoJSON coordinate order là [longitude, latitude].
	assert.Equal(t, [2]float64{-79.38, 43.65}, f.Geometry.Coordinates)
	assert.Equal(t, "123 Main St", f.Properties["address"])
	assert.Equal(t, "$500,000", f.Properties["price"])
	assert.NotContains(t, f.Properties, "latitude")
}

func TestProject_UnknownKind(t *testing.T) {
	_, err := Project(sample, Kind("csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Contains(t, err.Error(), "csv")
}

func TestParseCoord(t *testing.T) {
	testCases := []struct {
		input string
		ok    bool
	}{
		{"43.65", true},
		{"-79.38", true},
		{"", false},
		{"nan", false},
		{"NaN", false},
		{"None", false},
		{"null", false},
		{"abc", false},
	}
	for _, tc := range testCases {
		_, ok := parseCoord(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}
