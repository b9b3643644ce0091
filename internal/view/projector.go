package view

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/property-search/app/models"
)

// ErrUnknownView view kind không hợp lệ (client error).
var ErrUnknownView = errors.New("unknown view kind")

// Kind output shape của một record set.
type Kind string

const (
	// KindList danh sách đầy đủ kèm count.
	KindList Kind = "json"
	// KindMap mapping formatted address → "lat,lon".
	KindMap Kind = "map"
	// KindGeoJSON feature collection, geometry theo thứ tự [lon, lat].
	KindGeoJSON Kind = "geojson"
)

// ListItem một record kèm formatted address.
type ListItem struct {
	models.PropertyRecord
	FormattedAddress string `json:"formatted_address"`
}

// ListPayload response dạng danh sách.
type ListPayload struct {
	Count int        `json:"count"`
	Items []ListItem `json:"items"`
}

// Geometry GeoJSON point geometry.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature một GeoJSON feature; mọi field ngoài tọa độ thành properties.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Project render record set theo view kind.
func Project(records []models.PropertyRecord, kind Kind) (interface{}, error) {
	switch kind {
	case KindList, "", "list":
		return projectList(records), nil
	case KindMap:
		return projectMap(records), nil
	case KindGeoJSON:
		return projectGeoJSON(records), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, string(kind))
	}
}

// FormattedAddress comma-join các phần không rỗng theo thứ tự
// address, city, province, postcode.
func FormattedAddress(r models.PropertyRecord) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{r.Address, r.City, r.Province, r.Postcode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func projectList(records []models.PropertyRecord) ListPayload {
	items := make([]ListItem, 0, len(records))
	for _, r := range records {
		items = append(items, ListItem{PropertyRecord: r, FormattedAddress: FormattedAddress(r)})
	}
	return ListPayload{Count: len(items), Items: items}
}

// projectMap records thiếu một trong hai tọa độ bị bỏ qua (silent).
func projectMap(records []models.PropertyRecord) map[string]string {
	out := make(map[string]string)
	for _, r := range records {
		lat := strings.TrimSpace(r.Latitude)
		lon := strings.TrimSpace(r.Longitude)
		if lat == "" || lon == "" {
			continue
		}
		out[FormattedAddress(r)] = lat + "," + lon
	}
	return out
}

func projectGeoJSON(records []models.PropertyRecord) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	for _, r := range records {
		lat, okLat := parseCoord(r.Latitude)
		lon, okLon := parseCoord(r.Longitude)
		if !okLat || !okLon {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{lon, lat},
			},
			Properties: map[string]interface{}{
				"id":                r.ID,
				"address":           r.Address,
				"city":              r.City,
				"province":          r.Province,
				"postcode":          r.Postcode,
				"agent":             r.Agent,
				"broker":            r.Broker,
				"price":             r.Price,
				"formatted_address": FormattedAddress(r),
			},
		})
	}
	return fc
}

// parseCoord chấp nhận decimal text, loại sentinel "nan"/"none"/"null".
func parseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
