package responses

import (
	"github.com/property-search/internal/dedup"
	"github.com/property-search/internal/view"
)

// ErrorResponse JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DuplicateResponse kết quả duplicate classification.
type DuplicateResponse struct {
	Mode    string          `json:"mode"`
	Summary dedup.Summary   `json:"summary"`
	Count   int             `json:"count"`
	Items   []view.ListItem `json:"items"`
}

// FacetResponse danh sách distinct values của một field.
type FacetResponse struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
	Count  int      `json:"count"`
}

// HealthCheckResponse trạng thái service.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
