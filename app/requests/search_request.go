package requests

// SearchParams query params cho property search. Province/State là hai
// tên lịch sử của cùng một filter; province được ưu tiên.
type SearchParams struct {
	Query     string `form:"q"`        // free-text query, hỗ trợ quoted phrases
	Address   string `form:"address"`  // house number hoặc address substring
	Postal    string `form:"postal"`   // postal/ZIP prefix
	City      string `form:"city"`     // substring
	Agent     string `form:"agent"`    // substring
	Broker    string `form:"broker"`   // substring
	Province  string `form:"province"` // region prefix (tên canonical)
	State     string `form:"state"`    // region prefix (tên lịch sử)
	Latitude  string `form:"lat"`      // coordinate prefix
	Longitude string `form:"lon"`      // coordinate prefix
	Sort      string `form:"sort"`     // price_asc | price_desc
	Limit     int    `form:"limit"`    // clamp về [1,1000], default 200
	Offset    int    `form:"offset"`
	Format    string `form:"format"` // json | map | geojson
}

// DuplicateParams query params cho duplicate classification.
type DuplicateParams struct {
	SearchParams
	Mode string `form:"mode"` // true | variants | all (default all)
}

// FacetParams query params cho distinct facet values.
type FacetParams struct {
	Field string `form:"field" binding:"required"` // city|agent|broker|province|postal
	Match string `form:"match"`                    // optional fuzzy ranking query
	Limit int    `form:"limit"`
}
