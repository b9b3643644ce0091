package routes

// Routes package cung cấp tất cả routing functions cho Property Search
// Service.
//
// Cấu trúc:
// - api.go: API routes (/v1/*)
// - web.go: Web routes (/, /status)
// - routes.go: Export functions
//
// Sử dụng:
// routes.SetupAllRoutes(router, propertyController, facetController)
