package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin   = "/auth/login"
	RouteAuthRefresh = "/auth/refresh"

	// Public Routes
	RouteAbout = "/about"

	// Catalog Routes (require a valid access token)
	RouteCategories   = "/categories"
	RouteCategoryPois = "/categories/{categoryID}/pois"
	RoutePoiDetail    = "/pois/{poiID}"
)
