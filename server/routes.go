package server

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware()...))

	// PUBLIC
	s.RegisterRouteHandler("GET "+RouteAbout, ChainMiddleware(s.AboutHandler(), s.APIMiddleware()...))

	// CATALOG (protected)
	s.RegisterRouteHandler("GET "+RouteCategories, ChainMiddleware(s.CategoriesHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCategoryPois, ChainMiddleware(s.CategoryPoisHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePoiDetail, ChainMiddleware(s.PoiDetailHandler(), s.ProtectedAPIMiddleware()...))
}
