package server

import (
	"net/http"

	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/rs/zerolog/log"
)

// CategoriesHandler lists the catalog's categories.
func (s *Server) CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.pois.ListCategories())
	}
}

// CategoryPoisHandler lists the enriched POIs of one category.
func (s *Server) CategoryPoisHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.PathValue("categoryID")

		items, err := s.pois.ListPois(r.Context(), categoryID)
		if err != nil {
			s.writePoiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// PoiDetailHandler returns the enriched detail view of a single POI.
func (s *Server) PoiDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poiID := r.PathValue("poiID")

		detail, err := s.pois.GetPoi(r.Context(), poiID)
		if err != nil {
			s.writePoiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// writePoiError maps catalog and enrichment failures onto the HTTP
// boundary. Upstream errors surface as a gateway failure, never as an
// empty success.
func (s *Server) writePoiError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Unknown category")
	case apperrors.Is(err, apperrors.ErrPoiNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Unknown POI")
	case apperrors.Is(err, apperrors.ErrNoWikidataID):
		writeError(w, http.StatusBadRequest, "invalid_request", "POI has no Wikidata ID")
	case apperrors.Is(err, apperrors.ErrUpstream):
		log.Warn().Err(err).Msg("wikidata enrichment failed")
		writeError(w, http.StatusBadGateway, "upstream_error", "Failed to fetch POI data")
	default:
		log.Error().Err(err).Msg("unexpected error serving POI request")
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
