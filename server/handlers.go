package server

import (
	"encoding/json"
	"net/http"

	"github.com/imathiatour/poi-server/token"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// LoginRequest is the request body for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the request body for /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is the response body for both auth endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AboutMember is a single entry of the team listing.
type AboutMember struct {
	FullName string `json:"full_name"`
	AM       string `json:"am"`
}

var teamMembers = []AboutMember{
	{FullName: "Imathia Tour Team", AM: "0000"},
}

// LoginHandler exchanges valid credentials for an access/refresh token
// pair.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Malformed request body")
			return
		}

		if !s.users.Verify(req.Email, req.Password) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}

		s.writeTokenPair(w, req.Email)
	}
}

// RefreshHandler exchanges a valid refresh token for a new token pair. An
// access token presented here fails like any other invalid token.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Malformed request body")
			return
		}

		subject, err := s.tokens.Validate(req.RefreshToken, token.KindRefresh)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", authFailureDescription(err))
			return
		}

		s.writeTokenPair(w, subject)
	}
}

// AboutHandler lists the team members behind the project.
func (s *Server) AboutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, teamMembers)
	}
}

func (s *Server) writeTokenPair(w http.ResponseWriter, subject string) {
	accessToken, err := s.tokens.Issue(subject, token.KindAccess)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue access token")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to issue tokens")
		return
	}

	refreshToken, err := s.tokens.Issue(subject, token.KindRefresh)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue refresh token")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to issue tokens")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": description,
	})
}
