package errors

import (
	"errors"
	"fmt"
)

// Common error types for the POI server
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingAuthHeader  = errors.New("missing or malformed authorization header")

	// Token errors
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongTokenKind = errors.New("wrong token kind")

	// Catalog errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrPoiNotFound      = errors.New("poi not found")
	ErrNoWikidataID     = errors.New("poi has no wikidata id")

	// Enrichment errors
	ErrUpstream = errors.New("upstream fetch failed")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
