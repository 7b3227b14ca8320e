package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/imathiatour/poi-server/internal/config"
	apperrors "github.com/imathiatour/poi-server/internal/errors"
)

// Kind discriminates what a token may be used for. Access tokens authorize
// API calls; refresh tokens may only be exchanged for a new token pair.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Service issues and validates signed, time-limited tokens. It holds no
// mutable state beyond its signer and TTL configuration, so a single
// instance may be shared across concurrent requests.
type Service struct {
	signer        Signer
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	nowFunc       func() time.Time
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowFunc = now
	}
}

// WithSigner replaces the default HMAC signer
func WithSigner(signer Signer) ServiceOption {
	return func(s *Service) {
		s.signer = signer
	}
}

// NewService creates a token service from the auth configuration.
func NewService(cfg config.AuthConfig, options ...ServiceOption) *Service {
	s := &Service{
		signer:        NewHMACSigner(cfg.GetTokenSecret()),
		accessExpiry:  cfg.GetAccessTokenExpiry(),
		refreshExpiry: cfg.GetRefreshTokenExpiry(),
		nowFunc:       time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Issue creates a signed token for the subject with the given kind. The
// expiry is the kind's configured TTL from now.
func (s *Service) Issue(subject string, kind Kind) (string, error) {
	now := s.nowFunc()

	claims := jwtlib.MapClaims{
		"sub":  subject,                           // Credential identifier (email)
		"kind": string(kind),                      // access or refresh
		"iat":  now.Unix(),                        // Issued At
		"exp":  now.Add(s.expiryFor(kind)).Unix(), // Expiry
		"jti":  uuid.New().String(),               // Unique token ID
	}

	signedToken, err := s.signer.Sign(claims)
	if err != nil {
		return "", apperrors.Wrapf(err, "[Issue] failed to sign %s token", kind)
	}
	return signedToken, nil
}

// Validate verifies the signature and expiry of rawToken and checks that
// its kind matches want. On success it returns the token's subject.
//
// Failure modes are distinct: ErrInvalidToken for a malformed token or bad
// signature, ErrTokenExpired once the clock passes the exp claim, and
// ErrWrongTokenKind when a well-formed, in-date token carries the wrong
// kind claim. There is no revocation list; a token is trusted until its
// declared expiry.
func (s *Service) Validate(rawToken string, want Kind) (string, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithTimeFunc(s.nowFunc),
		jwtlib.WithValidMethods([]string{s.signer.GetSigningMethod().Alg()}),
	)

	parsed, err := parser.ParseWithClaims(rawToken, jwtlib.MapClaims{}, s.signer.GetVerificationKey)
	if err != nil {
		if apperrors.Is(err, jwtlib.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrInvalidToken
	}
	if !parsed.Valid {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", apperrors.ErrInvalidToken
	}

	kind, _ := claims["kind"].(string)
	if Kind(kind) != want {
		return "", apperrors.ErrWrongTokenKind
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return subject, nil
}

func (s *Service) expiryFor(kind Kind) time.Duration {
	if kind == KindRefresh {
		return s.refreshExpiry
	}
	return s.accessExpiry
}
