package token_test

import (
	"testing"
	"time"

	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/imathiatour/poi-server/token"
	"github.com/stretchr/testify/require"
)

const testSubject = "demo@demo.com"

// testAuthConfig provides fixed TTLs without reading the environment.
type testAuthConfig struct{}

func (testAuthConfig) GetTokenSecret() string { return "test-secret" }
func (testAuthConfig) GetAccessTokenExpiry() time.Duration { return 15 * time.Minute }
func (testAuthConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }

// newServiceAt creates a service whose clock is controlled by the test.
func newServiceAt(now *time.Time) *token.Service {
	return token.NewService(testAuthConfig{}, token.WithNowFunc(func() time.Time {
		return *now
	}))
}

func TestService_IssueAndValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newServiceAt(&now)

	t.Run("access token validates immediately after issuance", func(t *testing.T) {
		raw, err := svc.Issue(testSubject, token.KindAccess)
		require.NoError(t, err)
		require.NotEmpty(t, raw)

		subject, err := svc.Validate(raw, token.KindAccess)
		require.NoError(t, err)
		require.Equal(t, testSubject, subject)
	})

	t.Run("refresh token validates immediately after issuance", func(t *testing.T) {
		raw, err := svc.Issue(testSubject, token.KindRefresh)
		require.NoError(t, err)

		subject, err := svc.Validate(raw, token.KindRefresh)
		require.NoError(t, err)
		require.Equal(t, testSubject, subject)
	})

	t.Run("issued pair is distinct", func(t *testing.T) {
		access, err := svc.Issue(testSubject, token.KindAccess)
		require.NoError(t, err)
		refresh, err := svc.Issue(testSubject, token.KindRefresh)
		require.NoError(t, err)
		require.NotEqual(t, access, refresh)
	})
}

func TestService_Validate_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newServiceAt(&now)

	raw, err := svc.Issue(testSubject, token.KindAccess)
	require.NoError(t, err)

	t.Run("valid just before the access TTL", func(t *testing.T) {
		now = now.Add(15*time.Minute - time.Second)
		_, err := svc.Validate(raw, token.KindAccess)
		require.NoError(t, err)
	})

	t.Run("expired once the clock passes iat plus TTL", func(t *testing.T) {
		now = now.Add(2 * time.Second)
		_, err := svc.Validate(raw, token.KindAccess)
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("refresh token outlives the access token", func(t *testing.T) {
		refreshRaw, err := svc.Issue(testSubject, token.KindRefresh)
		require.NoError(t, err)

		now = now.Add(24 * time.Hour)
		_, err = svc.Validate(refreshRaw, token.KindRefresh)
		require.NoError(t, err)
	})
}

func TestService_Validate_Kind(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newServiceAt(&now)

	access, err := svc.Issue(testSubject, token.KindAccess)
	require.NoError(t, err)
	refresh, err := svc.Issue(testSubject, token.KindRefresh)
	require.NoError(t, err)

	t.Run("refresh token rejected where access is expected", func(t *testing.T) {
		_, err := svc.Validate(refresh, token.KindAccess)
		require.ErrorIs(t, err, apperrors.ErrWrongTokenKind)
	})

	t.Run("access token rejected where refresh is expected", func(t *testing.T) {
		_, err := svc.Validate(access, token.KindRefresh)
		require.ErrorIs(t, err, apperrors.ErrWrongTokenKind)
	})
}

func TestService_Validate_Signature(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newServiceAt(&now)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-jwt", token.KindAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := token.NewService(testAuthConfig{}, token.WithSigner(token.NewHMACSigner("other-secret")))
		raw, err := other.Issue(testSubject, token.KindAccess)
		require.NoError(t, err)

		_, err = svc.Validate(raw, token.KindAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		raw, err := svc.Issue(testSubject, token.KindAccess)
		require.NoError(t, err)

		tampered := raw[:len(raw)-3] + "abc"
		_, err = svc.Validate(tampered, token.KindAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
