package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

func testUser() *userDomain.User {
	return &userDomain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "joao.silva",
		Role:     userDomain.RoleEditor,
	}
}

func newTestService(t *testing.T) *jwtTokenService {
	t.Helper()

	svc, err := NewTokenService("test-secret", 30*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	return svc.(*jwtTokenService)
}

func TestNewTokenService(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		svc, err := NewTokenService("secret", time.Minute, time.Hour)
		assert.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("missing secret", func(t *testing.T) {
		svc, err := NewTokenService("", time.Minute, time.Hour)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("non-positive expiration", func(t *testing.T) {
		svc, err := NewTokenService("secret", 0, time.Hour)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestService(t)
	user := testUser()

	token, expiresAt, err := svc.Issue(user, authDomain.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token, authDomain.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, authDomain.AccessToken, claims.TokenType)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestTokenService_RefreshTokenLifetime(t *testing.T) {
	svc := newTestService(t)

	_, accessExpiry, err := svc.Issue(testUser(), authDomain.AccessToken)
	require.NoError(t, err)

	_, refreshExpiry, err := svc.Issue(testUser(), authDomain.RefreshToken)
	require.NoError(t, err)

	assert.True(t, refreshExpiry.After(accessExpiry))
}

func TestTokenService_Verify_WrongTokenType(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.Issue(testUser(), authDomain.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Verify(token, authDomain.AccessToken)
	assert.Nil(t, claims)
	assert.True(t, apperrors.Is(err, authDomain.ErrWrongTokenType))
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestService(t)
	token, _, err := svc.Issue(testUser(), authDomain.AccessToken)
	require.NoError(t, err)

	// Move the verification clock past the access token lifetime.
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	claims, err := svc.Verify(token, authDomain.AccessToken)
	assert.Nil(t, claims)
	assert.True(t, apperrors.Is(err, authDomain.ErrInvalidToken))
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	token, _, err := svc.Issue(testUser(), authDomain.AccessToken)
	require.NoError(t, err)

	other, err := NewTokenService("another-secret", 30*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	claims, err := other.Verify(token, authDomain.AccessToken)
	assert.Nil(t, claims)
	assert.True(t, apperrors.Is(err, authDomain.ErrInvalidToken))
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTestService(t)

	claims, err := svc.Verify("not-a-jwt", authDomain.AccessToken)
	assert.Nil(t, claims)
	assert.True(t, apperrors.Is(err, authDomain.ErrInvalidToken))
}

func TestTokenService_IssueFromClaims(t *testing.T) {
	svc := newTestService(t)
	user := testUser()

	refresh, _, err := svc.Issue(user, authDomain.RefreshToken)
	require.NoError(t, err)

	refreshClaims, err := svc.Verify(refresh, authDomain.RefreshToken)
	require.NoError(t, err)

	access, _, err := svc.IssueFromClaims(refreshClaims)
	require.NoError(t, err)

	accessClaims, err := svc.Verify(access, authDomain.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), accessClaims.Subject)
	assert.Equal(t, user.Username, accessClaims.Username)
	assert.Equal(t, user.Role, accessClaims.Role)
}
