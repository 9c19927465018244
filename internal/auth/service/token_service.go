// Package service provides JWT minting and verification for the
// access/refresh token pair.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

const issuer = "ativos"

// TokenService mints and verifies signed tokens.
type TokenService interface {
	// Issue signs a token of the given type for the user.
	Issue(user *userDomain.User, tokenType authDomain.TokenType) (token string, expiresAt time.Time, err error)

	// IssueFromClaims signs a new access token carrying the identity of a
	// verified refresh token, without a database lookup.
	IssueFromClaims(claims *authDomain.TokenClaims) (token string, expiresAt time.Time, err error)

	// Verify checks signature, expiry and token type, returning the claims.
	Verify(token string, tokenType authDomain.TokenType) (*authDomain.TokenClaims, error)
}

// jwtTokenService implements TokenService using HS256 signatures.
type jwtTokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with the given HMAC secret.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("jwt secret is not configured")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, apperrors.New("token expirations must be greater than zero")
	}

	return &jwtTokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// Issue signs a token of the given type for the user.
func (s *jwtTokenService) Issue(
	user *userDomain.User,
	tokenType authDomain.TokenType,
) (string, time.Time, error) {
	ttl := s.accessTTL
	if tokenType == authDomain.RefreshToken {
		ttl = s.refreshTTL
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)

	claims := authDomain.TokenClaims{
		Role:      user.Role,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// IssueFromClaims signs a new access token from a verified refresh token's claims.
func (s *jwtTokenService) IssueFromClaims(claims *authDomain.TokenClaims) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.accessTTL)

	newClaims := authDomain.TokenClaims{
		Role:      claims.Role,
		Username:  claims.Username,
		TokenType: authDomain.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify checks signature, expiry and token type, returning the claims.
func (s *jwtTokenService) Verify(token string, tokenType authDomain.TokenType) (*authDomain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &authDomain.TokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, authDomain.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*authDomain.TokenClaims)
	if !ok || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, authDomain.ErrWrongTokenType
	}
	if _, err := claims.UserID(); err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	return claims, nil
}
