package client

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDTO "github.com/ativoshub/ativos/internal/auth/http/dto"
	"github.com/ativoshub/ativos/internal/errors"
)

// AuthorizationState is the outcome of a session check.
type AuthorizationState int

const (
	// StateUnknown is the zero value, before any check has run.
	StateUnknown AuthorizationState = iota
	// StateAuthorized means a valid access token is available.
	StateAuthorized
	// StateUnauthorized means the session could not be established.
	StateUnauthorized
)

// String returns a human-readable state name.
func (s AuthorizationState) String() string {
	switch s {
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Claims is the locally decoded, unverified claim set of an access token.
// Signature verification is the server's job; the guard only needs the
// expiry and the identity claims.
type Claims struct {
	Subject   string
	Role      string
	Username  string
	ExpiresAt time.Time
}

type rawClaims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// DecodeClaims decodes a JWT payload without verifying the signature.
func DecodeClaims(token string) (*Claims, error) {
	parsed := &rawClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode token claims")
	}
	claims := &Claims{
		Subject:  parsed.Subject,
		Role:     parsed.Role,
		Username: parsed.Username,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

// Expired reports whether the claims expire at or before the given time.
// Claims without an expiry are treated as expired.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt.IsZero() || !now.Before(c.ExpiresAt)
}

// Guard decides whether the session is usable, refreshing the access token
// when it has expired. Check never returns an error; every failure mode
// collapses to StateUnauthorized and the stored credentials stay intact.
type Guard struct {
	store      *CredentialStore
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	now        func() time.Time
}

// NewGuard creates a session guard over the given credential store.
func NewGuard(store *CredentialStore, baseURL string, httpClient *http.Client, logger *slog.Logger) *Guard {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Guard{
		store:      store,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Check evaluates the current session. An unexpired access token authorizes
// without any network call; an expired one triggers at most one refresh
// attempt. A failed refresh never clears the store, so a later check can
// retry with the same refresh token.
func (g *Guard) Check(ctx context.Context) AuthorizationState {
	access := g.store.Access()
	if access == "" {
		return StateUnauthorized
	}

	claims, err := DecodeClaims(access)
	if err != nil {
		g.logger.Debug("stored access token is malformed", "error", err)
		return StateUnauthorized
	}

	if !claims.Expired(g.now()) {
		return StateAuthorized
	}

	newAccess, err := g.refreshAccess(ctx)
	if err != nil {
		g.logger.Debug("access token refresh failed", "error", err)
		return StateUnauthorized
	}

	g.store.SetAccess(newAccess)
	return StateAuthorized
}

// refreshAccess exchanges the stored refresh token for a new access token.
// It only ever writes through SetAccess, never the refresh credential.
func (g *Guard) refreshAccess(ctx context.Context) (string, error) {
	refresh := g.store.Refresh()
	if refresh == "" {
		return "", errors.Wrap(errors.ErrUnauthorized, "no refresh token available")
	}

	body, err := json.Marshal(authDTO.RefreshRequest{Refresh: refresh})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode refresh request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/token/refresh/", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create refresh request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "refresh request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Wrap(errors.ErrUnauthorized, "refresh rejected")
	}

	var tokenResp authDTO.AccessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", errors.Wrap(err, "failed to decode refresh response")
	}
	if tokenResp.Access == "" {
		return "", errors.Wrap(errors.ErrUnauthorized, "refresh response missing access token")
	}

	return tokenResp.Access, nil
}
