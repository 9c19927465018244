// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	authService "github.com/ativoshub/ativos/internal/auth/service"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/httputil"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

// AuthenticationMiddleware provides authentication via Bearer access token in
// the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies signature, expiry and token type using the token service
// 3. Stores the verified claims in the request context
// 4. Allows downstream handlers to access the claims via GetClaims()
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Invalid/expired token or refresh token used as access → 401 Unauthorized
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(token, authDomain.AccessToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("username", claims.Username),
			slog.String("role", string(claims.Role)))

		c.Next()
	}
}

// RequireRole gates a route to callers whose access token carries one of the
// given roles. It MUST be used after AuthenticationMiddleware, as it reads the
// verified claims from the request context.
//
// Error handling:
//   - No claims in context → 401 Unauthorized (AuthenticationMiddleware not run)
//   - Role not in the allowed set → 403 Forbidden
func RequireRole(logger *slog.Logger, roles ...userDomain.Role) gin.HandlerFunc {
	allowed := make(map[userDomain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok || claims == nil {
			logger.Debug("authorization failed: no verified claims in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if _, ok := allowed[userDomain.Role(claims.Role)]; !ok {
			logger.Debug("authorization failed: insufficient role",
				slog.String("username", claims.Username),
				slog.String("role", string(claims.Role)),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
