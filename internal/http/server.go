// Package http provides the API server, routing and HTTP middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/ativoshub/ativos/internal/auth/http"
	authService "github.com/ativoshub/ativos/internal/auth/service"
	inventoryHTTP "github.com/ativoshub/ativos/internal/inventory/http"
	"github.com/ativoshub/ativos/internal/metrics"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
	userHTTP "github.com/ativoshub/ativos/internal/user/http"
)

// Server is the API server. The router is assembled by SetupRouter and
// served by Start; the database handle is only used by the readiness probe.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
	host   string
	port   int
}

// NewServer creates an API server. The router must be configured with
// SetupRouter before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		host:   host,
		port:   port,
	}
}

// RouterConfig carries the handlers and middleware settings for SetupRouter.
type RouterConfig struct {
	TokenService authService.TokenService

	TokenHandler           *authHTTP.TokenHandler
	PasswordHandler        *authHTTP.PasswordHandler
	UserHandler            *userHTTP.UserHandler
	CategoryHandler        *inventoryHTTP.CategoryHandler
	FieldDefinitionHandler *inventoryHTTP.FieldDefinitionHandler
	AssetHandler           *inventoryHTTP.AssetHandler

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitTokenEnabled        bool
	RateLimitTokenRequestsPerSec float64
	RateLimitTokenBurst          int

	MeterProvider    metric.MeterProvider
	MetricsNamespace string
}

// SetupRouter builds the gin engine with all API routes.
//
// Route permission layout mirrors the role model: token and account recovery
// endpoints are public, reads require authentication, category and user
// management require admin, field definition and asset mutations require
// editor or admin.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Public endpoints. Token endpoints are the brute-force surface, so they
	// get IP-based rate limiting.
	tokenRoutes := router.Group("/api")
	if cfg.RateLimitTokenEnabled {
		tokenRoutes.Use(authHTTP.TokenRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokenRoutes.POST("/token/", cfg.TokenHandler.ObtainPairHandler)
	tokenRoutes.POST("/token/refresh/", cfg.TokenHandler.RefreshHandler)

	public := router.Group("/api")
	public.POST("/user/register/", cfg.UserHandler.RegisterHandler)
	public.POST("/user/get-secret-question/", cfg.PasswordHandler.GetSecretQuestionHandler)
	public.POST("/user/reset-password/", cfg.PasswordHandler.ResetPasswordHandler)

	// Authenticated reads.
	authenticated := router.Group("/api")
	authenticated.Use(authHTTP.AuthenticationMiddleware(cfg.TokenService, s.logger))
	authenticated.GET("/categories/", cfg.CategoryHandler.ListHandler)
	authenticated.GET("/categories/:id/", cfg.CategoryHandler.GetHandler)
	authenticated.GET("/assets/", cfg.AssetHandler.ListHandler)
	authenticated.GET("/assets/:id/", cfg.AssetHandler.GetHandler)

	// Category and user management.
	admin := router.Group("/api")
	admin.Use(authHTTP.AuthenticationMiddleware(cfg.TokenService, s.logger))
	admin.Use(authHTTP.RequireRole(s.logger, userDomain.RoleAdmin))
	admin.POST("/categories/", cfg.CategoryHandler.CreateHandler)
	admin.PUT("/categories/:id/", cfg.CategoryHandler.UpdateHandler)
	admin.PATCH("/categories/:id/", cfg.CategoryHandler.UpdateHandler)
	admin.DELETE("/categories/:id/", cfg.CategoryHandler.DeleteHandler)
	admin.GET("/users/", cfg.UserHandler.ListHandler)
	admin.GET("/users/:id/", cfg.UserHandler.GetHandler)
	admin.PUT("/users/:id/", cfg.UserHandler.UpdateHandler)
	admin.PATCH("/users/:id/", cfg.UserHandler.UpdateHandler)
	admin.DELETE("/users/:id/", cfg.UserHandler.DeleteHandler)
	admin.PUT("/users/:id/update-role/", cfg.UserHandler.UpdateRoleHandler)

	// Field definition and asset management.
	editor := router.Group("/api")
	editor.Use(authHTTP.AuthenticationMiddleware(cfg.TokenService, s.logger))
	editor.Use(authHTTP.RequireRole(s.logger, userDomain.RoleEditor, userDomain.RoleAdmin))
	editor.GET("/categories/:id/fields/", cfg.FieldDefinitionHandler.ListHandler)
	editor.POST("/categories/:id/fields/", cfg.FieldDefinitionHandler.CreateHandler)
	editor.GET("/fields/:id/", cfg.FieldDefinitionHandler.GetHandler)
	editor.PUT("/fields/:id/", cfg.FieldDefinitionHandler.UpdateHandler)
	editor.PATCH("/fields/:id/", cfg.FieldDefinitionHandler.UpdateHandler)
	editor.DELETE("/fields/:id/", cfg.FieldDefinitionHandler.DeleteHandler)
	editor.POST("/assets/", cfg.AssetHandler.CreateHandler)
	editor.PUT("/assets/:id/", cfg.AssetHandler.UpdateHandler)
	editor.PATCH("/assets/:id/", cfg.AssetHandler.UpdateHandler)
	editor.DELETE("/assets/:id/", cfg.AssetHandler.DeleteHandler)

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured, call SetupRouter first")
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic. The database
// is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
