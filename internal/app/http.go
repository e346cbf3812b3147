package app

import (
	"context"
	"fmt"

	"protettorato/internal/auth/handler"
	"protettorato/internal/auth/provider"
	"protettorato/internal/auth/provider/auth0"
	"protettorato/internal/config"
	"protettorato/internal/logger"
	"protettorato/internal/middleware"
	"protettorato/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	auth0Provider, err := auth0.New(auth0.Config{
		Domain:       cfg.Auth0.Domain,
		ClientID:     cfg.Auth0.ClientID,
		ClientSecret: cfg.Auth0.ClientSecret,
		RedirectURI:  cfg.Auth0.RedirectURI,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init auth0 provider: %w", err)
	}

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		logger.Warn("cors allows every origin", nil)
	}

	router := newRouter(routerDeps{
		provider:    auth0Provider,
		db:          infra.DB,
		corsOrigins: cfg.CORSAllowedOrigins,
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

type routerDeps struct {
	provider    provider.OAuthProvider
	db          web.Pinger
	corsOrigins []string
}

func newRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.CORS(deps.corsOrigins),
	)

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/", web.Home)
	router.GET("/health", web.Health)
	router.GET("/ready", web.Ready(deps.db))

	// ----------------------------
	// Auth Routes
	// ----------------------------

	handler.NewHandler(deps.provider).RegisterRoutes(router)

	for _, route := range router.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}

	return router
}
