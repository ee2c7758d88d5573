// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/trekvision/crm-server/internal/config"
	"github.com/trekvision/crm-server/internal/handler"
	"github.com/trekvision/crm-server/internal/middleware"
)

// Register mounts every route of the API. Login and the health check are
// open; everything else under /api sits behind the JWT middleware. The
// rate limiter covers the whole /api group, the response cache only the
// read endpoints it is configured for.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, cl *handler.ClientHandler, rdb *redis.Client) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/api")
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	api.GET("/health", handler.Health)
	api.POST("/auth/login", a.Login)

	auth := api.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	auth.POST("/auth/change-password", a.ChangePassword)

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	auth.GET("/clients", cl.List, cacheMW)
	auth.GET("/clients/archived", cl.Archived, cacheMW)
	auth.GET("/clients/stats", cl.Stats, cacheMW)
	auth.GET("/clients/export", cl.Export)
	auth.GET("/clients/:id", cl.Get)
	auth.POST("/clients", cl.Create)
	auth.PUT("/clients/:id", cl.Update)
	auth.DELETE("/clients/:id", cl.Archive)
	auth.POST("/clients/import", cl.Import)
}
