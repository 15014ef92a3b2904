package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coleLenting/theSpotWeb/docs"
	"github.com/coleLenting/theSpotWeb/internal/api/handler"
	"github.com/coleLenting/theSpotWeb/internal/api/middleware"
	"github.com/coleLenting/theSpotWeb/internal/core/domain"
	"github.com/coleLenting/theSpotWeb/internal/core/ports"
	"github.com/coleLenting/theSpotWeb/internal/core/service"
	mongodb "github.com/coleLenting/theSpotWeb/internal/infrastructure/db/mongo"
	redisdb "github.com/coleLenting/theSpotWeb/internal/infrastructure/db/redis"
)

// RouterConfig carries the runtime settings the router needs.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("thespot"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)

	var itemCache *redisdb.ItemCache
	if rdb != nil {
		itemCache = redisdb.NewItemCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	catalogService := service.NewCatalogService(itemRepo, nilSafeCache(itemCache), log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(catalogService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.PUT("/me", authHandler.UpdateMe, authRequired)
	auth.DELETE("/me", authHandler.DeleteMe, authRequired)

	// --- Catalog routes ---
	// /search is registered before /:id so a search never binds as an id.
	items := e.Group("/api/items")
	items.GET("", itemHandler.List)
	items.GET("/search", itemHandler.Search)
	items.GET("/:id", itemHandler.Get)
	items.POST("", itemHandler.Create, authRequired, adminOnly)
	items.PUT("/:id", itemHandler.Update, authRequired, adminOnly)
	items.DELETE("/:id", itemHandler.Delete, authRequired, adminOnly)

	// --- User management ---
	e.POST("/api/users/:id/make-admin", userHandler.MakeAdmin, authRequired, adminOnly)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Movie Rental API - Server Running")
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// nilSafeCache keeps the catalog service's cache dependency a true nil
// interface when no Redis client is configured.
func nilSafeCache(c *redisdb.ItemCache) ports.ItemCache {
	if c == nil {
		return nil
	}
	return c
}
