package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fitlink/trainer-directory/docs"
	"github.com/fitlink/trainer-directory/internal/api/handler"
	"github.com/fitlink/trainer-directory/internal/api/middleware"
	"github.com/fitlink/trainer-directory/internal/core/domain"
	"github.com/fitlink/trainer-directory/internal/core/ports"
	"github.com/fitlink/trainer-directory/internal/core/service"
	"github.com/fitlink/trainer-directory/internal/infrastructure/config"
	mongorepo "github.com/fitlink/trainer-directory/internal/infrastructure/db/mongo"
	rediscache "github.com/fitlink/trainer-directory/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, images ports.ImageStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	component := func(name string) zerolog.Logger {
		return log.With().Str("component", name).Logger()
	}

	cache := rediscache.NewDirectoryCache(rdb, cfg.CacheTTL, component("cache"))

	trainerRepo := mongorepo.NewTrainerRepository(db)
	blacklistRepo := mongorepo.NewBlacklistRepository(db)
	userRepo := mongorepo.NewUserRepository(db)

	trainerService := service.NewTrainerService(trainerRepo, cache, component("directory"))
	blacklistService := service.NewBlacklistService(trainerRepo, blacklistRepo, cache, component("blacklist"))
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.BcryptCost)

	trainerHandler := handler.NewTrainerHandler(trainerService, images, component("http"))
	blacklistHandler := handler.NewBlacklistHandler(blacklistService, images, component("http"))
	authHandler := handler.NewAuthHandler(authService, images, component("http"))

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/trainers", trainerHandler.Create)
	e.GET("/api/trainers", trainerHandler.List)
	e.GET("/api/trainersData", trainerHandler.List)
	e.POST("/api/userRegistration", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Admin console routes ---
	e.PATCH("/api/trainers/:id", trainerHandler.UpdateStatus, auth, adminOnly)
	e.DELETE("/api/trainers/:id", trainerHandler.Delete, auth, adminOnly)
	e.POST("/api/blacklist", blacklistHandler.Create, auth, adminOnly)
	e.GET("/api/blacklist", blacklistHandler.List, auth, adminOnly)
	e.PATCH("/api/blacklist/:id", blacklistHandler.MigrateByID, auth, adminOnly)
	e.PATCH("/api/:id/blacklist", blacklistHandler.MigrateLegacy, auth, adminOnly)

	// --- Uploaded profile pictures ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
