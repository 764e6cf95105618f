package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/property-management/internal/analytics"
	"github.com/iliyamo/property-management/internal/config"
	"github.com/iliyamo/property-management/internal/database"
	"github.com/iliyamo/property-management/internal/handler"
	"github.com/iliyamo/property-management/internal/middleware"
	"github.com/iliyamo/property-management/internal/queue"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/router"
)

func main() {
	// Load a local .env when present; in production the variables come from
	// the environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	propertyRepo := repository.NewPropertyRepo(db)
	contractRepo := repository.NewContractRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	maintenanceRepo := repository.NewMaintenanceRepo(db)

	// Analytics engine over the four entity sources
	engine := analytics.NewEngine(analytics.NewRepoGateway(propertyRepo, contractRepo, paymentRepo, maintenanceRepo))

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	ownerHandler := handler.NewOwnerHandler(propertyRepo, contractRepo, paymentRepo, maintenanceRepo, engine)
	publicHandler := handler.NewPublicHandler(propertyRepo)

	e := echo.New() // Create Echo instance

	// Redis backs the response cache and the rate limiter. A nil client
	// degrades both to no-ops so the service runs without Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	dashboardCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)                                             // health check
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)                   // auth + /v1/me
	router.RegisterPublic(e, publicHandler)                              // guest listings
	router.RegisterOwner(e, ownerHandler, cfg.JWTSecret, dashboardCache) // owner CRUD + analytics

	// Background consumer for payment.recorded events. Runs its own
	// reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
