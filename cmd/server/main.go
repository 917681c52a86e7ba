package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dexopax/concerthub/internal/config"
	"github.com/dexopax/concerthub/internal/handler"
	"github.com/dexopax/concerthub/internal/middleware"
	"github.com/dexopax/concerthub/internal/monitoring"
	"github.com/dexopax/concerthub/internal/qr"
	"github.com/dexopax/concerthub/internal/repository"
	"github.com/dexopax/concerthub/internal/service"
	"github.com/dexopax/concerthub/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration & Seeding ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	if err := config.SeedData(dbPool, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	qrGenerator := qr.NewGenerator()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	concertRepo := repository.NewConcertRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	concertService := service.NewConcertService(concertRepo)
	orderService := service.NewOrderService(orderRepo, qrGenerator)
	statsService := service.NewStatsService(concertRepo, orderRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	concertHandler := handler.NewConcertHandler(concertService)
	orderHandler := handler.NewOrderHandler(orderService)
	statsHandler := handler.NewStatsHandler(statsService)

	// --- Setup Gin Router ---
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(monitoring.RequestMetrics())

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	concertHandler.RegisterConcertRoutes(apiGroup, jwtAuthMW)
	orderHandler.RegisterOrderRoutes(apiGroup, jwtAuthMW)
	statsHandler.RegisterStatsRoutes(apiGroup, jwtAuthMW)

	// Static entry documents: public storefront and admin panel
	router.StaticFile("/", "./public/index.html")
	router.StaticFile("/admin", "./public/admin.html")

	// Prometheus scrape endpoint
	router.GET("/metrics", monitoring.Handler())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
