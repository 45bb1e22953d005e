package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techbay/store-analytics/internal/cache"
	"github.com/techbay/store-analytics/internal/config"
	"github.com/techbay/store-analytics/internal/database"
	"github.com/techbay/store-analytics/internal/handler"
	"github.com/techbay/store-analytics/internal/middleware"
	"github.com/techbay/store-analytics/internal/repository"
	"github.com/techbay/store-analytics/internal/service"
)

// main is the application entrypoint for the reporting API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting store analytics api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Ensure schema
	if err := database.Migrate(db.DB, cfg.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Optional report cache
	var reportCache *cache.ReportCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		reportCache = cache.NewReportCache(redisClient, cfg.Redis.ReportTTL)
		log.Info().Dur("ttl", cfg.Redis.ReportTTL).Msg("report cache enabled")
	}

	// 4. Initialize repositories and services
	catalogRepo := repository.NewCatalogRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reportSvc := service.NewReportService(catalogRepo, reportRepo)

	// 5. Initialize handlers
	pageHandler := handler.NewPageHandler(reportSvc, cfg.DebugErrors)
	reportHandler := handler.NewReportHandler(reportSvc, reportCache, cfg.DebugErrors)
	healthHandler := handler.NewHealthHandler(db)

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.LoadHTMLGlob("web/templates/*")
	setupRoutes(router, pageHandler, reportHandler, healthHandler)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, pages *handler.PageHandler, reports *handler.ReportHandler, health *handler.HealthHandler) {
	// HTML pages
	router.GET("/", pages.Index)
	router.POST("/search_brand", pages.SearchBrand)

	// JSON reports
	api := router.Group("/api")
	{
		api.GET("/health", health.GetHealth)
		api.GET("/top_products", reports.TopProducts)
		api.GET("/top_categories", reports.TopCategories)
		api.GET("/product_details", reports.ProductDetails)
		api.GET("/category_details", reports.CategoryDetails)
		api.GET("/chart-filters", reports.ChartFilters)
		api.POST("/sales-data", reports.SalesData)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
