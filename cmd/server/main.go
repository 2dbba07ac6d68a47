package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"podarunok-backend/internal/catalog"
	"podarunok-backend/internal/config"
	"podarunok-backend/internal/database"
	"podarunok-backend/internal/handlers"
	"podarunok-backend/internal/i18n"
	"podarunok-backend/internal/logger"
	"podarunok-backend/internal/middleware"
	"podarunok-backend/internal/reviews"
	"podarunok-backend/internal/supabase"
	"podarunok-backend/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		zapLogger.Fatal("initializing translator", zap.Error(err))
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zapLogger.Fatal("initializing supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
	if err != nil {
		zapLogger.Fatal("initializing storage client", zap.Error(err))
	}

	dataStore := supabase.NewDataStore(supabaseClient)

	// Schema lives in the hosted project; migrations run only when a
	// direct connection string is provided.
	if cfg.DatabaseURL == "" {
		zapLogger.Warn("DATABASE_URL not set, skipping migrations")
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL, zapLogger)
		if err != nil {
			zapLogger.Warn("initializing migrator failed", zap.Error(err))
		} else {
			if err := migrator.Run(); err != nil {
				zapLogger.Warn("migration failed", zap.Error(err))
			}
			migrator.Close()
		}
	}

	catalogLoader := catalog.NewLoader(dataStore, zapLogger)
	reviewLoader := reviews.NewLoader(dataStore, zapLogger)
	wizardService := wizard.NewService(dataStore, storageClient, catalogLoader, zapLogger)

	catalogHandler := handlers.NewCatalogHandler(catalogLoader)
	reviewsHandler := handlers.NewReviewsHandler(reviewLoader)
	i18nHandler := handlers.NewI18nHandler(translator)
	wizardHandler := handlers.NewWizardHandler(wizardService, translator)
	adminHandler := handlers.NewAdminHandler(dataStore, zapLogger)
	siteHandler := handlers.NewSiteHandler(catalogLoader, reviewLoader, translator)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.SetFuncMap(template.FuncMap{"t": translator.T})
	router.LoadHTMLGlob("web/templates/*.tmpl")

	router.GET("/", siteHandler.Index)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.GET("/catalog", catalogHandler.List)
	api.GET("/reviews", reviewsHandler.List)
	api.GET("/translations", i18nHandler.Translations)
	api.PUT("/language", i18nHandler.SetLanguage)

	wiz := api.Group("/wizard")
	wiz.POST("", wizardHandler.Open)
	wiz.POST("/:session_id/photo", wizardHandler.UploadPhoto)
	wiz.POST("/:session_id/continue", wizardHandler.Continue)
	wiz.POST("/:session_id/product", wizardHandler.SelectProduct)
	wiz.POST("/:session_id/format", wizardHandler.SelectFormat)
	wiz.GET("/:session_id/preview", wizardHandler.Preview)
	wiz.POST("/:session_id/checkout", wizardHandler.ProceedToCheckout)
	wiz.POST("/:session_id/back", wizardHandler.Back)
	wiz.POST("/:session_id/submit", wizardHandler.Submit)
	wiz.DELETE("/:session_id", wizardHandler.Close)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.GET("/orders", adminHandler.ListOrders)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zapLogger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped gracefully")
}
