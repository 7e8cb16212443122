package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"mockmate/interview/internal/catalog"
	"mockmate/interview/internal/config"
	"mockmate/interview/internal/evaluator"
	_ "mockmate/interview/internal/evaluator/keyword"
	"mockmate/interview/internal/handlers"
	"mockmate/interview/internal/jobs"
	"mockmate/interview/internal/routers"
	"mockmate/interview/internal/session"
)

func registerRoutes(router *chi.Mux, sessionHandler *handlers.SessionHandler, catalogHandler *handlers.CatalogHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.SessionRoutes(router, sessionHandler)
	routers.CatalogRoutes(router, catalogHandler)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.String("evaluator", cfg.Evaluator),
		zap.Duration("eval_delay", cfg.EvalDelay))

	cat, err := catalog.New()
	if err != nil {
		logger.Fatal("failed to load question catalog", zap.Error(err))
	}

	eval, err := evaluator.New(cfg.Evaluator)
	if err != nil {
		logger.Fatal("failed to initialize evaluator", zap.Error(err))
	}

	manager := session.NewManager(cat, eval, logger)

	sessionHandler := handlers.NewSessionHandler(manager, cfg.EvalDelay, logger)
	catalogHandler := handlers.NewCatalogHandler(cat)
	healthHandler := handlers.NewHealthHandler(cat, eval)

	exporterJob := jobs.NewSummaryExporterJob(manager, &jobs.ExporterConfig{
		Schedule:  cfg.ExportSchedule,
		ExportDir: cfg.ExportDir,
		Enabled:   cfg.ExportEnabled,
	}, logger)
	if err := exporterJob.Start(); err != nil {
		logger.Error("failed to start summary exporter job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))

	registerRoutes(router, sessionHandler, catalogHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("interview service shutting down...")

	exporterJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("interview service exited")
}
