package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_performance/pkg/api"
	apiconfig "smart_performance/pkg/api/config"
	apigen "smart_performance/pkg/api/generation"
	"smart_performance/pkg/core/appconfig"
	"smart_performance/pkg/core/bootstrap"
	"smart_performance/pkg/core/job"
	"smart_performance/pkg/core/prompt"
	"smart_performance/pkg/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	jobRetention     = 30 * time.Minute
	jobSweepInterval = 5 * time.Minute
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfgPath := os.Getenv("SMART_PERF_CONFIG")
	if cfgPath == "" {
		cfgPath = appconfig.DefaultPath
	}
	cfg, cfgErr := appconfig.Load(cfgPath)

	log, err := logger.New(logger.Options{Mode: cfg.Log.Mode, File: cfg.Log.File})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfgErr != nil {
		if errors.Is(cfgErr, os.ErrNotExist) {
			log.Warn("config file not found, using defaults", "path", cfgPath)
		} else {
			log.Fatal("failed to load config", "path", cfgPath, "error", cfgErr)
		}
	}

	if cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stack, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialise generation stack", "error", err)
	}
	defer stack.Close()

	tracker := job.NewTracker(stack.Orchestrator, jobRetention)
	go tracker.RunSweeper(ctx, jobSweepInterval)

	router := api.NewRouter(api.RouterConfig{
		GenerationHandler: apigen.NewHandler(stack.Orchestrator, tracker, log),
		ConfigHandler:     apiconfig.NewHandler(stack.Agents),
		AllowOrigins:      cfg.CORS.AllowOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("API server starting",
		"addr", cfg.ListenAddr,
		"prompts", prompt.Get().Count(),
		"routes", []string{
			"GET  /api/tasks",
			"POST /api/generate/:task",
			"POST /api/jobs/:task",
			"GET  /api/jobs/:id",
			"GET  /api/jobs/:id/export",
			"POST /api/render",
			"GET  /api/config",
			"POST /api/config/switch",
		},
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed to start", "error", err)
	}
	log.Info("server stopped")
}
