package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/config"
	"github.com/SoyPhilips/BalanceAI-Pro/controllers"
	"github.com/SoyPhilips/BalanceAI-Pro/repository"
	"github.com/SoyPhilips/BalanceAI-Pro/routes"
	"github.com/SoyPhilips/BalanceAI-Pro/services"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger("info", "json").WithError(err).Fatal("config")
	}
	log := utils.NewLogger(cfg.Log.Level, cfg.Log.Format)

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg.DB.DSN(), log, 15)
	if err != nil {
		log.WithError(err).Fatal("database")
	}
	if err := config.Migrate(db); err != nil {
		log.WithError(err).Fatal("AutoMigrate failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewMetrics(reg)

	var photos services.PhotoStore
	if cfg.S3.Bucket != "" {
		store, err := utils.NewS3PhotoStore(rootCtx, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.PublicURL)
		if err != nil {
			log.WithError(err).Fatal("s3")
		}
		photos = store
	} else {
		log.Info("S3_BUCKET not set, meal photos are not archived")
	}
	if cfg.Gemini.APIKey == "" {
		log.Warn("GOOGLE_API_KEY not set, photo analysis will fail")
	}

	profileRepo := repository.NewProfileRepo(db)
	logRepo := repository.NewFoodLogRepo(db)
	foodRepo := repository.NewFoodRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)

	gemini := services.NewGeminiService(cfg.Gemini.BaseURL, &http.Client{})
	analysis := services.NewAnalysisService(gemini, services.StaticKey(cfg.Gemini.APIKey), services.AnalysisConfig{
		Models:  cfg.Gemini.ModelList(),
		Timeout: cfg.Gemini.Timeout,
		Metrics: metrics,
	})
	logSvc := services.NewFoodLogService(logRepo, foodRepo, recipeRepo, photos)

	gin.SetMode(gin.ReleaseMode)
	r := routes.SetupRouter(routes.Deps{
		Log:        log,
		JWTSecret:  []byte(cfg.Auth.JWTSecret),
		Gatherer:   reg,
		Onboarding: controllers.NewOnboardingController(services.NewOnboardingService(profileRepo)),
		Analysis:   controllers.NewAnalysisController(analysis, logSvc),
		Logs:       controllers.NewFoodLogController(logSvc),
		Goals:      controllers.NewDailyGoalController(services.NewDailyGoalService(profileRepo, logRepo)),
		Foods:      controllers.NewFoodController(services.NewFoodService(foodRepo)),
		Recipes:    controllers.NewRecipeController(services.NewRecipeService(recipeRepo)),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http_listen_start")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http_serve_failed")
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown_requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http_force_stop")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("service_stopped")
}
