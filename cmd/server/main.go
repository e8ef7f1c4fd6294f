package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/HarounMinhas/product-catalog/internal/config"
	"github.com/HarounMinhas/product-catalog/internal/scheduler"
	"github.com/HarounMinhas/product-catalog/internal/server/handlers"
	"github.com/HarounMinhas/product-catalog/internal/server/router"
	catalogsvc "github.com/HarounMinhas/product-catalog/internal/service/catalog"
	"github.com/HarounMinhas/product-catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	catalogSvc := catalogsvc.NewService(cfg.Catalog, baseLogger.Named("svc.catalog"))
	productHandler := handlers.NewProductHandler(catalogSvc, baseLogger.Named("handlers.products"))
	engine := router.New(productHandler, cfg.Catalog, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Probe, catalogSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
