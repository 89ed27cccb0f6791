package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for the product catalog: CRUD, margin report and alphabetical listing.
// @host localhost:8080
// @BasePath /
func main() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Could not build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, closeStore, err := repo.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("could not open product store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closeStore()

	svc := catalog.NewService(products,
		catalog.WithLogger(logger),
		catalog.WithPriceThreshold(cfg.Catalog.PriceThreshold),
	)
	h := handlers.NewProductHandlers(svc, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(h, logger),
	}

	go func() {
		logger.Info("✅ Server running", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
