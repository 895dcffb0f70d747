package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"market_api/api"
	"market_api/internal/config"
	"market_api/internal/products"
	"market_api/internal/sales"
	"market_api/internal/storage"
	"market_api/internal/telemetry"
)

const serviceName = "sales-api"

func main() {
	cfg := config.Load("5000")

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		shutdownTracing = func(context.Context) error { return nil }
	}

	client, err := storage.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connection error", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	productClient := products.NewClient(cfg.ProductsAPIURL, cfg.ProductTimeout, logger)
	salesService := sales.NewService(sales.NewMongoStorage(client.Database(cfg.MongoDB)), productClient, logger)

	e := api.NewEngine(serviceName, cfg.AllowOrigins, logger)
	api.InitSalesRoutes(e, salesService, logger)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: e}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error trying to start server", zap.Error(err))
		}
	}()
	logger.Info("sales API running", zap.String("port", cfg.Port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", zap.Error(err))
	}
}
