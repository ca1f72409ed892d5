package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lojinha/internal/config"
	httpapi "lojinha/internal/http"
	"lojinha/internal/logger"
	"lojinha/internal/metrics"
	"lojinha/internal/repository"
	"lojinha/internal/service"
	"lojinha/internal/upload"

	_ "lojinha/docs"
)

// @title lojinha API
// @version 1.0
// @description Storefront catalog, image upload and order intake.
// @BasePath /api
func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.Log, cfg.ServiceName); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	zlog := logger.Get()

	store, err := repository.NewFileStore(cfg.DBPath)
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}
	uploads, err := upload.NewSaver(cfg.UploadsDir, cfg.BaseURL)
	if err != nil {
		zlog.Fatal("open uploads dir", zap.Error(err))
	}

	productsSvc := service.NewProductService(store)
	ordersSvc := service.NewOrderService(store)
	m := metrics.NewHTTPMetrics(cfg.ServiceName)

	srv := httpapi.NewServer(cfg, productsSvc, ordersSvc, uploads, m)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		zlog.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}
