package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"radagast/internal/catalog"
	"radagast/internal/checkout"
	"radagast/internal/client"
	"radagast/internal/config"
	"radagast/internal/infrastructure/logger"
	"radagast/internal/infrastructure/metrics"
	"radagast/internal/infrastructure/mysql"
	"radagast/internal/invoice"
	"radagast/internal/payment"
	"radagast/internal/product"
	"radagast/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	clientModule := client.NewModule(db, zapLogger)
	productModule := product.NewModule(db, zapLogger)
	catalogModule := catalog.NewModule(db)
	paymentModule := payment.NewModule(db)
	invoiceModule := invoice.NewModule(db, zapLogger)

	checkoutModule := checkout.NewModule(
		db,
		clientModule.Facade,
		productModule.Facade,
		catalogModule.Facade,
		paymentModule.Facade,
		invoiceModule.Facade,
		zapLogger,
	)

	serverMetrics := metrics.NewServerMetrics()

	router := server.NewRouter(
		clientModule.Controller,
		productModule.Controller,
		checkoutModule.Controller,
		invoiceModule.Controller,
		serverMetrics,
		zapLogger,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
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
