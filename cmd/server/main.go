package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"framerly/internal/auth"
	"framerly/internal/config"
	"framerly/internal/infrastructure/logger"
	"framerly/internal/infrastructure/mongodb"
	"framerly/internal/order"
	"framerly/internal/server"
	"framerly/internal/suggest"
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

	client, db, err := mongodb.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	zapLogger.Info("database connected", zap.String("database", cfg.Database.Name))

	tokens := auth.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.SessionTTL)
	secureCookies := cfg.Server.Environment == "production"

	orderCtrl := order.NewModule(db, cfg, zapLogger)
	authCtrl := auth.NewAuthController(tokens, cfg.Admin.Password, secureCookies, zapLogger)
	suggestCtrl := suggest.NewSuggestController(
		suggest.NewClient(cfg.Suggest.BaseURL, cfg.Suggest.APIKey),
		zapLogger,
	)

	router := server.NewRouter(orderCtrl, authCtrl, suggestCtrl, tokens, zapLogger)

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
