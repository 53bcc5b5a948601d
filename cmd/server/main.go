package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier-be/internal/cart"
	"atelier-be/internal/catalog"
	"atelier-be/internal/checkout"
	"atelier-be/internal/config"
	"atelier-be/internal/httpapi"
	"atelier-be/internal/logger"
	"atelier-be/internal/payment"
	"atelier-be/internal/session"
	"atelier-be/internal/view"
	"atelier-be/internal/wishlist"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx := context.Background()

	// Product source: postgres when configured, built-in seed otherwise.
	var repo catalog.Repository
	if cfg.DBURL != "" {
		db, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			logger.L().Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.L().Fatal("failed to ping database", zap.Error(err))
		}
		repo = catalog.NewPgRepository(db)
	} else {
		logger.L().Info("DB_URL not set, serving the built-in catalog")
		repo = catalog.NewSeedRepository()
	}

	cat, err := catalog.NewService(ctx, repo)
	if err != nil {
		logger.L().Fatal("failed to load catalog", zap.Error(err))
	}

	sessions, err := session.NewManager(cfg.SecretKey)
	if err != nil {
		logger.L().Fatal("failed to init session manager", zap.Error(err))
	}

	var gateway payment.Gateway
	if cfg.PaymentMode == "http" {
		gateway = payment.NewHTTPGateway(cfg.PaymentURL, cfg.PaymentAPIKey)
	} else {
		gateway = payment.NewSimulated(cfg.SimulatedDelay)
	}

	bus := view.NewBus(64)
	carts := cart.NewService(cart.NewMemoryStore(), cat, bus)
	wishlists := wishlist.NewService(cat)
	checkouts := checkout.NewService(carts, gateway, bus)

	router := httpapi.NewRouter(httpapi.Deps{
		Sessions:  sessions,
		Catalog:   cat,
		Carts:     carts,
		Wishlists: wishlists,
		Checkouts: checkouts,
		Intents:   bus,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.L().Info("storefront server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
