package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fancards/internal/app"
	"fancards/internal/config"
	"fancards/internal/deck"
	"fancards/internal/domain"
	"fancards/internal/ledger"
	"fancards/internal/store"
	httpTransport "fancards/internal/transport/http"
	"fancards/internal/transport/ws"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logger
	var logger *slog.Logger
	logOpts := &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}

	if cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, logOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	}

	slog.SetDefault(logger)

	logger.Info("starting fancards game server",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
	)

	// Pick the persistence backend
	var st store.Store
	switch cfg.Store.Driver {
	case "redis":
		redisStore, err := store.NewRedis(context.Background(), cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err != nil {
			logger.Error("redis connection failed", "addr", cfg.Store.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		st = redisStore
	default:
		st = store.NewMemory()
	}

	// Wire the application services
	dk := deck.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	lg := ledger.NewMemory(logger)
	locks := app.NewRoomLocks()

	appCfg := app.Config{
		HandSize:         cfg.Game.HandSize,
		DepositsRequired: cfg.Deposit.Required,
		DepositAmountWei: cfg.Deposit.AmountWei,
		TreasuryAddress:  cfg.Deposit.TreasuryAddress,
		DefaultSettings: domain.RoomSettings{
			MaxRounds:  cfg.Game.MaxRounds,
			RoundTimer: cfg.Game.RoundTimerSeconds,
			MaxPlayers: cfg.Game.MaxPlayers,
			MinPlayers: cfg.Game.MinPlayers,
		},
	}

	registry := app.NewRegistry(st, dk, lg, locks, appCfg, logger)
	engine := app.NewEngine(st, dk, locks, appCfg, rand.New(rand.NewSource(time.Now().UnixNano())), logger)

	// Transport layer
	gateway := ws.NewGateway(registry, engine, lg, cfg.Game.AdvanceDelay, cfg.Deposit.Required, logger)
	server := httpTransport.NewServer(cfg, registry, st, dk, gateway, logger)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
