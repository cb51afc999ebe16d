package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/relaykit/relay/internal/api"
	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/config"
	"github.com/relaykit/relay/internal/dispatch"
	"github.com/relaykit/relay/internal/metrics"
	"github.com/relaykit/relay/internal/ratelimiter"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg := config.Load()

	// ---- core dependencies ----
	// Both channels share stdout as their sink: the console stands in for
	// the real email/SMS transports.
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	channels := channel.NewRegistry(
		channel.NewEmail(os.Stdout),
		channel.NewSMS(os.Stdout),
	)
	limiter := ratelimiter.New(cfg.RateLimit)

	onSent, onFailed := m.DispatchHooks()
	d := dispatch.New(channels, limiter, logger, dispatch.Hooks{
		OnSent:   onSent,
		OnFailed: onFailed,
	})

	// ---- HTTP server ----
	router := api.NewRouter(d, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
