// @title Pet Hub API
// @version 1.0
// @description Mascotas, dueños, historia clínica, turnos y recordatorios sobre un document store key-value.
// @BasePath /
// @securityDefinitions.basic BasicAuth
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-hub/internal/adapters/storage"
	"pet-hub/internal/platform/config"
	"pet-hub/internal/platform/logger"
	"pet-hub/internal/platform/metrics"
	"pet-hub/internal/router"
	"pet-hub/internal/store"
)

func main() {
	if err := run(); err != nil {
		logger.NewFromEnv().Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	substrate, closeSubstrate, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSubstrate(); err != nil {
			log.Warn("close storage", map[string]any{"error": err.Error()})
		}
	}()

	reg := metrics.New()
	st := store.New(substrate,
		store.WithLogger(log.With(map[string]any{"component": "store"})),
		store.WithMetrics(reg),
	)
	if err := st.Init(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(router.Options{Store: st, Logger: log, Metrics: reg}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "kv_driver": string(cfg.Storage.Driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
