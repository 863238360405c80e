package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/imgfit/imgfit/internal/config"
	"github.com/imgfit/imgfit/internal/logger"
	"github.com/imgfit/imgfit/internal/objstore/minio"
	"github.com/imgfit/imgfit/internal/resizer"
	"github.com/imgfit/imgfit/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(nil).Fatal(err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := minio.New(ctx, &cfg.Store)
	if err != nil {
		log.ErrorWith("failed to connect to object store", err, map[string]any{
			"endpoint": cfg.Store.Endpoint,
		})
		os.Exit(1)
	}
	defer store.Close()

	svc := resizer.New(store, log)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(svc, store, log).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.With().Str("addr", cfg.Server.Addr).Logger().Info("imgfit listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorWith("server failed", err, nil)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.ErrorWith("shutdown did not complete cleanly", err, nil)
		}
	}
}
