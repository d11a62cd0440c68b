package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"email-triage/internal/di"
	"email-triage/internal/infrastructure/config"
	"email-triage/internal/infrastructure/env"
	"email-triage/internal/transport/rest"
)

func main() {
	envService := env.NewService()
	cfg, err := config.Load(envService)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialization error: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	handler := rest.NewHandler(container.Classifier, container.Logger)
	router := rest.NewRouter(rest.RouterConfig{
		ServiceName:    "email-triage",
		AllowedOrigins: cfg.AllowedOrigins,
		Debug:          cfg.Debug,
	}, handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		container.Logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Shutdown failed", "error", err)
	}
	container.Logger.Info("Server stopped")
}
