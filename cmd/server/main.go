package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"

	"usercards/internal/platform/config"
	"usercards/internal/platform/health"
	"usercards/internal/platform/httpserver"
	"usercards/internal/platform/logger"
	"usercards/internal/platform/metrics"
	httptransport "usercards/internal/transport/http"
	"usercards/internal/users/fetcher"
	"usercards/internal/users/service"
	"usercards/internal/users/tracer"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Pipeline logic lives in internal/users packages.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("initializing usercards",
		"addr", cfg.Addr,
		"users_url", cfg.UsersURL,
		"fetch_timeout", cfg.FetchTimeout,
	)

	m := metrics.New()

	userFetcher := fetcher.New(cfg.UsersURL,
		fetcher.WithTimeout(cfg.FetchTimeout),
		fetcher.WithTracer(tracer.NewOTel()),
		fetcher.WithLogger(log),
	)
	refreshService := service.New(userFetcher, log, m)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("users_url", func() error {
		_, err := url.ParseRequestURI(cfg.UsersURL)
		return err
	})

	usersHandler := httptransport.NewUsersHandler(refreshService, log)
	router := httptransport.NewRouter(usersHandler, healthHandler, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
