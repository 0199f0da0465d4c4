package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kickoffqi/demo-app-platform/internal/clock"
	"github.com/kickoffqi/demo-app-platform/internal/config"
	"github.com/kickoffqi/demo-app-platform/internal/hostinfo"
	"github.com/kickoffqi/demo-app-platform/internal/httpapi"
	"github.com/kickoffqi/demo-app-platform/internal/logging"
	"github.com/kickoffqi/demo-app-platform/internal/server"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger(cfg.ServiceName, cfg.LogLevel)

	resolver, err := hostinfo.New(cfg.Host.Mode, cfg.Host.PodName)
	if err != nil {
		panic(fmt.Errorf("hostname resolver: %w", err))
	}

	handler := httpapi.NewHandler(httpapi.Options{
		Service:  cfg.ServiceName,
		Version:  cfg.Version,
		Clock:    clock.NewMonotonic(),
		Resolver: resolver,
		Logger:   logger,
	})

	router := server.NewRouter(func(r chi.Router) {
		httpapi.RegisterRoutes(r, handler)
	})

	srv := server.New(cfg.Addr(), router)

	if err := server.Run(ctx, srv, logger, cfg.ShutdownTimeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
