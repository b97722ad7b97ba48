package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/ringside/internal/api"
	"github.com/ericogr/ringside/internal/constants"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/version"
)

func main() {
	defer logging.Sync()

	settings := loadSettingsOrExit()
	// The catalog file is optional. Without RINGSIDE_CONFIG the built-in
	// roster, move table and phases are used.
	cfg := loadCatalogOrExit(settings.CatalogPath)
	repo := createRepositoryOrExit(settings.DSN)
	src := newSourceFromSeed(settings.Seed)
	bus := events.NewBus(events.DefaultBuffer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startIdleScanner(ctx, repo, bus, settings.IdleTTL)

	handler := api.NewMatchHandler(repo, cfg.Catalog, src, bus)
	router := api.NewRouter(gin.Default(), handler)

	_, envSet := os.LookupEnv(constants.EnvAddr)
	addr := resolveAddr(settings.Addr, cfg.ServerAddress, envSet)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Graceful shutdown failed", err, nil)
		}
	}()

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.Current().String(),
		"characters":           len(cfg.Catalog.Characters),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", nil)
}
