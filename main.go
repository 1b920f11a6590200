package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bearhudson/movary-frontend/config"
	"github.com/bearhudson/movary-frontend/handlers"
	"github.com/bearhudson/movary-frontend/internal/logging"
	"github.com/bearhudson/movary-frontend/services/movary"
	"github.com/bearhudson/movary-frontend/services/nextup"
	"github.com/bearhudson/movary-frontend/utils"
)

func main() {
	logger := logging.Setup(logging.Options{
		Level: os.Getenv("LOG_LEVEL"),
		File:  os.Getenv("LOG_FILE"),
	})

	settings := config.FromEnv()
	for _, name := range settings.MissingRequired() {
		logger.Warn("required environment variable is not set; the page will render without data", "var", name)
	}

	client := movary.NewClient(settings.BaseURL, settings.ClientName, nil)
	service := nextup.NewService(settings, client, logger)

	home, err := handlers.NewHomeHandler(settings, service, logger)
	if err != nil {
		logger.Error("failed to build home handler", "error", err)
		os.Exit(1)
	}

	router := utils.NewRouter(logger, nil)
	router.Handle("/", home).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:    ":" + settings.ListenPort,
		Handler: router,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
