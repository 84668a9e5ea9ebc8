package main

import (
	"log/slog"
	"net/http"

	"github.com/plebtools/plebtools/internal/app"
	"github.com/plebtools/plebtools/internal/config"
	"github.com/plebtools/plebtools/internal/logger"
	"github.com/plebtools/plebtools/internal/routes"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	// Amounts render as JSON numbers, matching what the calculator pages send
	decimal.MarshalJSONWithoutQuotes = true

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
