package main

import (
	"casetracker/internal/api"
	"casetracker/internal/config"
	"casetracker/internal/engine"
	"casetracker/internal/logging"
	"casetracker/internal/source"
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// 1. Pick the dataset source; a local snapshot wins over the URL
	var src engine.Source = source.NewHTTP(cfg.DataURL, cfg.FetchTimeout)
	if cfg.DataFile != "" {
		src = source.File{Path: cfg.DataFile}
	}

	// 2. Load once, before anything can query. No table, no server.
	t0 := time.Now()
	table, err := engine.Load(context.Background(), src, logger)
	if err != nil {
		logger.Fatal("dataset load failed", zap.Error(err))
	}
	defer table.Release()
	logger.Info("dataset ready", zap.Duration("elapsed", time.Since(t0)))

	// 3. Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	h := api.NewHandler(table, engine.NewQuerier(table, engine.WithRegion(cfg.Region)))
	h.RegisterRoutes(e)

	logger.Info("server listening", zap.String("addr", cfg.Addr), zap.String("region", cfg.Region))
	if err := e.Start(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
