package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"rentscope/server/config"
	"rentscope/server/internal/api"
	"rentscope/server/internal/dataset"
	"rentscope/server/internal/engine"
	"rentscope/server/internal/loader"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	source, err := loader.FromConfig(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure record source")
	}

	// The snapshot is built once, before the listener starts; the engine
	// cannot serve queries without it.
	logger.Infof("Loading listings from %s", source.Name())
	raw, err := source.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load raw listings")
	}

	snapshot, err := dataset.Build(raw, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build dataset snapshot")
	}

	fallbackCenter := orb.Point{cfg.Map.CenterLng, cfg.Map.CenterLat}
	eng := engine.New(snapshot, fallbackCenter, logger)

	router := gin.Default()
	api.SetupRoutes(router, eng, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Starting server on port %d", cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
