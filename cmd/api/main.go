package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shareit/internal/clock"
	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/httpserver"
	"shareit/internal/logging"
	"shareit/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("db migrate")
	}

	r := router.New(router.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Clock:  clock.System(),
	})

	if err := httpserver.Run(cfg.HTTPAddr, r, log.WithField("service", "shareit-server")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
