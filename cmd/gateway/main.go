package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shareit/internal/config"
	"shareit/internal/gateway"
	"shareit/internal/httpserver"
	"shareit/internal/logging"
	jwtsvc "shareit/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat).WithField("service", "shareit-gateway")
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	client := gateway.NewClient(
		cfg.ServerURL,
		cfg.UpstreamTimeout,
		jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		log,
	)
	r := gateway.NewRouter(client, cfg.CORSAllowedOrigins, log)

	if err := httpserver.Run(cfg.GatewayAddr, r, log); err != nil {
		log.WithError(err).Fatal("gateway stopped")
	}
}
