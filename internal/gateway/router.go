package gateway

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shareit/internal/middleware"
)

// NewRouter builds the public-facing gateway engine.
func NewRouter(client *Client, allowedOrigins []string, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	if len(allowedOrigins) == 0 {
		r.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = allowedOrigins
		cc.AllowHeaders = append(cc.AllowHeaders, middleware.UserIDHeader, middleware.RequestIDHeader)
		r.Use(cors.New(cc))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	NewHandler(client).RegisterRoutes(r)
	return r
}
