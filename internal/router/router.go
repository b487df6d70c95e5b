package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"shareit/internal/clock"
	"shareit/internal/config"
	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/middleware"
	jwtsvc "shareit/internal/pkg/jwt"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    logrus.FieldLogger
	Clock  clock.Clock
}

// New wires repositories, services and handlers into a gin engine.
func New(d Deps) *gin.Engine {
	if d.Clock == nil {
		d.Clock = clock.System()
	}
	cfg := d.Config

	userRepo := user.NewUserRepository(d.DB)
	itemRepo := item.NewItemRepository(d.DB)
	requestRepo := request.NewRequestRepository(d.DB)
	bookingRepo := booking.NewBookingRepository(d.DB)

	userService := user.NewService(userRepo, d.Log.WithField("component", "users"))
	bookingService := booking.NewService(bookingRepo, itemRepo, userService, d.Clock, d.Log.WithField("component", "bookings"))
	itemService := item.NewService(itemRepo, userService, requestRepo, bookingService, d.Log.WithField("component", "items"))
	requestService := request.NewService(requestRepo, userService, d.Log.WithField("component", "requests"))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(corsMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// user directory is open: the header names an existing user only after one is created
	user.NewHandler(userService, cfg.ExposeForbidden).RegisterRoutes(r.Group(""))

	var j *jwtsvc.Service
	if cfg.JWTSecret != "" {
		j = jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	}
	acting := r.Group("", middleware.Identity(j))
	{
		item.NewHandler(itemService, cfg.ExposeForbidden).RegisterRoutes(acting)
		booking.NewHandler(bookingService, cfg.ExposeForbidden).RegisterRoutes(acting)
		request.NewHandler(requestService, cfg.ExposeForbidden).RegisterRoutes(acting)
	}
	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowOrigins = cfg.CORSAllowedOrigins
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", middleware.UserIDHeader, middleware.RequestIDHeader)
	cc.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cors.New(cc)
}
