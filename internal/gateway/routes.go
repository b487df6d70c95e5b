package gateway

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/middleware"
)

// RegisterRoutes повторяет маршруты сервера, добавляя предварительную проверку
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.POST("", withBody[user.CreateUserRequest](h, "user"))
		users.GET("", h.Pass)
		users.GET("/:id", h.Pass)
		users.PATCH("/:id", withBody[user.UpdateUserRequest](h, "user"))
		users.DELETE("/:id", h.Pass)
	}

	acting := r.Group("", middleware.Identity(nil))

	items := acting.Group("/items")
	{
		items.POST("", withBody[item.CreateItemRequest](h, "item"))
		items.GET("", h.Paged)
		items.GET("/search", h.Paged)
		items.GET("/:itemId", h.Pass)
		items.PATCH("/:itemId", withBody[item.UpdateItemRequest](h, "item"))
		items.DELETE("/:itemId", h.Pass)
		items.POST("/:itemId/comment", withBody[item.CreateCommentRequest](h, "comment"))
	}

	bookings := acting.Group("/bookings")
	{
		bookings.POST("", withBody[booking.CreateBookingRequest](h, "booking"))
		bookings.GET("", h.Listed)
		bookings.GET("/owner", h.Listed)
		bookings.GET("/:bookingId", h.Pass)
		bookings.PATCH("/:bookingId", h.Approve)
	}

	requests := acting.Group("/requests")
	{
		requests.POST("", withBody[request.CreateRequestRequest](h, "item request"))
		requests.GET("", h.Pass)
		requests.GET("/all", h.Paged)
		requests.GET("/:requestId", h.Pass)
		requests.DELETE("/:requestId", h.Pass)
	}
}
