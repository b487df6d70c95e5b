package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes регистрирует все маршруты для бронирований
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.GetMine)
		// Бронирования вещей текущего владельца
		bookings.GET("/owner", h.GetOwned)
		bookings.GET("/:bookingId", h.GetByID)
		bookings.PATCH("/:bookingId", h.Approve)
	}
}
