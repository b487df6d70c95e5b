package request

import "github.com/gin-gonic/gin"

// RegisterRoutes регистрирует маршруты запросов на вещи
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.POST("", h.Create)
		requests.GET("", h.GetOwn)
		requests.GET("/all", h.GetAll)
		requests.GET("/:requestId", h.GetByID)
		requests.DELETE("/:requestId", h.Delete)
	}
}
