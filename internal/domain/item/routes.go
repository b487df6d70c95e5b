package item

import "github.com/gin-gonic/gin"

// RegisterRoutes регистрирует маршруты каталога вещей
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.GetMine)
		items.GET("/search", h.Search)
		items.GET("/:itemId", h.GetByID)
		items.PATCH("/:itemId", h.Update)
		items.DELETE("/:itemId", h.Delete)
		items.POST("/:itemId/comment", h.AddComment)
	}
}
