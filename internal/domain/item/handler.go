package item

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/domain"
	"shareit/internal/middleware"
	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"
)

type Handler struct {
	service         *Service
	exposeForbidden bool
}

func NewHandler(service *Service, exposeForbidden bool) *Handler {
	return &Handler{service: service, exposeForbidden: exposeForbidden}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item", errs)
		return
	}

	it, err := h.service.Add(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusCreated, toView(it))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item", errs)
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), req)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, toView(it))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	v, err := h.service.GetByID(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) GetMine(c *gin.Context) {
	page, err := domain.ParsePage(c.Query("from"), c.Query("size"))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	views, err := h.service.GetAllByOwner(c.Request.Context(), middleware.UserID(c), page)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) Search(c *gin.Context) {
	page, err := domain.ParsePage(c.Query("from"), c.Query("size"))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	items, err := h.service.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	out := make([]ItemView, 0, len(items))
	for i := range items {
		out = append(out, toView(&items[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid comment", errs)
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), id, middleware.UserID(c), req)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusCreated, ToCommentView(cm))
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid itemId")
		return 0, false
	}
	return id, true
}
