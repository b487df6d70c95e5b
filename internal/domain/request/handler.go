package request

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
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item request", errs)
		return
	}

	r, err := h.service.Add(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusCreated, ToView(r))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) GetOwn(c *gin.Context) {
	rs, err := h.service.GetOwn(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToViews(rs))
}

func (h *Handler) GetAll(c *gin.Context) {
	page, err := domain.ParsePage(c.Query("from"), c.Query("size"))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	rs, err := h.service.GetAll(c.Request.Context(), middleware.UserID(c), page)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToViews(rs))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}
	r, err := h.service.GetByID(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToView(r))
}

func requestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid requestId")
		return 0, false
	}
	return id, true
}
