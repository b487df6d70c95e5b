package booking

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
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking", errs)
		return
	}

	b, err := h.service.Add(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusCreated, ToView(b))
}

// Approve handles PATCH /bookings/:bookingId?approved=true|false
func (h *Handler) Approve(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "approved must be true or false")
		return
	}

	b, err := h.service.Approve(c.Request.Context(), id, approved, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToView(b))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToView(b))
}

func (h *Handler) GetMine(c *gin.Context) {
	state, page, ok := listParams(c, h.exposeForbidden)
	if !ok {
		return
	}
	bs, err := h.service.GetAllByBooker(c.Request.Context(), middleware.UserID(c), state, page)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToViews(bs))
}

func (h *Handler) GetOwned(c *gin.Context) {
	state, page, ok := listParams(c, h.exposeForbidden)
	if !ok {
		return
	}
	bs, err := h.service.GetAllByOwner(c.Request.Context(), middleware.UserID(c), state, page)
	if err != nil {
		response.FromError(c, err, h.exposeForbidden)
		return
	}
	response.Success(c, http.StatusOK, ToViews(bs))
}

func listParams(c *gin.Context, exposeForbidden bool) (domain.RequestState, domain.Page, bool) {
	page, err := domain.ParsePage(c.Query("from"), c.Query("size"))
	if err != nil {
		response.FromError(c, err, exposeForbidden)
		return "", domain.Page{}, false
	}
	return domain.NormalizeRequestState(c.Query("state")), page, true
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid bookingId")
		return 0, false
	}
	return id, true
}
