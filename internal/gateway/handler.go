package gateway

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"shareit/internal/domain"
	"shareit/internal/middleware"
	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"
)

// Handler checks requests before they reach the server, so malformed calls
// never cost an upstream round trip.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// withBody validates the JSON body as T and forwards the original bytes.
func withBody[T any](h *Handler, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		var req T
		if err := binding.JSON.BindBody(raw, &req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		if errs := validator.Validate(req); errs != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+what, errs)
			return
		}
		h.forward(c, raw)
	}
}

// Pass forwards the call unchanged.
func (h *Handler) Pass(c *gin.Context) {
	h.forward(c, nil)
}

// Paged checks from/size before forwarding.
func (h *Handler) Paged(c *gin.Context) {
	if _, err := domain.ParsePage(c.Query("from"), c.Query("size")); err != nil {
		response.FromError(c, err, false)
		return
	}
	h.forward(c, nil)
}

// Listed checks state and from/size before forwarding.
func (h *Handler) Listed(c *gin.Context) {
	if state := domain.NormalizeRequestState(c.Query("state")); !state.Supported() {
		response.FromError(c, domain.Errorf(domain.ErrNotSupportedStatus, "Unknown state: %s", state), false)
		return
	}
	h.Paged(c)
}

func (h *Handler) Approve(c *gin.Context) {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "approved must be true or false")
		return
	}
	h.forward(c, nil)
}

func (h *Handler) forward(c *gin.Context, body []byte) {
	resp, err := h.client.Do(
		c.Request.Context(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		middleware.UserID(c),
		c.GetHeader(middleware.RequestIDHeader),
		body,
	)

	var se *StatusError
	switch {
	case errors.As(err, &se):
		resp = se.Response
	case errors.Is(err, ErrUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Server is unavailable, try again later")
		return
	case err != nil:
		response.FromError(c, err, false)
		return
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json; charset=utf-8"
	}
	c.Data(resp.StatusCode, ct, resp.Body)
}
