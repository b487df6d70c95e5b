package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shareit/internal/clock"
	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"
	"shareit/internal/middleware"
	jwtsvc "shareit/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type client struct {
	t *testing.T
	h http.Handler
}

func (c client) do(method, path string, actor int64, body any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor > 0 {
		req.Header.Set(middleware.UserIDHeader, fmt.Sprint(actor))
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (c client) id(method, path string, actor int64, body any) int64 {
	c.t.Helper()
	code, env := c.do(method, path, actor, body)
	require.Less(c.t, code, 300, env.Error.Message)
	var v struct {
		ID int64 `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &v))
	return v.ID
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Minute,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRouter_BookingScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	api := client{t, New(Deps{DB: db, Config: testConfig(), Log: logging.Discard()})}

	owner := api.id(http.MethodPost, "/users", 0, gin.H{"name": "Owner", "email": "owner@example.com"})
	renter := api.id(http.MethodPost, "/users", 0, gin.H{"name": "Renter", "email": "renter@example.com"})

	itemID := api.id(http.MethodPost, "/items", owner, gin.H{
		"name": "Drill", "description": "Cordless drill", "available": true,
	})

	start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	bookingID := api.id(http.MethodPost, "/bookings", renter, gin.H{
		"itemId": itemID, "start": start, "end": start.Add(time.Hour),
	})

	code, env := api.do(http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=true", bookingID), owner, nil)
	require.Equal(t, http.StatusOK, code, env.Error.Message)
	assert.Contains(t, string(env.Data), `"status":"APPROVED"`)

	code, env = api.do(http.MethodGet, "/bookings?state=WAITING", renter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, env = api.do(http.MethodGet, "/bookings/owner", owner, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"id":%d`, bookingID))

	// the owner sees the upcoming booking on the item, the renter does not
	code, env = api.do(http.MethodGet, fmt.Sprintf("/items/%d", itemID), owner, nil)
	require.Equal(t, http.StatusOK, code)
	var ownerView struct {
		NextBooking *struct {
			ID       int64 `json:"id"`
			BookerID int64 `json:"bookerId"`
		} `json:"nextBooking"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &ownerView))
	require.NotNil(t, ownerView.NextBooking)
	assert.Equal(t, bookingID, ownerView.NextBooking.ID)
	assert.Equal(t, renter, ownerView.NextBooking.BookerID)

	code, env = api.do(http.MethodGet, fmt.Sprintf("/items/%d", itemID), renter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"nextBooking":null`)

	// comments need a finished booking
	code, _ = api.do(http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), renter, gin.H{"text": "great"})
	assert.Equal(t, http.StatusBadRequest, code)

	later := client{t, New(Deps{
		DB: db, Config: testConfig(), Log: logging.Discard(),
		Clock: clock.Fixed(start.Add(3 * time.Hour)),
	})}
	code, env = later.do(http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), renter, gin.H{"text": "great"})
	require.Equal(t, http.StatusCreated, code, env.Error.Message)
	assert.Contains(t, string(env.Data), `"authorName":"Renter"`)

	code, env = later.do(http.MethodGet, "/bookings?state=PAST", renter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), fmt.Sprintf(`"id":%d`, bookingID))
}

func TestRouter_ItemsAndRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	api := client{t, New(Deps{DB: newTestDB(t), Config: testConfig(), Log: logging.Discard()})}

	ann := api.id(http.MethodPost, "/users", 0, gin.H{"name": "Ann", "email": "ann@example.com"})
	bob := api.id(http.MethodPost, "/users", 0, gin.H{"name": "Bob", "email": "bob@example.com"})

	code, env := api.do(http.MethodPost, "/users", 0, gin.H{"name": "Ann2", "email": "ann@example.com"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	reqID := api.id(http.MethodPost, "/requests", ann, gin.H{"description": "need a kayak"})
	api.id(http.MethodPost, "/items", bob, gin.H{
		"name": "Kayak", "description": "two seats", "available": true, "requestId": reqID,
	})

	code, env = api.do(http.MethodGet, fmt.Sprintf("/requests/%d", reqID), bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"name":"Kayak"`)

	code, env = api.do(http.MethodGet, "/requests/all", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "need a kayak")

	code, env = api.do(http.MethodGet, "/items/search?text=KAYAK", ann, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"name":"Kayak"`)

	code, env = api.do(http.MethodGet, "/items/search?text=", ann, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, _ = api.do(http.MethodDelete, fmt.Sprintf("/requests/%d", reqID), bob, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPost, "/items", 0, gin.H{"name": "x", "description": "y", "available": true})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r := New(Deps{DB: newTestDB(t), Config: cfg, Log: logging.Discard()})
	api := client{t, r}
	ann := api.id(http.MethodPost, "/users", 0, gin.H{"name": "Ann", "email": "ann@example.com"})

	token, err := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(ann)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/requests", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
