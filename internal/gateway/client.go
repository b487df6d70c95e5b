package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"shareit/internal/middleware"
	jwtsvc "shareit/internal/pkg/jwt"
)

// ErrUnavailable means the server could not be reached or the breaker is open.
var ErrUnavailable = errors.New("upstream unavailable")

// Response is a buffered upstream reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError is an upstream reply with a 4xx/5xx status.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d", e.Response.StatusCode)
}

// Client forwards calls to the shareit server through a circuit breaker.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	tokens  *jwtsvc.Service
	log     logrus.FieldLogger
}

func NewClient(baseURL string, timeout time.Duration, tokens *jwtsvc.Service, log logrus.FieldLogger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cb:      CircuitBreaker("shareit-server", log),
		tokens:  tokens,
		log:     log,
	}
}

func CircuitBreaker(name string, log logrus.FieldLogger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("circuit breaker state changed")
			},
			// client errors are the caller's fault, not the server's
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				var se *StatusError
				return errors.As(err, &se) && se.Response.StatusCode >= 400 && se.Response.StatusCode < 500
			},
		},
	)
}

// Do sends one request on behalf of userID (0 means anonymous). Upstream
// 4xx/5xx replies come back as *StatusError; transport failures and an open
// breaker wrap ErrUnavailable.
func (c *Client) Do(ctx context.Context, method, path, rawQuery string, userID int64, requestID string, body []byte) (*Response, error) {
	url := c.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var token string
	if userID > 0 && c.tokens != nil {
		t, err := c.tokens.GenerateToken(userID)
		if err != nil {
			return nil, fmt.Errorf("mint token: %w", err)
		}
		token = t
	}

	out, err := c.cb.Execute(func() (interface{}, error) {
		var rd io.Reader
		if len(body) > 0 {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rd)
		if err != nil {
			return nil, err
		}
		if rd != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if userID > 0 {
			req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if requestID != "" {
			req.Header.Set(middleware.RequestIDHeader, requestID)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		r := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: payload}
		if resp.StatusCode >= 400 {
			return nil, &StatusError{Response: r}
		}
		return r, nil
	})

	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, se
		}
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Error("upstream call failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out.(*Response), nil
}
