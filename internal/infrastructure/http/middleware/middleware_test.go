package middleware

import (
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/meeting-action-tracker/errors"
)

func TestRateLimitOnlyMutatingRequests(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Close()

	e := echo.New()
	h := RateLimit(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(method string) error {
		req := httptest.NewRequest(method, "/actions", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		return h(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call(http.MethodPost))

	err := call(http.MethodPost)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPCode)
	assert.Equal(t, errors.ErrorCode_TOO_MANY_REQUESTS, appErr.Code)

	for i := 0; i < 5; i++ {
		assert.NoError(t, call(http.MethodGet))
	}
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Close()

	e := echo.New()
	e.IPExtractor = IPExtractor(false)
	e.Use(RateLimit(rl))
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			_ = c.NoContent(appErr.HTTPCode)
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
	e.POST("/actions", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	post := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/actions", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, post("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("198.51.100.2"))
}

func TestIPExtractorTrustedProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:4000"
	req.Header.Set(echo.HeaderXForwardedFor, "198.51.100.7")

	assert.Equal(t, "198.51.100.7", IPExtractor(true)(req))
	assert.Equal(t, "10.0.0.5", IPExtractor(false)(req))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Close()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRequestIDAndLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	e := echo.New()
	e.Use(RequestID(), RequestLogger(zap.New(core)))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(RequestIDKey).(string))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}
