package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestIDRoundTrip(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-123")
	assert.Equal(t, "req-123", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
}

func TestGetRequestIDGeneratesWhenAbsent(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)

	// Nothing was stored, so every call mints a fresh ID.
	assert.NotEqual(t, first, GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "req-123"))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
