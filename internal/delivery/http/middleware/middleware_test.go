package middleware

import (
	"encoding/base64"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/perumahan-service/internal/config"
)

func TestETag(t *testing.T) {
	app := fiber.New()
	app.Get("/data", ETag(), func(c *fiber.Ctx) error {
		return c.SendString(`{"type":"FeatureCollection","features":[]}`)
	})
	app.Post("/data", ETag(), func(c *fiber.Ctx) error {
		return c.SendString("created")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/data", nil))
	require.NoError(t, err)
	etag := resp.Header.Get(fiber.HeaderETag)
	assert.Regexp(t, `^W/"[0-9a-f]{16}"$`, etag)

	req := httptest.NewRequest(fiber.MethodGet, "/data", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/data", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderETag))
}

func TestAdminAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", AdminAuth(config.AdminConfig{Username: "admin", Password: "secret"}), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name   string
		creds  string
		status int
	}{
		{"no credentials", "", fiber.StatusUnauthorized},
		{"wrong password", "admin:nope", fiber.StatusUnauthorized},
		{"valid", "admin:secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			if tt.creds != "" {
				req.Header.Set(fiber.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte(tt.creds)))
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.NotEmpty(t, body)
	assert.Equal(t, string(body), resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "req-123", string(body))
}

func TestLoggerAndRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(Logger(zap.NewNop()))
	app.Use(Recovery(zap.NewNop()))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecovery_LogsPanicWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(Recovery(zap.New(core)))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/panic", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "/panic", fields["path"])
	assert.Equal(t, "boom", fields["panic"])
	assert.NotEmpty(t, fields["stack"])
}
