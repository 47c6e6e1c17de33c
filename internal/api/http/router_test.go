package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/api/http/handlers"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/observability"
	"github.com/sabbebasta/booking-platform/internal/persistence"
)

// newTestApp wires the router against a Postgres handle with no DSN, so
// every storage-backed route is gated as unavailable.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	pg, err := persistence.NewPostgres(context.Background(), config.PostgresConfig{}, logger)
	require.NoError(t, err)

	cfg := &config.Config{}
	app := fiber.New()
	RegisterMiddlewares(app, cfg, logger, observability.NewMetrics())
	RegisterRoutes(app, RouteConfig{
		Postgres: pg,
		Auth:     auth.NewAuthMiddleware(auth.NewTokenManager("test-secret", 7), nil),
		Health:   handlers.NewHealthHandler(pg),
		AuthH:    handlers.NewAuthHandler(nil),
		Users:    handlers.NewUsersHandler(nil, nil),
		Services: handlers.NewServicesHandler(nil),
		Staff:    handlers.NewStaffHandler(nil),
		Bookings: handlers.NewBookingsHandler(nil),
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "API endpoint not found", body["message"])
	assert.Equal(t, "/api/nope", body["path"])
}

func TestHealthReportsDisconnectedDatabase(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "disconnected", body["database"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestStorageRoutesGatedWhenDatabaseDown(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/services", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decodeBody(t, resp)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_UNAVAILABLE", errBody["code"])
}
