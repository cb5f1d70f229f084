package system

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"sankhya-crm/internal/config"
	"sankhya-crm/internal/connectors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubConnector struct {
	err error
}

func (s *stubConnector) Query(ctx context.Context, req connectors.QueryRequest) (*connectors.QueryResponse, error) {
	return &connectors.QueryResponse{}, nil
}

func (s *stubConnector) Save(ctx context.Context, req connectors.SaveRequest) (map[string]any, error) {
	return nil, nil
}

func (s *stubConnector) TestConnection(ctx context.Context) error { return s.err }

func (s *stubConnector) GetType() string { return "erp" }

func newHealthApp(conn connectors.Connector) *fiber.App {
	app := fiber.New()
	NewHealthApi(NewHealthController(conn, zap.NewNop())).Setup(app)
	NewDebugApi(NewDebugController(), &config.Config{SkipAuth: true}).Setup(app)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHealth_Live(t *testing.T) {
	resp, err := newHealthApp(&stubConnector{}).Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, resp.Body)["status"])
}

func TestHealth_ERP(t *testing.T) {
	resp, err := newHealthApp(&stubConnector{}).Test(httptest.NewRequest("GET", "/health/erp", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = newHealthApp(&stubConnector{err: errors.New("login refused")}).Test(httptest.NewRequest("GET", "/health/erp", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "unavailable", body["status"])
	assert.Equal(t, "login refused", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	resp, err := newHealthApp(&stubConnector{}).Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestDebug_CurrentUser(t *testing.T) {
	resp, err := newHealthApp(&stubConnector{}).Test(httptest.NewRequest("GET", "/api/debug/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "dev", decode(t, resp.Body)["user_id"])
}
