package lead

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"sankhya-crm/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(conn *MockConnector) *fiber.App {
	app := fiber.New()
	svc := newTestService(conn)
	svc.Logger = zap.NewNop()
	NewLeadApi(NewLeadController(svc), &config.Config{SkipAuth: true}).Setup(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestLeadController_UpdateStage(t *testing.T) {
	app := newTestApp(&MockConnector{})

	status, body := doJSON(t, app, "POST", "/api/leads/atualizar-estagio", `{"codLeed":"77","novoEstagio":4}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "77", body["codLeed"])
	assert.Equal(t, "4", body["novoEstagio"])
}

func TestLeadController_UpdateStage_ErrorsAre500(t *testing.T) {
	tests := []struct {
		name string
		conn *MockConnector
		body string
	}{
		{name: "missing fields", conn: &MockConnector{}, body: `{"codLeed":"77"}`},
		{name: "malformed body", conn: &MockConnector{}, body: `{"codLeed":`},
		{name: "upstream failure", conn: &MockConnector{SaveErr: errors.New("gateway down")}, body: `{"codLeed":"77","novoEstagio":"4"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, newTestApp(tt.conn), "POST", "/api/leads/atualizar-estagio", tt.body)
			assert.Equal(t, fiber.StatusInternalServerError, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLeadController_UpdateStatus(t *testing.T) {
	conn := &MockConnector{}
	app := newTestApp(conn)

	status, body := doJSON(t, app, "PUT", "/api/leads/12/status", `{"status":"PERDIDO","motivoPerda":"no budget"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Lead status updated successfully", body["message"])
	require.Len(t, conn.Saves, 1)
	assert.Equal(t, map[string]string{"CODLEAD": "12"}, conn.Saves[0].PrimaryKey)

	status, _ = doJSON(t, app, "PUT", "/api/leads/12/status", `{"status":"ARQUIVADO"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	failing := newTestApp(&MockConnector{SaveErr: errors.New("gateway down")})
	status, body = doJSON(t, failing, "PUT", "/api/leads/12/status", `{"status":"GANHO"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "gateway down")
}
