package activity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"sankhya-crm/internal/config"
	"sankhya-crm/internal/connectors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockActivityService struct {
	Listed    []string
	Created   *Activity
	CreateErr error
	Input     Activity
}

func (m *MockActivityService) ListActivities(ctx context.Context, leadID string, active string) []Activity {
	m.Listed = append(m.Listed, leadID+"|"+active)
	return []Activity{{ID: "1", LeadID: connectors.Code(leadID)}}
}

func (m *MockActivityService) CreateActivity(ctx context.Context, input Activity) (*Activity, error) {
	m.Input = input
	return m.Created, m.CreateErr
}

func (m *MockActivityService) ExportActivities(ctx context.Context, leadID string, active string) ([]byte, string, error) {
	return []byte("xlsx"), "atividades-lead-" + leadID + ".xlsx", nil
}

func newTestApp(svc ActivityService) *fiber.App {
	app := fiber.New()
	NewActivityApi(NewActivityController(svc), &config.Config{SkipAuth: true}).Setup(app)
	return app
}

func TestActivityController_List(t *testing.T) {
	svc := &MockActivityService{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/activities?codLead=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"5|S"}, svc.Listed)

	var body []Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, connectors.Code("5"), body[0].LeadID)
}

func TestActivityController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		created    *Activity
		createErr  error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"CODLEAD":5,"TIPO":"LIGACAO","DESCRICAO":"call back","CODUSUARIO":"3"}`,
			created:    &Activity{ID: "42", LeadID: "5", Type: ActivityTypeCall},
			wantStatus: fiber.StatusCreated,
		},
		{
			name:       "invalid type",
			body:       `{"CODLEAD":"5","TIPO":"FAX"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "unreadable start date",
			body:       `{"CODLEAD":"5","TIPO":"VISITA","DATA_INICIO":"amanha"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"CODLEAD":`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "service failure",
			body:       `{"CODLEAD":"5","TIPO":"NOTA"}`,
			createErr:  errors.New("failed to create activity: boom"),
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockActivityService{Created: tt.created, CreateErr: tt.createErr}
			app := newTestApp(svc)

			req := httptest.NewRequest("POST", "/api/activities", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusCreated {
				assert.Equal(t, "call back", svc.Input.Description)
				assert.Equal(t, connectors.Code("3"), svc.Input.UserID)
				assert.Equal(t, connectors.Code("5"), svc.Input.LeadID)
			}
			if tt.createErr != nil {
				raw, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(raw), "boom")
			}
		})
	}
}

func TestActivityController_Export(t *testing.T) {
	app := newTestApp(&MockActivityService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/activities/export?codLead=8", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "atividades-lead-8.xlsx")
}
