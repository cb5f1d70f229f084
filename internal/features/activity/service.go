package activity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sankhya-crm/internal/connectors"
	"sankhya-crm/internal/connectors/sankhya"
	"sankhya-crm/internal/logger"
	"sankhya-crm/pkg/utils"

	"go.uber.org/zap"
)

type ActivityService interface {
	ListActivities(ctx context.Context, leadID string, active string) []Activity
	CreateActivity(ctx context.Context, input Activity) (*Activity, error)
	ExportActivities(ctx context.Context, leadID string, active string) ([]byte, string, error)
}

type ActivityServiceImpl struct {
	Connector connectors.Connector
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewActivityService(connector connectors.Connector, logger *zap.Logger) ActivityService {
	return &ActivityServiceImpl{
		Connector: connector,
		Logger:    logger,
		Now:       time.Now,
	}
}

// ListActivities returns the activities matching the active flag, optionally for
// a single lead, highest rank first. Upstream failures are logged and counted
// but never returned: callers always get a (possibly empty) list.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context, leadID string, active string) []Activity {
	if active == "" {
		active = "S"
	}

	criteria, err := buildCriteria(leadID, active)
	if err != nil {
		s.readFailed(ctx, err, leadID, active)
		return []Activity{}
	}

	resp, err := s.Connector.Query(ctx, connectors.QueryRequest{
		Module:     EntityName,
		Fields:     Fields,
		Criteria:   criteria,
		Sort:       []connectors.SortField{{Field: "ORDEM", Desc: true}},
		PrimaryKey: PrimaryKey,
	})
	if err != nil {
		s.readFailed(ctx, err, leadID, active)
		return []Activity{}
	}

	activities := make([]Activity, 0, len(resp.Data))
	for _, row := range resp.Data {
		activities = append(activities, fromRecord(row))
	}
	return activities
}

func (s *ActivityServiceImpl) readFailed(ctx context.Context, err error, leadID, active string) {
	readFallbackCounter.Inc()
	logger.ForContext(ctx, s.Logger).Error("Failed to query activities",
		zap.String("lead_id", leadID),
		zap.String("active", active),
		zap.Error(err),
	)
}

// CreateActivity saves a new activity and returns it as read back from the ERP.
// Without an explicit owner the activity belongs to the calling ERP user.
func (s *ActivityServiceImpl) CreateActivity(ctx context.Context, input Activity) (*Activity, error) {
	if err := input.ValidateDates(); err != nil {
		return nil, err
	}
	if input.UserID == "" {
		if id, ok := utils.ClaimsFromContext(ctx).ERPUserID(); ok {
			input.UserID = connectors.Code(id)
		}
	}

	log := logger.ForContext(ctx, s.Logger)
	leadID := input.LeadID.String()
	now := s.Now()

	createdAt := sankhya.FormatDateTime(now)
	start := sankhya.FormatDateTime(now)
	if input.StartAt != "" {
		start = sankhya.ToDateTime(input.StartAt)
	}
	end := sankhya.FormatDateTime(now)
	switch {
	case input.EndAt != "":
		end = sankhya.ToDateTime(input.EndAt)
	case input.StartAt != "":
		end = sankhya.ToDateTime(input.StartAt)
	}

	rank := s.nextRank(ctx, leadID)
	status := initialStatus(input.StartAt, now)

	values := connectors.NewFieldValues().
		Add("CODLEAD", leadID).
		Add("TIPO", string(input.Type)).
		Add("DESCRICAO", input.Description).
		Add("DATA_HORA", createdAt).
		Add("DATA_INICIO", start).
		Add("DATA_FIM", end).
		Add("CODUSUARIO", input.UserID.String()).
		Add("DADOS_COMPLEMENTARES", input.ExtraData).
		Add("COR", input.Color).
		Add("ORDEM", strconv.Itoa(rank)).
		Add("ATIVO", "S").
		Add("STATUS", string(status))

	if _, err := s.Connector.Save(ctx, connectors.SaveRequest{Module: EntityName, Values: values}); err != nil {
		log.Error("Failed to create activity", zap.String("lead_id", leadID), zap.Error(err))
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	log.Info("Activity created",
		zap.String("lead_id", leadID),
		zap.String("type", string(input.Type)),
		zap.Int("order", rank),
		zap.String("status", string(status)),
	)

	created := s.ListActivities(ctx, leadID, "S")
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create activity: %w", ErrActivityNotConfirmed)
	}
	return &created[0], nil
}

// nextRank is one past the highest existing rank for the lead. Concurrent
// creations for the same lead can compute the same value.
func (s *ActivityServiceImpl) nextRank(ctx context.Context, leadID string) int {
	if leadID == "" {
		return 1
	}
	highest := 0
	for _, a := range s.ListActivities(ctx, leadID, "S") {
		if a.Order > highest {
			highest = a.Order
		}
	}
	return highest + 1
}

// initialStatus is overdue when the start day is before today, pending otherwise.
func initialStatus(startISO string, now time.Time) ActivityStatus {
	start := now
	if startISO != "" {
		if t, err := sankhya.ParseLocal(startISO); err == nil {
			start = t
		}
	}
	if startOfDay(start).Before(startOfDay(now)) {
		return ActivityStatusOverdue
	}
	return ActivityStatusPending
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func buildCriteria(leadID, active string) (string, error) {
	criteria := fmt.Sprintf("ATIVO = '%s'", strings.ReplaceAll(active, "'", "''"))
	if leadID == "" {
		return criteria, nil
	}
	if _, err := strconv.ParseInt(leadID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid lead id %q", leadID)
	}
	return criteria + " AND CODLEAD = " + leadID, nil
}

func fromRecord(row map[string]any) Activity {
	r := sankhya.Record(row)
	a := Activity{
		ID:          r.String("CODATIVIDADE"),
		LeadID:      connectors.Code(r.String("CODLEAD")),
		Type:        ActivityType(r.String("TIPO")),
		Description: r.String("DESCRICAO"),
		CreatedAt:   sankhya.FromDateTime(r.String("DATA_HORA")),
		UserID:      connectors.Code(r.String("CODUSUARIO")),
		ExtraData:   r.String("DADOS_COMPLEMENTARES"),
		UserName:    r.String("NOME_USUARIO"),
		Color:       r.String("COR"),
		Order:       r.Int("ORDEM"),
		Active:      r.String("ATIVO"),
		Status:      ActivityStatus(r.String("STATUS")),
	}
	if v := r.String("DATA_INICIO"); v != "" {
		a.StartAt = sankhya.FromDateTime(v)
	}
	if v := r.String("DATA_FIM"); v != "" {
		a.EndAt = sankhya.FromDateTime(v)
	}
	return a
}
