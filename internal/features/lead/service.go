package lead

import (
	"context"
	"fmt"
	"time"

	"sankhya-crm/internal/connectors"
	"sankhya-crm/internal/connectors/sankhya"
	"sankhya-crm/internal/logger"

	"go.uber.org/zap"
)

type LeadService interface {
	UpdateLeadStatus(ctx context.Context, leadID string, status LeadStatus, lossReason string) error
	UpdateLeadStage(ctx context.Context, leadCode, newStage string) (*StageUpdateResult, error)
}

type LeadServiceImpl struct {
	Connector connectors.Connector
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewLeadService(connector connectors.Connector, logger *zap.Logger) LeadService {
	return &LeadServiceImpl{
		Connector: connector,
		Logger:    logger,
		Now:       time.Now,
	}
}

// UpdateLeadStatus moves a lead to the given status. Closing statuses also stamp
// the completion date, and a loss reason is only stored for lost leads.
func (s *LeadServiceImpl) UpdateLeadStatus(ctx context.Context, leadID string, status LeadStatus, lossReason string) error {
	if leadID == "" {
		return ErrMissingLeadID
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLeadStatus, status)
	}

	today := sankhya.FormatDate(s.Now())

	values := connectors.NewFieldValues().
		Add("STATUS_LEAD", string(status)).
		Add("DATA_ATUALIZACAO", today)
	if status == LeadStatusLost && lossReason != "" {
		values.Add("MOTIVO_PERDA", lossReason)
	}
	if status.IsClosed() {
		values.Add("DATA_CONCLUSAO", today)
	}

	_, err := s.Connector.Save(ctx, connectors.SaveRequest{
		Module:     EntityName,
		PrimaryKey: map[string]string{PrimaryKey: leadID},
		Values:     values,
	})
	if err != nil {
		logger.ForContext(ctx, s.Logger).Error("Failed to update lead status",
			zap.String("lead_id", leadID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	logger.ForContext(ctx, s.Logger).Info("Lead status updated", zap.String("lead_id", leadID), zap.String("status", string(status)))
	return nil
}

// UpdateLeadStage moves a lead to another pipeline stage.
func (s *LeadServiceImpl) UpdateLeadStage(ctx context.Context, leadCode, newStage string) (*StageUpdateResult, error) {
	if leadCode == "" || newStage == "" {
		return nil, ErrInvalidStageUpdate
	}

	today := sankhya.FormatDate(s.Now())
	values := connectors.NewFieldValues().
		Add("CODESTAGIO", newStage).
		Add("DATA_ATUALIZACAO", today)

	_, err := s.Connector.Save(ctx, connectors.SaveRequest{
		Module:     EntityName,
		PrimaryKey: map[string]string{PrimaryKey: leadCode},
		Values:     values,
	})
	if err != nil {
		logger.ForContext(ctx, s.Logger).Error("Failed to update lead stage",
			zap.String("lead_id", leadCode),
			zap.String("stage", newStage),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update lead stage: %w", err)
	}

	logger.ForContext(ctx, s.Logger).Info("Lead stage updated", zap.String("lead_id", leadCode), zap.String("stage", newStage))
	return &StageUpdateResult{
		Success:         true,
		CodLeed:         leadCode,
		NovoEstagio:     newStage,
		DataAtualizacao: today,
	}, nil
}
