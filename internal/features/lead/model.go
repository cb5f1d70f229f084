package lead

import (
	"errors"

	"sankhya-crm/internal/connectors"
)

const (
	EntityName = "AD_LEADS"
	PrimaryKey = "CODLEAD"
)

var (
	ErrInvalidLeadStatus  = errors.New("invalid lead status")
	ErrInvalidStageUpdate = errors.New("lead code and new stage are required")
	ErrMissingLeadID      = errors.New("lead id is required")
)

type LeadStatus string

const (
	LeadStatusInProgress LeadStatus = "EM_ANDAMENTO"
	LeadStatusWon        LeadStatus = "GANHO"
	LeadStatusLost       LeadStatus = "PERDIDO"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusInProgress, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// IsClosed reports whether the status ends the lead's pipeline.
func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

type StatusUpdate struct {
	Status     LeadStatus `json:"status"`
	LossReason string     `json:"motivoPerda"`
}

type StageUpdate struct {
	LeadCode connectors.Code `json:"codLeed"`
	NewStage connectors.Code `json:"novoEstagio"`
}

type StageUpdateResult struct {
	Success         bool   `json:"success"`
	CodLeed         string `json:"codLeed"`
	NovoEstagio     string `json:"novoEstagio"`
	DataAtualizacao string `json:"dataAtualizacao"`
}
