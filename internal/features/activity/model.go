package activity

import (
	"errors"
	"fmt"

	"sankhya-crm/internal/connectors"
	"sankhya-crm/internal/connectors/sankhya"
)

const (
	EntityName = "AD_ADLEADSATIVIDADES"
	PrimaryKey = "CODATIVIDADE"
)

// Fields is the column list used both to query and to save activities.
var Fields = []string{
	"CODLEAD", "TIPO", "DESCRICAO", "DATA_HORA", "DATA_INICIO", "DATA_FIM",
	"CODUSUARIO", "DADOS_COMPLEMENTARES", "COR", "ORDEM", "ATIVO", "STATUS",
}

var (
	ErrActivityNotConfirmed = errors.New("activity was saved but could not be retrieved")
	ErrInvalidActivityDate  = errors.New("invalid activity date")
)

type ActivityType string

const (
	ActivityTypeCall     ActivityType = "LIGACAO"
	ActivityTypeEmail    ActivityType = "EMAIL"
	ActivityTypeMeeting  ActivityType = "REUNIAO"
	ActivityTypeVisit    ActivityType = "VISITA"
	ActivityTypeOrder    ActivityType = "PEDIDO"
	ActivityTypeClient   ActivityType = "CLIENTE"
	ActivityTypeNote     ActivityType = "NOTA"
	ActivityTypeMessage  ActivityType = "WHATSAPP"
	ActivityTypeProposal ActivityType = "PROPOSTA"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeCall, ActivityTypeEmail, ActivityTypeMeeting, ActivityTypeVisit,
		ActivityTypeOrder, ActivityTypeClient, ActivityTypeNote, ActivityTypeMessage,
		ActivityTypeProposal:
		return true
	}
	return false
}

type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "AGUARDANDO"
	ActivityStatusOverdue   ActivityStatus = "ATRASADO"
	ActivityStatusCompleted ActivityStatus = "REALIZADO"
)

// Activity is one interaction logged against a lead. JSON keys follow the ERP
// column names because that is what the frontend consumes. Timestamps are local
// wall clock strings (YYYY-MM-DDTHH:mm:ss) without a zone designator.
type Activity struct {
	ID          string          `json:"CODATIVIDADE"`
	LeadID      connectors.Code `json:"CODLEAD"`
	Type        ActivityType    `json:"TIPO"`
	Description string          `json:"DESCRICAO"`
	CreatedAt   string          `json:"DATA_HORA"`
	StartAt     string          `json:"DATA_INICIO"`
	EndAt       string          `json:"DATA_FIM"`
	UserID      connectors.Code `json:"CODUSUARIO"`
	ExtraData   string          `json:"DADOS_COMPLEMENTARES,omitempty"`
	UserName    string          `json:"NOME_USUARIO,omitempty"`
	Color       string          `json:"COR,omitempty"`
	Order       int             `json:"ORDEM"`
	Active      string          `json:"ATIVO,omitempty"`
	Status      ActivityStatus  `json:"STATUS,omitempty"`
}

// ValidateDates rejects start or end values the date codec cannot read. Empty
// values are allowed and default to the creation time.
func (a Activity) ValidateDates() error {
	for _, d := range []struct{ field, value string }{{"DATA_INICIO", a.StartAt}, {"DATA_FIM", a.EndAt}} {
		field, value := d.field, d.value
		if value == "" {
			continue
		}
		if _, err := sankhya.ParseLocal(value); err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidActivityDate, field, value)
		}
	}
	return nil
}
