package sankhya

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"sankhya-crm/internal/connectors"
)

// serviceResponse is the envelope every gateway service answers with.
// Status "0" means the service itself failed even though HTTP succeeded.
type serviceResponse struct {
	ServiceName   string          `json:"serviceName,omitempty"`
	Status        string          `json:"status,omitempty"`
	StatusMessage string          `json:"statusMessage,omitempty"`
	ResponseBody  json.RawMessage `json:"responseBody,omitempty"`
}

const serviceStatusError = "0"

type loadRecordsResponse struct {
	ResponseBody *struct {
		Entities *Entities `json:"entities"`
	} `json:"responseBody"`
}

type loadRecordsRequest struct {
	RequestBody struct {
		DataSet dataSet `json:"dataSet"`
	} `json:"requestBody"`
}

type dataSet struct {
	RootEntity                string        `json:"rootEntity"`
	IncludePresentationFields string        `json:"includePresentationFields"`
	OffsetPage                string        `json:"offsetPage"`
	Entity                    dataSetEntity `json:"entity"`
	Criteria                  *criteria     `json:"criteria,omitempty"`
	OrderBy                   orderBy       `json:"orderBy,omitempty"`
}

type dataSetEntity struct {
	Fieldset struct {
		List string `json:"list"`
	} `json:"fieldset"`
}

type criteria struct {
	Expression struct {
		Value string `json:"$"`
	} `json:"expression"`
}

// orderBy marshals as {"FIELD": "ASC|DESC", ...} keeping the given field order.
type orderBy []connectors.SortField

func (o orderBy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		if s.Desc {
			buf.WriteString(`:"DESC"`)
		} else {
			buf.WriteString(`:"ASC"`)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewLoadRecordsPayload builds the CRUDServiceProvider.loadRecords body.
func NewLoadRecordsPayload(req connectors.QueryRequest) any {
	var payload loadRecordsRequest
	ds := &payload.RequestBody.DataSet
	ds.RootEntity = req.Module
	ds.IncludePresentationFields = "S"
	ds.OffsetPage = strconv.Itoa(req.Page)
	ds.Entity.Fieldset.List = strings.Join(req.Fields, ", ")
	if req.Criteria != "" {
		ds.Criteria = &criteria{}
		ds.Criteria.Expression.Value = req.Criteria
	}
	if len(req.Sort) > 0 {
		ds.OrderBy = orderBy(req.Sort)
	}
	return payload
}

type saveRequest struct {
	ServiceName string   `json:"serviceName"`
	RequestBody saveBody `json:"requestBody"`
}

type saveBody struct {
	EntityName string       `json:"entityName"`
	StandAlone bool         `json:"standAlone"`
	Fields     []string     `json:"fields"`
	Records    []saveRecord `json:"records"`
}

type saveRecord struct {
	PK     map[string]string `json:"pk,omitempty"`
	Values map[string]string `json:"values"`
}

// NewSavePayload builds the DatasetSP.save body. Field names and positional
// values both come from req.Values, so they can never disagree.
func NewSavePayload(req connectors.SaveRequest) any {
	return saveRequest{
		ServiceName: ServiceSave,
		RequestBody: saveBody{
			EntityName: req.Module,
			StandAlone: false,
			Fields:     req.Values.Fields(),
			Records: []saveRecord{{
				PK:     req.PrimaryKey,
				Values: req.Values.Positional(),
			}},
		},
	}
}
