package sankhya

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sankhya-crm/internal/connectors"
)

// Connector exposes the Sankhya gateway through the generic connector interface.
type Connector struct {
	client *Client
	config Config
}

// NewConnector creates a Sankhya connector
func NewConnector(client *Client) connectors.Connector {
	return &Connector{
		client: client,
		config: client.session.config,
	}
}

// Query runs CRUDServiceProvider.loadRecords and flattens the tabular result.
func (c *Connector) Query(ctx context.Context, req connectors.QueryRequest) (*connectors.QueryResponse, error) {
	var resp loadRecordsResponse
	if err := c.client.Execute(ctx, http.MethodPost, c.config.ServiceURL(ServiceLoadRecords), NewLoadRecordsPayload(req), &resp); err != nil {
		return nil, err
	}

	result := &connectors.QueryResponse{
		Data:      []map[string]any{},
		Timestamp: time.Now(),
	}
	if resp.ResponseBody == nil || resp.ResponseBody.Entities == nil {
		return result, nil
	}

	for _, record := range MapEntities(resp.ResponseBody.Entities, req.PrimaryKey) {
		result.Data = append(result.Data, record)
	}
	result.TotalCount = int64(len(result.Data))

	return result, nil
}

// Save runs DatasetSP.save.
func (c *Connector) Save(ctx context.Context, req connectors.SaveRequest) (map[string]any, error) {
	if req.Values.Len() == 0 {
		return nil, fmt.Errorf("sankhya: save on %s has no fields", req.Module)
	}

	var resp map[string]any
	if err := c.client.Execute(ctx, http.MethodPost, c.config.ServiceURL(ServiceSave), NewSavePayload(req), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TestConnection makes sure a session token can be obtained.
func (c *Connector) TestConnection(ctx context.Context) error {
	_, err := c.client.session.Acquire(ctx)
	return err
}

// GetType returns the connector type
func (c *Connector) GetType() string {
	return "erp"
}
