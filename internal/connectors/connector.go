package connectors

import (
	"context"
	"strconv"
	"time"
)

// QueryRequest represents a dataset query against an external system
type QueryRequest struct {
	Module     string      // Root entity / table name
	Fields     []string    // Fields to retrieve, in order
	Criteria   string      // Filter expression in the source's own dialect
	Sort       []SortField // Sort order
	PrimaryKey string      // Name under which each row's key is returned
	Page       int
}

// SortField orders a query by one field
type SortField struct {
	Field string
	Desc  bool
}

// QueryResponse represents query results
type QueryResponse struct {
	Data       []map[string]any
	TotalCount int64
	Timestamp  time.Time
}

// SaveRequest inserts a record, or updates it when PrimaryKey is set
type SaveRequest struct {
	Module     string
	PrimaryKey map[string]string
	Values     *FieldValues
}

// FieldValues is an ordered list of field/value pairs. Positions are assigned
// in append order when the list is flattened for the wire.
type FieldValues struct {
	names  []string
	values []string
}

// NewFieldValues creates an empty list.
func NewFieldValues() *FieldValues {
	return &FieldValues{}
}

// Add appends a field and returns the list for chaining.
func (f *FieldValues) Add(name, value string) *FieldValues {
	f.names = append(f.names, name)
	f.values = append(f.values, value)
	return f
}

// Len reports the number of pairs.
func (f *FieldValues) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Fields returns the field names in append order.
func (f *FieldValues) Fields() []string {
	if f == nil {
		return []string{}
	}
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Positional returns the values keyed by their index ("0", "1", ...).
func (f *FieldValues) Positional() map[string]string {
	out := make(map[string]string, f.Len())
	if f == nil {
		return out
	}
	for i, v := range f.values {
		out[strconv.Itoa(i)] = v
	}
	return out
}

// Get returns the value of the first pair named name.
func (f *FieldValues) Get(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	for i, n := range f.names {
		if n == name {
			return f.values[i], true
		}
	}
	return "", false
}

// Connector interface for external systems of record
type Connector interface {
	// Query executes a query and returns flattened rows
	Query(ctx context.Context, req QueryRequest) (*QueryResponse, error)

	// Save inserts or updates a record and returns the raw response body
	Save(ctx context.Context, req SaveRequest) (map[string]any, error)

	// TestConnection tests if the connection is valid
	TestConnection(ctx context.Context) error

	// GetType returns the connector type
	GetType() string
}
