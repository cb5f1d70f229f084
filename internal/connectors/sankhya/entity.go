package sankhya

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// attributeKey holds the entity attributes (primary key values) in a loadRecords row.
const attributeKey = "$"

// Entities is the tabular block returned by CRUDServiceProvider.loadRecords:
// column metadata plus rows whose values are keyed by position (f0, f1, ...).
type Entities struct {
	Metadata *Metadata            `json:"metadata,omitempty"`
	Entity   OneOrMany[RawEntity] `json:"entity,omitempty"`
}

type Metadata struct {
	Fields struct {
		Field OneOrMany[FieldDescriptor] `json:"field"`
	} `json:"fields"`
}

type FieldDescriptor struct {
	Name string `json:"name"`
}

// RawEntity is a single row before mapping. Values are left undecoded so that
// numbers survive as json.Number.
type RawEntity map[string]json.RawMessage

// OneOrMany decodes either a single JSON object or an array of them. Sankhya
// collapses one-element lists into a bare object.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = nil
		return nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*o = items
		return nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return err
	}
	*o = OneOrMany[T]{item}
	return nil
}

// Record is a flattened row keyed by column name.
type Record map[string]any

// String returns the value at key as a string, or "" when absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value at key as an int, or 0 when absent or not numeric.
func (r Record) Int(key string) int {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// MapEntities flattens a loadRecords result into plain records. The primary key
// is taken from the attribute container and stored under primaryKey. Positional
// values missing from a row are omitted, and count mismatches between metadata
// and rows are tolerated.
func MapEntities(entities *Entities, primaryKey string) []Record {
	if entities == nil || len(entities.Entity) == 0 {
		return []Record{}
	}

	var fieldNames []string
	if entities.Metadata != nil {
		for _, f := range entities.Metadata.Fields.Field {
			fieldNames = append(fieldNames, f.Name)
		}
	}

	records := make([]Record, 0, len(entities.Entity))
	for _, raw := range entities.Entity {
		record := Record{}

		if attrs, ok := raw[attributeKey]; ok {
			record[primaryKey] = primaryKeyValue(attrs, primaryKey)
		}

		for i, name := range fieldNames {
			wrapped, ok := raw["f"+strconv.Itoa(i)]
			if !ok {
				continue
			}
			if value, ok := unwrapScalar(wrapped); ok {
				record[name] = value
			}
		}

		records = append(records, record)
	}

	return records
}

func primaryKeyValue(attrs json.RawMessage, primaryKey string) any {
	var values map[string]json.RawMessage
	if err := json.Unmarshal(attrs, &values); err != nil {
		return ""
	}
	raw, ok := values[primaryKey]
	if !ok {
		return ""
	}
	value, err := decodeScalar(raw)
	if err != nil || value == nil {
		return ""
	}
	return value
}

// unwrapScalar extracts the "$" member of a {"$": value} wrapper.
func unwrapScalar(wrapped json.RawMessage) (any, bool) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(wrapped, &members); err != nil || members == nil {
		return nil, false
	}
	raw, ok := members[attributeKey]
	if !ok {
		return nil, false
	}
	value, err := decodeScalar(raw)
	if err != nil {
		return nil, false
	}
	return value, true
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
